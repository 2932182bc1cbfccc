//go:build unit

package memstore_test

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/domain/cart"
	"storefront-api/internal/infra/memstore"
	"storefront-api/internal/pkg/errs"
)

func TestCartStoreAdd(t *testing.T) {
	t.Run("creates a new line per product", func(t *testing.T) {
		s := memstore.NewCartStore()

		li1, err := s.Add("1", 2)
		require.NoError(t, err)
		li2, err := s.Add("2", 1)
		require.NoError(t, err)

		assert.NotEqual(t, li1.ID, li2.ID)
		assert.Len(t, s.View(), 2)
	})

	t.Run("merges repeated adds into one line", func(t *testing.T) {
		s := memstore.NewCartStore()

		first, err := s.Add("1", 1)
		require.NoError(t, err)
		second, err := s.Add("1", 2)
		require.NoError(t, err)

		// same line, summed quantity
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 3, second.Quantity)

		items := s.View()
		require.Len(t, items, 1)
		assert.Equal(t, 3, items[0].Quantity)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		s := memstore.NewCartStore()

		_, err := s.Add("1", 0)
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
		assert.Empty(t, s.View())
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		s := memstore.NewCartStore()
		for _, id := range []string{"3", "1", "2"} {
			_, err := s.Add(id, 1)
			require.NoError(t, err)
		}

		items := s.View()
		require.Len(t, items, 3)
		assert.Equal(t, "3", items[0].ProductID)
		assert.Equal(t, "1", items[1].ProductID)
		assert.Equal(t, "2", items[2].ProductID)
	})
}

func TestCartStoreSetQuantity(t *testing.T) {
	t.Run("replaces the quantity outright", func(t *testing.T) {
		s := memstore.NewCartStore()
		li, err := s.Add("1", 5)
		require.NoError(t, err)

		removed, err := s.SetQuantity(li.ID, 2)
		require.NoError(t, err)
		assert.False(t, removed)

		items := s.View()
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("zero or negative removes the line", func(t *testing.T) {
		for _, q := range []int{0, -1} {
			s := memstore.NewCartStore()
			li, err := s.Add("1", 5)
			require.NoError(t, err)

			removed, err := s.SetQuantity(li.ID, q)
			require.NoError(t, err)
			assert.True(t, removed)
			assert.Empty(t, s.View())
		}
	})

	t.Run("unknown line id", func(t *testing.T) {
		s := memstore.NewCartStore()
		_, err := s.SetQuantity(uuid.New(), 1)
		assert.ErrorIs(t, err, errs.ErrCartItemNotFound)
	})
}

func TestCartStoreRemove(t *testing.T) {
	s := memstore.NewCartStore()
	li, err := s.Add("1", 1)
	require.NoError(t, err)

	require.NoError(t, s.Remove(li.ID))
	assert.Empty(t, s.View())

	assert.ErrorIs(t, s.Remove(li.ID), errs.ErrCartItemNotFound)
}

func TestCartStoreClear(t *testing.T) {
	s := memstore.NewCartStore()
	for _, id := range []string{"1", "2", "3"} {
		_, err := s.Add(id, 1)
		require.NoError(t, err)
	}

	assert.Equal(t, 3, s.Clear())
	assert.Empty(t, s.View())
	assert.Equal(t, 0, s.Clear())
}

func TestCartStoreView(t *testing.T) {
	t.Run("returns a copy, not the backing slice", func(t *testing.T) {
		s := memstore.NewCartStore()
		_, err := s.Add("1", 1)
		require.NoError(t, err)

		items := s.View()
		items[0].Quantity = 99

		assert.Equal(t, 1, s.View()[0].Quantity)
	})
}

func TestCartStoreDrain(t *testing.T) {
	t.Run("clears only after build succeeds", func(t *testing.T) {
		s := memstore.NewCartStore()
		_, err := s.Add("1", 3)
		require.NoError(t, err)

		var seen []cart.LineItem
		err = s.Drain(func(items []cart.LineItem) error {
			seen = items
			return nil
		})
		require.NoError(t, err)
		require.Len(t, seen, 1)
		assert.Equal(t, 3, seen[0].Quantity)
		assert.Empty(t, s.View())
	})

	t.Run("failing build leaves the cart untouched", func(t *testing.T) {
		s := memstore.NewCartStore()
		_, err := s.Add("1", 3)
		require.NoError(t, err)

		err = s.Drain(func([]cart.LineItem) error {
			return errs.ErrCartInconsistent
		})
		assert.ErrorIs(t, err, errs.ErrCartInconsistent)
		assert.Len(t, s.View(), 1)
	})

	t.Run("empty cart fails up front", func(t *testing.T) {
		s := memstore.NewCartStore()

		called := false
		err := s.Drain(func([]cart.LineItem) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, errs.ErrCartEmpty)
		assert.False(t, called)
	})
}

func TestCartStoreConcurrentAdds(t *testing.T) {
	s := memstore.NewCartStore()

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = s.Add("1", 1)
		}()
	}
	wg.Wait()

	// no lost increments, no duplicate lines
	items := s.View()
	require.Len(t, items, 1)
	assert.Equal(t, workers, items[0].Quantity)
}
