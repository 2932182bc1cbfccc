//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/infra/memstore"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/usecase/queries"
	"storefront-api/tests/common/builder"
)

func TestCartQueriesView(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves lines against the catalog", func(t *testing.T) {
		store := memstore.NewCartStore()
		li, err := store.Add("1", 3)
		require.NoError(t, err)
		_, err = store.Add("3", 1)
		require.NoError(t, err)

		q := queries.NewCartQueries(store, builder.NewTestCatalog())
		view, err := q.View(ctx)
		require.NoError(t, err)

		require.Len(t, view.Items, 2)
		assert.Equal(t, li.ID, view.Items[0].ID)
		assert.Equal(t, "Wireless Headphones", view.Items[0].Name)
		assert.Equal(t, "99.99", view.Items[0].UnitPrice.StringFixed(2))
		assert.Equal(t, "299.97", view.Items[0].LineTotal.StringFixed(2))
		// 299.97 + 9.99
		assert.Equal(t, "309.96", view.Total.StringFixed(2))
	})

	t.Run("empty cart yields empty items and zero total", func(t *testing.T) {
		q := queries.NewCartQueries(memstore.NewCartStore(), builder.NewTestCatalog())

		view, err := q.View(ctx)
		require.NoError(t, err)
		assert.Empty(t, view.Items)
		assert.Equal(t, "0.00", view.Total.StringFixed(2))
	})

	t.Run("stale line surfaces as an inconsistent cart", func(t *testing.T) {
		store := memstore.NewCartStore()
		_, err := store.Add("999", 1)
		require.NoError(t, err)

		q := queries.NewCartQueries(store, builder.NewTestCatalog())
		_, err = q.View(ctx)
		assert.ErrorIs(t, err, errs.ErrCartInconsistent)
	})
}

func TestCatalogQueries(t *testing.T) {
	ctx := context.Background()
	q := queries.NewCatalogQueries(builder.NewTestCatalog())

	t.Run("List returns every product", func(t *testing.T) {
		assert.Len(t, q.List(ctx), 3)
	})

	t.Run("Get by id", func(t *testing.T) {
		p, err := q.Get(ctx, "2")
		require.NoError(t, err)
		assert.Equal(t, "Smartphone", p.Name)
	})

	t.Run("Get unknown id", func(t *testing.T) {
		_, err := q.Get(ctx, "999")
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})
}

func TestHealthQueriesCheck(t *testing.T) {
	store := memstore.NewCartStore()
	_, err := store.Add("1", 2)
	require.NoError(t, err)
	_, err = store.Add("2", 1)
	require.NoError(t, err)

	q := queries.NewHealthQueries(builder.NewTestCatalog(), store)
	view := q.Check(context.Background())

	assert.Equal(t, "OK", view.Status)
	assert.Equal(t, 3, view.Products)
	assert.Equal(t, 2, view.CartItems)
}
