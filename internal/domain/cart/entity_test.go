//go:build unit

package cart_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/domain/cart"
	"storefront-api/internal/pkg/errs"
)

func TestNewLineItem(t *testing.T) {
	t.Run("valid quantity", func(t *testing.T) {
		li, err := cart.NewLineItem("1", 2)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, li.ID)
		assert.Equal(t, "1", li.ProductID)
		assert.Equal(t, 2, li.Quantity)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		for _, q := range []int{0, -1} {
			_, err := cart.NewLineItem("1", q)
			assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
		}
	})

	t.Run("ids are unique per line", func(t *testing.T) {
		a, err := cart.NewLineItem("1", 1)
		require.NoError(t, err)
		b, err := cart.NewLineItem("1", 1)
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}
