//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-api/internal/domain/checkout"
	"storefront-api/internal/infra/memstore"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/pkg/ordernum"
	"storefront-api/internal/usecase/commands"
	"storefront-api/tests/common/builder"
)

type checkoutFixture struct {
	cartCmd     commands.CartCommands
	checkoutCmd commands.CheckoutCommands
	store       *memstore.CartStore
	clock       *clock.MockClock
}

func newCheckoutFixture() *checkoutFixture {
	store := memstore.NewCartStore()
	catalog := builder.NewTestCatalog()
	clk := clock.NewMockClock(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	return &checkoutFixture{
		cartCmd:     commands.NewCartCommands(store, catalog),
		checkoutCmd: commands.NewCheckoutCommands(store, catalog, clk, ordernum.NewGenerator()),
		store:       store,
		clock:       clk,
	}
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("full flow: merge, price, free shipping, clear", func(t *testing.T) {
		f := newCheckoutFixture()

		_, err := f.cartCmd.AddItem(ctx, "1", 1)
		require.NoError(t, err)
		_, err = f.cartCmd.AddItem(ctx, "1", 2)
		require.NoError(t, err)

		receipt, err := f.checkoutCmd.Checkout(ctx, builder.NewCheckoutBuilder().BuildCommand())
		require.NoError(t, err)

		// three headphones at 99.99, one merged line
		require.Len(t, receipt.Items, 1)
		assert.Equal(t, 3, receipt.Items[0].Quantity)
		assert.Equal(t, "299.97", receipt.Total.StringFixed(2))
		assert.Equal(t, "0.00", receipt.Shipping.Cost.StringFixed(2))
		assert.Equal(t, checkout.ShippingMethodFree, receipt.Shipping.Method)
		assert.Equal(t, checkout.StatusCompleted, receipt.Status)
		assert.Equal(t, "Jane Doe", receipt.Customer.Name())
		assert.True(t, strings.HasPrefix(receipt.OrderID, ordernum.Prefix+"-"))
		assert.Equal(t, f.clock.Now(), receipt.Timestamp)

		assert.Equal(t, 0, f.store.Len())
	})

	t.Run("below the threshold charges standard shipping", func(t *testing.T) {
		f := newCheckoutFixture()

		// one USB cable: 9.99
		_, err := f.cartCmd.AddItem(ctx, "3", 1)
		require.NoError(t, err)

		receipt, err := f.checkoutCmd.Checkout(ctx, builder.NewCheckoutBuilder().BuildCommand())
		require.NoError(t, err)

		assert.Equal(t, "9.99", receipt.Total.StringFixed(2))
		assert.Equal(t, "4.99", receipt.Shipping.Cost.StringFixed(2))
		assert.Equal(t, checkout.ShippingMethodStandard, receipt.Shipping.Method)
	})

	t.Run("a total of exactly 50.00 still pays shipping", func(t *testing.T) {
		f := newCheckoutFixture()
		catalog := builder.NewTestCatalog(builder.NewProductBuilder().WithPrice("50.00").Build())
		f.checkoutCmd = commands.NewCheckoutCommands(f.store, catalog, f.clock, ordernum.NewGenerator())

		_, err := f.store.Add("1", 1)
		require.NoError(t, err)

		receipt, err := f.checkoutCmd.Checkout(ctx, builder.NewCheckoutBuilder().BuildCommand())
		require.NoError(t, err)
		assert.Equal(t, "4.99", receipt.Shipping.Cost.StringFixed(2))
		assert.Equal(t, checkout.ShippingMethodStandard, receipt.Shipping.Method)
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newCheckoutFixture()

		_, err := f.checkoutCmd.Checkout(ctx, builder.NewCheckoutBuilder().BuildCommand())
		assert.ErrorIs(t, err, errs.ErrCartEmpty)
	})

	t.Run("invalid customer info leaves the cart intact", func(t *testing.T) {
		f := newCheckoutFixture()

		_, err := f.cartCmd.AddItem(ctx, "1", 1)
		require.NoError(t, err)

		_, err = f.checkoutCmd.Checkout(ctx, builder.NewCheckoutBuilder().WithEmail("not-an-email").BuildCommand())
		assert.ErrorIs(t, err, errs.ErrInvalidCustomerInfo)
		assert.Equal(t, 1, f.store.Len())
	})

	t.Run("stale line for a vanished product leaves the cart intact", func(t *testing.T) {
		f := newCheckoutFixture()

		// a line the catalog cannot resolve
		_, err := f.store.Add("999", 1)
		require.NoError(t, err)

		_, err = f.checkoutCmd.Checkout(ctx, builder.NewCheckoutBuilder().BuildCommand())
		assert.ErrorIs(t, err, errs.ErrCartInconsistent)
		assert.Equal(t, 1, f.store.Len())
	})

	t.Run("successive checkouts get distinct order ids", func(t *testing.T) {
		f := newCheckoutFixture()

		_, err := f.cartCmd.AddItem(ctx, "1", 1)
		require.NoError(t, err)
		first, err := f.checkoutCmd.Checkout(ctx, builder.NewCheckoutBuilder().BuildCommand())
		require.NoError(t, err)

		_, err = f.cartCmd.AddItem(ctx, "1", 1)
		require.NoError(t, err)
		second, err := f.checkoutCmd.Checkout(ctx, builder.NewCheckoutBuilder().BuildCommand())
		require.NoError(t, err)

		assert.NotEqual(t, first.OrderID, second.OrderID)
	})
}
