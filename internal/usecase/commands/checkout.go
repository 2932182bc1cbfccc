package commands

import (
	"context"

	"storefront-api/internal/domain/cart"
	"storefront-api/internal/domain/checkout"
	"storefront-api/internal/domain/pricing"
	"storefront-api/internal/pkg/clock"
	"storefront-api/internal/pkg/ordernum"
)

type CheckoutRequest struct {
	Name  string
	Email string
}

type CheckoutCommands interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*checkout.Receipt, error)
}

type checkoutCommandsImpl struct {
	carts    CartRepository
	products ProductReader
	clock    clock.Clock
	orders   *ordernum.Generator
}

func NewCheckoutCommands(carts CartRepository, products ProductReader, clk clock.Clock, orders *ordernum.Generator) CheckoutCommands {
	return &checkoutCommandsImpl{carts: carts, products: products, clock: clk, orders: orders}
}

// Checkout validates the customer info, then drains the cart: resolution,
// totals, shipping and the receipt stamp all run under the store's lock,
// and the cart is cleared only if every step succeeds. A failure at any
// step leaves the cart exactly as it was.
func (uc *checkoutCommandsImpl) Checkout(_ context.Context, req CheckoutRequest) (*checkout.Receipt, error) {
	customer, err := checkout.NewCustomerInfo(req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	var receipt *checkout.Receipt
	err = uc.carts.Drain(func(items []cart.LineItem) error {
		resolved, rerr := pricing.Resolve(items, uc.products)
		if rerr != nil {
			return rerr
		}
		total := pricing.GrandTotal(resolved)
		quote := checkout.QuoteShipping(total)
		now := uc.clock.Now()
		receipt = checkout.NewReceipt(uc.orders.Next(now), now, customer, resolved, total, quote)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}
