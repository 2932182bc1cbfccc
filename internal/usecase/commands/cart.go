package commands

import (
	"context"

	"github.com/google/uuid"

	"storefront-api/internal/pkg/errs"
)

// DefaultAddQuantity applies when an add request carries no quantity.
const DefaultAddQuantity = 1

type AddItemResult struct {
	LineItemID uuid.UUID
	Quantity   int // quantity on the line after merging
}

type CartCommands interface {
	// AddItem is additive: adding a product already in the cart increments
	// its line quantity instead of creating a second line.
	AddItem(ctx context.Context, productID string, quantity int) (*AddItemResult, error)
	// SetQuantity is absolute; a non-positive quantity removes the line.
	SetQuantity(ctx context.Context, lineItemID uuid.UUID, quantity int) (removed bool, err error)
	RemoveItem(ctx context.Context, lineItemID uuid.UUID) error
	Clear(ctx context.Context) (int, error)
}

type cartCommandsImpl struct {
	carts    CartRepository
	products ProductReader
}

func NewCartCommands(carts CartRepository, products ProductReader) CartCommands {
	return &cartCommandsImpl{carts: carts, products: products}
}

func (uc *cartCommandsImpl) AddItem(_ context.Context, productID string, quantity int) (*AddItemResult, error) {
	// The catalog is immutable, so validate-then-add cannot race with a
	// product disappearing.
	if _, ok := uc.products.Get(productID); !ok {
		return nil, errs.Wrap(errs.ErrProductNotFound, productID)
	}

	li, err := uc.carts.Add(productID, quantity)
	if err != nil {
		return nil, err
	}
	return &AddItemResult{LineItemID: li.ID, Quantity: li.Quantity}, nil
}

func (uc *cartCommandsImpl) SetQuantity(_ context.Context, lineItemID uuid.UUID, quantity int) (bool, error) {
	return uc.carts.SetQuantity(lineItemID, quantity)
}

func (uc *cartCommandsImpl) RemoveItem(_ context.Context, lineItemID uuid.UUID) error {
	return uc.carts.Remove(lineItemID)
}

func (uc *cartCommandsImpl) Clear(_ context.Context) (int, error) {
	return uc.carts.Clear(), nil
}
