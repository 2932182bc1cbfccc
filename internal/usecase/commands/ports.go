package commands

import (
	"github.com/google/uuid"

	"storefront-api/internal/domain/cart"
	"storefront-api/internal/domain/catalog"
)

// CartRepository is the mutable line-item store behind the cart commands.
// Implementations serialize mutations; Drain runs its callback under the
// same lock so checkout can validate, price and clear as one step.
type CartRepository interface {
	Add(productID string, quantity int) (cart.LineItem, error)
	SetQuantity(id uuid.UUID, quantity int) (removed bool, err error)
	Remove(id uuid.UUID) error
	Clear() int
	View() []cart.LineItem
	Drain(build func(items []cart.LineItem) error) error
}

// ProductReader is the catalog lookup commands validate against.
type ProductReader interface {
	Get(id string) (catalog.Product, bool)
}
