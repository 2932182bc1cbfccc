package cart

import (
	"github.com/google/uuid"

	"storefront-api/internal/pkg/errs"
)

// LineItem is one row of the cart: a product reference and a quantity.
// Invariant (held by the store): at most one line item per product, so
// adding an existing product merges into its line instead of appending.
type LineItem struct {
	ID        uuid.UUID
	ProductID string
	Quantity  int
}

func NewLineItem(productID string, quantity int) (LineItem, error) {
	if quantity < 1 {
		return LineItem{}, errs.ErrInvalidQuantity
	}
	return LineItem{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  quantity,
	}, nil
}
