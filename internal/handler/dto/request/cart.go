package request

import "storefront-api/internal/usecase/commands"

type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"omitempty,min=1"`
}

// QuantityOrDefault falls back to a single unit when the field is omitted,
// matching the add-to-cart contract.
func (r *AddItemRequest) QuantityOrDefault() int {
	if r.Quantity == nil {
		return commands.DefaultAddQuantity
	}
	return *r.Quantity
}

// SetQuantityRequest carries an absolute quantity. Zero and negative values
// are valid input: they remove the line, so the field is a pointer to keep
// "0" distinguishable from "missing".
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
