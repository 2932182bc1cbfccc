package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")

	// Cart errors
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")

	// A cart line referencing a product missing from the catalog is an
	// internal fault, not a client error: AddItem validates existence and
	// the catalog never shrinks during the process lifetime.
	ErrCartInconsistent = errors.New("cart line references unknown product")

	// Checkout errors
	ErrCartEmpty           = errors.New("cart is empty")
	ErrInvalidCustomerInfo = errors.New("invalid customer info")
)
