package queries

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront-api/internal/domain/cart"
	"storefront-api/internal/domain/catalog"
)

// CartLineView is a resolved, display-ready cart line. Field names mirror
// pricing.ResolvedLine so conversion is a straight copy.
type CartLineView struct {
	ID        uuid.UUID
	ProductID string
	Quantity  int
	Name      string
	UnitPrice decimal.Decimal
	Image     string
	LineTotal decimal.Decimal
}

// CartView is the resolved cart: lines in insertion order plus the grand
// total, always recomputed from current catalog prices.
type CartView struct {
	Items []CartLineView
	Total decimal.Decimal
}

type HealthView struct {
	Status    string
	Products  int
	CartItems int
}

// CatalogReader is the read access queries take on the catalog.
type CatalogReader interface {
	All() []catalog.Product
	Get(id string) (catalog.Product, bool)
	Len() int
}

// CartReader is the read access queries take on the cart store.
type CartReader interface {
	View() []cart.LineItem
	Len() int
}
