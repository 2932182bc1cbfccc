package catalog

import "github.com/shopspring/decimal"

// Product is a purchasable catalog entry. Products are immutable for the
// lifetime of the process; the catalog is loaded once at startup and is
// treated as read-only configuration.
type Product struct {
	ID             string
	Name           string
	Price          decimal.Decimal
	Image          string
	Description    string
	Brand          string
	Category       string
	InStock        bool
	StockQuantity  int
	Features       []string
	Specifications map[string]string
	Rating         float64
	ReviewCount    int
}
