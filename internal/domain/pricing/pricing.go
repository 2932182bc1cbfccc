package pricing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"storefront-api/internal/domain/cart"
	"storefront-api/internal/domain/catalog"
	"storefront-api/internal/pkg/errs"
)

// ProductLookup is the catalog read access resolution needs.
type ProductLookup interface {
	Get(id string) (catalog.Product, bool)
}

// ResolvedLine joins a cart line with its catalog product: a priced,
// display-ready record. Name, price and image are baked in, so a resolved
// line is decoupled from later cart or catalog changes.
type ResolvedLine struct {
	ID        uuid.UUID
	ProductID string
	Quantity  int
	Name      string
	UnitPrice decimal.Decimal
	Image     string
	LineTotal decimal.Decimal
}

// Resolve prices every cart line against the catalog. Line totals are
// rounded half-up to two decimal places at the point of computation, not
// accumulated as drift across lines.
//
// A line whose product is missing from the catalog should be unreachable:
// AddItem validates existence up front and the catalog never shrinks. If it
// happens anyway, the whole resolution fails with ErrCartInconsistent.
func Resolve(lines []cart.LineItem, products ProductLookup) ([]ResolvedLine, error) {
	resolved := make([]ResolvedLine, 0, len(lines))
	for _, li := range lines {
		p, ok := products.Get(li.ProductID)
		if !ok {
			return nil, errs.Wrap(errs.ErrCartInconsistent, li.ProductID)
		}
		resolved = append(resolved, ResolvedLine{
			ID:        li.ID,
			ProductID: li.ProductID,
			Quantity:  li.Quantity,
			Name:      p.Name,
			UnitPrice: p.Price,
			Image:     p.Image,
			LineTotal: p.Price.Mul(decimal.NewFromInt(int64(li.Quantity))).Round(2),
		})
	}
	return resolved, nil
}

// GrandTotal sums line totals and rounds once at the end.
func GrandTotal(lines []ResolvedLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal)
	}
	return total.Round(2)
}
