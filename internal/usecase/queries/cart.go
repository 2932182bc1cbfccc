package queries

import (
	"context"

	"github.com/jinzhu/copier"

	"storefront-api/internal/domain/pricing"
	"storefront-api/internal/pkg/errs"
)

type CartQueries interface {
	// View resolves the current cart against the catalog. An empty cart is
	// not an error: it yields an empty list and a total of 0.00.
	View(ctx context.Context) (*CartView, error)
}

type cartQueriesImpl struct {
	carts    CartReader
	products CatalogReader
}

func NewCartQueries(carts CartReader, products CatalogReader) CartQueries {
	return &cartQueriesImpl{carts: carts, products: products}
}

func (q *cartQueriesImpl) View(_ context.Context) (*CartView, error) {
	resolved, err := pricing.Resolve(q.carts.View(), q.products)
	if err != nil {
		return nil, err
	}

	items := make([]CartLineView, 0, len(resolved))
	if err := copier.Copy(&items, &resolved); err != nil {
		return nil, errs.Wrap(err, "convert resolved lines")
	}

	return &CartView{
		Items: items,
		Total: pricing.GrandTotal(resolved),
	}, nil
}
