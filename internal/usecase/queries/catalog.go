package queries

import (
	"context"

	"storefront-api/internal/domain/catalog"
	"storefront-api/internal/pkg/errs"
)

type CatalogQueries interface {
	List(ctx context.Context) []catalog.Product
	Get(ctx context.Context, id string) (*catalog.Product, error)
}

type catalogQueriesImpl struct {
	products CatalogReader
}

func NewCatalogQueries(products CatalogReader) CatalogQueries {
	return &catalogQueriesImpl{products: products}
}

func (q *catalogQueriesImpl) List(_ context.Context) []catalog.Product {
	return q.products.All()
}

func (q *catalogQueriesImpl) Get(_ context.Context, id string) (*catalog.Product, error) {
	p, ok := q.products.Get(id)
	if !ok {
		return nil, errs.Wrap(errs.ErrProductNotFound, id)
	}
	return &p, nil
}
