package queries

import "context"

type HealthQueries interface {
	Check(ctx context.Context) *HealthView
}

type healthQueriesImpl struct {
	products CatalogReader
	carts    CartReader
}

func NewHealthQueries(products CatalogReader, carts CartReader) HealthQueries {
	return &healthQueriesImpl{products: products, carts: carts}
}

func (q *healthQueriesImpl) Check(_ context.Context) *HealthView {
	return &HealthView{
		Status:    "OK",
		Products:  q.products.Len(),
		CartItems: q.carts.Len(),
	}
}
