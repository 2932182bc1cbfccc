//go:build unit || e2e

package builder

import (
	"github.com/shopspring/decimal"

	"storefront-api/internal/domain/catalog"
)

type ProductBuilder struct {
	ID          string
	Name        string
	Price       string
	Image       string
	Description string
	Brand       string
	Category    string
	InStock     bool
	Stock       int
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          "1",
		Name:        "Wireless Headphones",
		Price:       "99.99",
		Image:       "https://example.com/headphones.jpg",
		Description: "High-quality wireless headphones",
		Brand:       "AudioMax",
		Category:    "Electronics",
		InStock:     true,
		Stock:       50,
	}
}

// Fluent builder methods
func (b *ProductBuilder) WithID(id string) *ProductBuilder {
	b.ID = id
	return b
}

func (b *ProductBuilder) WithName(name string) *ProductBuilder {
	b.Name = name
	return b
}

func (b *ProductBuilder) WithPrice(price string) *ProductBuilder {
	b.Price = price
	return b
}

func (b *ProductBuilder) Build() catalog.Product {
	return catalog.Product{
		ID:            b.ID,
		Name:          b.Name,
		Price:         decimal.RequireFromString(b.Price),
		Image:         b.Image,
		Description:   b.Description,
		Brand:         b.Brand,
		Category:      b.Category,
		InStock:       b.InStock,
		StockQuantity: b.Stock,
	}
}

// NewTestCatalog builds a catalog from the given products, or a small
// default assortment when none are given.
func NewTestCatalog(products ...catalog.Product) *catalog.Catalog {
	if len(products) == 0 {
		products = []catalog.Product{
			NewProductBuilder().Build(),
			NewProductBuilder().WithID("2").WithName("Smartphone").WithPrice("699.99").Build(),
			NewProductBuilder().WithID("3").WithName("USB Cable").WithPrice("9.99").Build(),
		}
	}
	return catalog.NewCatalog(products)
}
