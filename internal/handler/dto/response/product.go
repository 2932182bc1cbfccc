package response

import (
	"github.com/jinzhu/copier"

	"storefront-api/internal/domain/catalog"
)

type ProductResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Price          float64           `json:"price"`
	Image          string            `json:"image"`
	Description    string            `json:"description"`
	Brand          string            `json:"brand"`
	Category       string            `json:"category"`
	InStock        bool              `json:"inStock"`
	StockQuantity  int               `json:"stockQuantity"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
}

func FromProduct(p *catalog.Product) *ProductResponse {
	var resp ProductResponse
	// Field names line up except Price, which narrows from decimal.
	_ = copier.Copy(&resp, p)
	resp.Price = p.Price.InexactFloat64()
	return &resp
}

func FromProductList(products []catalog.Product) []*ProductResponse {
	res := make([]*ProductResponse, len(products))
	for i := range products {
		res[i] = FromProduct(&products[i])
	}
	return res
}
