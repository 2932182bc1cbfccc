package response

import "storefront-api/internal/usecase/queries"

type CartLineResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	ItemTotal float64 `json:"itemTotal"`
}

type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total float64            `json:"total"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	items := make([]CartLineResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = CartLineResponse{
			ID:        it.ID.String(),
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Name:      it.Name,
			Price:     it.UnitPrice.InexactFloat64(),
			Image:     it.Image,
			ItemTotal: it.LineTotal.InexactFloat64(),
		}
	}
	return &CartResponse{
		Items: items,
		Total: v.Total.InexactFloat64(),
	}
}

type AddItemResponse struct {
	Message    string `json:"message"`
	LineItemID string `json:"lineItemId"`
	Quantity   int    `json:"quantity"`
}

type ClearCartResponse struct {
	Message      string `json:"message"`
	ItemsRemoved int    `json:"itemsRemoved"`
}
