package response

import (
	"time"

	"storefront-api/internal/domain/checkout"
)

type CustomerInfoResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ShippingResponse struct {
	Method            string  `json:"method"`
	Cost              float64 `json:"cost"`
	EstimatedDelivery string  `json:"estimatedDelivery"`
}

type ReceiptResponse struct {
	OrderID      string               `json:"orderId"`
	Timestamp    string               `json:"timestamp"`
	CustomerInfo CustomerInfoResponse `json:"customerInfo"`
	Items        []CartLineResponse   `json:"items"`
	Total        float64              `json:"total"`
	Shipping     ShippingResponse     `json:"shipping"`
	Status       string               `json:"status"`
}

func FromReceipt(r *checkout.Receipt) *ReceiptResponse {
	items := make([]CartLineResponse, len(r.Items))
	for i, it := range r.Items {
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
	return &ReceiptResponse{
		OrderID:   r.OrderID,
		Timestamp: r.Timestamp.UTC().Format(time.RFC3339),
		CustomerInfo: CustomerInfoResponse{
			Name:  r.Customer.Name(),
			Email: r.Customer.Email(),
		},
		Items: items,
		Total: r.Total.InexactFloat64(),
		Shipping: ShippingResponse{
			Method:            r.Shipping.Method,
			Cost:              r.Shipping.Cost.InexactFloat64(),
			EstimatedDelivery: r.Shipping.EstimatedDelivery,
		},
		Status: r.Status,
	}
}
