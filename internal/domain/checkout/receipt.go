package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"storefront-api/internal/domain/pricing"
)

const StatusCompleted = "completed"

// Receipt is the immutable record of a completed checkout. Its line items
// are resolved copies, so neither later catalog changes nor the cart reset
// can alter a receipt once stamped. Total covers items only; shipping is
// reported separately.
type Receipt struct {
	OrderID   string
	Timestamp time.Time
	Customer  CustomerInfo
	Items     []pricing.ResolvedLine
	Total     decimal.Decimal
	Shipping  ShippingQuote
	Status    string
}

func NewReceipt(orderID string, at time.Time, customer CustomerInfo, items []pricing.ResolvedLine, total decimal.Decimal, shipping ShippingQuote) *Receipt {
	return &Receipt{
		OrderID:   orderID,
		Timestamp: at,
		Customer:  customer,
		Items:     items,
		Total:     total,
		Shipping:  shipping,
		Status:    StatusCompleted,
	}
}
