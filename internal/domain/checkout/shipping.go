package checkout

import "github.com/shopspring/decimal"

// Flat-rate shipping policy. The threshold is strict: an item total of
// exactly 50.00 still pays the standard fee.
var (
	FreeShippingThreshold = decimal.RequireFromString("50.00")
	StandardShippingCost  = decimal.RequireFromString("4.99")
)

const (
	ShippingMethodStandard = "Standard"
	ShippingMethodFree     = "Standard/Free"
	ShippingEstimate       = "3-5 business days"
)

// ShippingQuote is the shipping cost and method for one order. It is
// reported separately from the item total on the receipt.
type ShippingQuote struct {
	Method            string
	Cost              decimal.Decimal
	EstimatedDelivery string
}

func QuoteShipping(itemTotal decimal.Decimal) ShippingQuote {
	if itemTotal.GreaterThan(FreeShippingThreshold) {
		return ShippingQuote{
			Method:            ShippingMethodFree,
			Cost:              decimal.Zero,
			EstimatedDelivery: ShippingEstimate,
		}
	}
	return ShippingQuote{
		Method:            ShippingMethodStandard,
		Cost:              StandardShippingCost,
		EstimatedDelivery: ShippingEstimate,
	}
}
