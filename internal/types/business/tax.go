package business

import "github.com/shopspring/decimal"

// TaxQuote combines the origin and destination rates with the tax owed for a shipment
type TaxQuote struct {
	OriginRate      *decimal.Decimal `json:"origin_rate,omitempty"`
	DestinationRate decimal.Decimal  `json:"destination_rate"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	Shipping        decimal.Decimal  `json:"shipping"`
	Taxes           decimal.Decimal  `json:"taxes"`
	GrandTotal      decimal.Decimal  `json:"grand_total"`
}
