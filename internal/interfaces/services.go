package interfaces

//go:generate mockgen -destination=../mocks/mock_services.go -package=mocks github.com/cyphera/tax-calculator/internal/interfaces TaxCalculator,TaxService,QuoteService

import (
	"context"

	"github.com/cyphera/tax-calculator/internal/types/business"
	"github.com/shopspring/decimal"
)

// TaxCalculator computes rates and amounts owed through a tax provider
type TaxCalculator interface {
	GetTaxRate(ctx context.Context, address *business.Address) (decimal.Decimal, error)
	CalculateTaxes(ctx context.Context, fromAddress, toAddress *business.Address, amount, shipping decimal.Decimal) (decimal.Decimal, error)
	IsValidCountry(country string) bool
	IsCountryEu(country string) bool
	SupportedCountries() []string
}

// TaxService is the entry point used by handlers and the CLI
type TaxService interface {
	GetTaxRate(ctx context.Context, address *business.Address, customer *business.Customer) (decimal.Decimal, error)
	CalculateTaxes(ctx context.Context, fromAddress, toAddress *business.Address, amount, shipping decimal.Decimal, customer *business.Customer) (decimal.Decimal, error)
	SupportedCountries(customer *business.Customer) []string
}

// QuoteService combines rates and taxes into a single quote
type QuoteService interface {
	Quote(ctx context.Context, fromAddress, toAddress *business.Address, subtotal, shipping decimal.Decimal, customer *business.Customer) (*business.TaxQuote, error)
}
