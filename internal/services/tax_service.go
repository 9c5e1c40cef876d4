package services

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cyphera/tax-calculator/internal/interfaces"
	"github.com/cyphera/tax-calculator/internal/logger"
	"github.com/cyphera/tax-calculator/internal/types/business"
)

// SimpleTaxService forwards to a single TaxCalculator.
// The customer is accepted for future exemption handling and currently ignored.
type SimpleTaxService struct {
	calculator interfaces.TaxCalculator
	logger     *zap.Logger
}

// NewSimpleTaxService creates a tax service backed by calculator
func NewSimpleTaxService(calculator interfaces.TaxCalculator) *SimpleTaxService {
	return &SimpleTaxService{
		calculator: calculator,
		logger:     logger.Log.With(zap.String("component", "tax_service")),
	}
}

// GetTaxRate returns the rate that applies at address
func (s *SimpleTaxService) GetTaxRate(ctx context.Context, address *business.Address, customer *business.Customer) (decimal.Decimal, error) {
	return s.calculator.GetTaxRate(ctx, address)
}

// CalculateTaxes returns the tax owed for shipping amount plus shipping from fromAddress to toAddress
func (s *SimpleTaxService) CalculateTaxes(ctx context.Context, fromAddress, toAddress *business.Address, amount, shipping decimal.Decimal, customer *business.Customer) (decimal.Decimal, error) {
	if customer != nil && customer.ExemptionType != "" {
		s.logger.Debug("Customer exemption type is not applied",
			zap.String("customer_id", customer.ID),
			zap.String("exemption_type", customer.ExemptionType))
	}
	return s.calculator.CalculateTaxes(ctx, fromAddress, toAddress, amount, shipping)
}

// SupportedCountries returns every country code the calculator accepts
func (s *SimpleTaxService) SupportedCountries(customer *business.Customer) []string {
	return s.calculator.SupportedCountries()
}

var _ interfaces.TaxService = (*SimpleTaxService)(nil)
