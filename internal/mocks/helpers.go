package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockRestClientForTest creates a new mock RestClient for testing
func NewMockRestClientForTest(t *testing.T) *MockRestClient {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockRestClient(ctrl)
}

// NewMockTaxCalculatorForTest creates a new mock TaxCalculator for testing
func NewMockTaxCalculatorForTest(t *testing.T) *MockTaxCalculator {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTaxCalculator(ctrl)
}

// NewMockTaxServiceForTest creates a new mock TaxService for testing
func NewMockTaxServiceForTest(t *testing.T) *MockTaxService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockTaxService(ctrl)
}

// NewMockQuoteServiceForTest creates a new mock QuoteService for testing
func NewMockQuoteServiceForTest(t *testing.T) *MockQuoteService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuoteService(ctrl)
}
