package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cyphera/tax-calculator/internal/mocks"
	"github.com/cyphera/tax-calculator/internal/services"
	"github.com/cyphera/tax-calculator/internal/taxerr"
	"github.com/cyphera/tax-calculator/internal/types/business"
)

func TestQuoteService_Quote(t *testing.T) {
	subtotal := decimal.NewFromInt(15)
	shipping := decimal.RequireFromString("1.5")
	customer := &business.Customer{ID: "cust_1"}

	taxService := mocks.NewMockTaxServiceForTest(t)
	taxService.EXPECT().GetTaxRate(gomock.Any(), fromAddress, customer).Return(decimal.RequireFromString("0.0775"), nil)
	taxService.EXPECT().GetTaxRate(gomock.Any(), toAddress, customer).Return(decimal.RequireFromString("0.1025"), nil)
	taxService.EXPECT().CalculateTaxes(gomock.Any(), fromAddress, toAddress, subtotal, shipping, customer).Return(decimal.RequireFromString("1.35"), nil)

	quote, err := services.NewQuoteService(taxService).Quote(context.Background(), fromAddress, toAddress, subtotal, shipping, customer)
	require.NoError(t, err)

	require.NotNil(t, quote.OriginRate)
	assert.Equal(t, "0.0775", quote.OriginRate.String())
	assert.Equal(t, "0.1025", quote.DestinationRate.String())
	assert.Equal(t, "1.35", quote.Taxes.String())
	assert.True(t, subtotal.Equal(quote.Subtotal))
	assert.True(t, shipping.Equal(quote.Shipping))
	assert.Equal(t, "17.85", quote.GrandTotal.String())
}

func TestQuoteService_QuoteWithoutOrigin(t *testing.T) {
	subtotal := decimal.NewFromInt(100)
	shipping := decimal.Zero

	taxService := mocks.NewMockTaxServiceForTest(t)
	taxService.EXPECT().GetTaxRate(gomock.Any(), toAddress, gomock.Nil()).Return(decimal.RequireFromString("0.1025"), nil)
	taxService.EXPECT().CalculateTaxes(gomock.Any(), gomock.Nil(), toAddress, subtotal, shipping, gomock.Nil()).Return(decimal.RequireFromString("10.25"), nil)

	quote, err := services.NewQuoteService(taxService).Quote(context.Background(), nil, toAddress, subtotal, shipping, nil)
	require.NoError(t, err)

	assert.Nil(t, quote.OriginRate)
	assert.Equal(t, "110.25", quote.GrandTotal.String())
}

func TestQuoteService_QuoteFailures(t *testing.T) {
	subtotal := decimal.NewFromInt(15)

	tests := []struct {
		name       string
		setupMocks func(taxService *mocks.MockTaxService, failure error)
		failure    error
	}{
		{
			name:    "origin rate fails",
			failure: taxerr.NewInputError("The address Zip is required"),
			setupMocks: func(taxService *mocks.MockTaxService, failure error) {
				taxService.EXPECT().GetTaxRate(gomock.Any(), fromAddress, gomock.Any()).Return(decimal.Zero, failure)
				taxService.EXPECT().GetTaxRate(gomock.Any(), toAddress, gomock.Any()).Return(decimal.RequireFromString("0.1"), nil).MaxTimes(1)
				taxService.EXPECT().CalculateTaxes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(1), nil).MaxTimes(1)
			},
		},
		{
			name:    "destination rate fails",
			failure: taxerr.NewConfigurationError("API key is unauthorized"),
			setupMocks: func(taxService *mocks.MockTaxService, failure error) {
				taxService.EXPECT().GetTaxRate(gomock.Any(), fromAddress, gomock.Any()).Return(decimal.RequireFromString("0.1"), nil).MaxTimes(1)
				taxService.EXPECT().GetTaxRate(gomock.Any(), toAddress, gomock.Any()).Return(decimal.Zero, failure)
				taxService.EXPECT().CalculateTaxes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.NewFromInt(1), nil).MaxTimes(1)
			},
		},
		{
			name:    "taxes fail",
			failure: taxerr.NewInternalError("Request failed with error: %s", "500 - Internal Server Error"),
			setupMocks: func(taxService *mocks.MockTaxService, failure error) {
				taxService.EXPECT().GetTaxRate(gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.RequireFromString("0.1"), nil).MaxTimes(2)
				taxService.EXPECT().CalculateTaxes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(decimal.Zero, failure)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxService := mocks.NewMockTaxServiceForTest(t)
			tt.setupMocks(taxService, tt.failure)

			quote, err := services.NewQuoteService(taxService).Quote(context.Background(), fromAddress, toAddress, subtotal, decimal.Zero, nil)
			assert.Nil(t, quote)
			require.Error(t, err)
			assert.Same(t, tt.failure, err)
			assert.Equal(t, taxerr.KindOf(tt.failure), taxerr.KindOf(err))
		})
	}
}
