package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cyphera/tax-calculator/internal/logger"
	"github.com/cyphera/tax-calculator/internal/mocks"
	"github.com/cyphera/tax-calculator/internal/services"
	"github.com/cyphera/tax-calculator/internal/taxerr"
	"github.com/cyphera/tax-calculator/internal/types/business"
)

func init() {
	logger.InitLogger("test")
}

var (
	fromAddress = &business.Address{Country: "US", State: "CA", City: "La Jolla", PostalCode: "92093", StreetAddress: "9500 Gilman Drive"}
	toAddress   = &business.Address{Country: "US", State: "CA", City: "Los Angeles", PostalCode: "90002", StreetAddress: "1335 E 103rd St"}
)

func TestSimpleTaxService_GetTaxRate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		customer   *business.Customer
		setupMocks func(calculator *mocks.MockTaxCalculator)
		wantRate   string
		wantKind   taxerr.Kind
	}{
		{
			name: "forwards the calculator rate",
			setupMocks: func(calculator *mocks.MockTaxCalculator) {
				calculator.EXPECT().GetTaxRate(ctx, toAddress).Return(decimal.RequireFromString("0.1025"), nil)
			},
			wantRate: "0.1025",
		},
		{
			name:     "ignores the customer",
			customer: &business.Customer{ID: "cust_1", ExemptionType: "wholesale"},
			setupMocks: func(calculator *mocks.MockTaxCalculator) {
				calculator.EXPECT().GetTaxRate(ctx, toAddress).Return(decimal.RequireFromString("0.1025"), nil)
			},
			wantRate: "0.1025",
		},
		{
			name: "returns input errors unchanged",
			setupMocks: func(calculator *mocks.MockTaxCalculator) {
				calculator.EXPECT().GetTaxRate(ctx, toAddress).Return(decimal.Zero, taxerr.NewInputError("The address Zip is required"))
			},
			wantKind: taxerr.Input,
		},
		{
			name: "returns configuration errors unchanged",
			setupMocks: func(calculator *mocks.MockTaxCalculator) {
				calculator.EXPECT().GetTaxRate(ctx, toAddress).Return(decimal.Zero, taxerr.NewConfigurationError("API key is unauthorized"))
			},
			wantKind: taxerr.Configuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calculator := mocks.NewMockTaxCalculatorForTest(t)
			tt.setupMocks(calculator)
			service := services.NewSimpleTaxService(calculator)

			rate, err := service.GetTaxRate(ctx, toAddress, tt.customer)
			if tt.wantKind != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, taxerr.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRate, rate.String())
		})
	}
}

func TestSimpleTaxService_CalculateTaxes(t *testing.T) {
	ctx := context.Background()
	amount := decimal.NewFromInt(15)
	shipping := decimal.RequireFromString("1.5")

	calculator := mocks.NewMockTaxCalculatorForTest(t)
	calculator.EXPECT().CalculateTaxes(ctx, fromAddress, toAddress, amount, shipping).Return(decimal.RequireFromString("1.35"), nil).Times(2)
	service := services.NewSimpleTaxService(calculator)

	taxes, err := service.CalculateTaxes(ctx, fromAddress, toAddress, amount, shipping, nil)
	require.NoError(t, err)
	assert.Equal(t, "1.35", taxes.String())

	taxes, err = service.CalculateTaxes(ctx, fromAddress, toAddress, amount, shipping, &business.Customer{ID: "cust_1", ExemptionType: "non_exempt"})
	require.NoError(t, err)
	assert.Equal(t, "1.35", taxes.String())
}

func TestSimpleTaxService_SupportedCountries(t *testing.T) {
	calculator := mocks.NewMockTaxCalculatorForTest(t)
	calculator.EXPECT().SupportedCountries().Return([]string{"US", "CA", "AU"})
	service := services.NewSimpleTaxService(calculator)

	assert.Equal(t, []string{"US", "CA", "AU"}, service.SupportedCountries(nil))
}

func TestSimpleTaxService_WithCalculator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calculator := mocks.NewMockTaxCalculator(ctrl)
	calculator.EXPECT().GetTaxRate(gomock.Any(), gomock.Nil()).Return(decimal.Zero, taxerr.NewInputError("The address Zip is required"))

	_, err := services.NewSimpleTaxService(calculator).GetTaxRate(context.Background(), nil, nil)
	assert.True(t, taxerr.IsInput(err))
	assert.Equal(t, "The address Zip is required", err.Error())
}
