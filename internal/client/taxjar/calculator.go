package taxjar

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	httpClient "github.com/cyphera/tax-calculator/internal/client/http"
	"github.com/cyphera/tax-calculator/internal/codec"
	"github.com/cyphera/tax-calculator/internal/interfaces"
	"github.com/cyphera/tax-calculator/internal/logger"
	"github.com/cyphera/tax-calculator/internal/taxerr"
	"github.com/cyphera/tax-calculator/internal/types/business"
)

const (
	// APIEndpoint is the TaxJar v2 base URL
	APIEndpoint = "https://api.taxjar.com/v2/"

	ratesPath = "rates"
	taxesPath = "taxes"

	apiVersionHeader = "x-api-version"
)

// Config configures a Calculator
type Config struct {
	// APIKey is sent as a bearer token on every request
	APIKey string
	// APIVersion is sent as x-api-version when not empty
	APIVersion string

	// RestClient defaults to an http.HTTPClient
	RestClient interfaces.RestClient
	// JSONConverter defaults to a codec.JSONConverter
	JSONConverter interfaces.JSONConverter
}

// Calculator looks up rates and taxes through the TaxJar API.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	apiKey        string
	apiVersion    string
	restClient    interfaces.RestClient
	jsonConverter interfaces.JSONConverter
	logger        *zap.Logger
}

// NewCalculator creates a TaxJar calculator
func NewCalculator(config Config) *Calculator {
	if config.RestClient == nil {
		config.RestClient = httpClient.NewHTTPClient()
	}
	if config.JSONConverter == nil {
		config.JSONConverter = codec.NewJSONConverter()
	}

	return &Calculator{
		apiKey:        config.APIKey,
		apiVersion:    config.APIVersion,
		restClient:    config.RestClient,
		jsonConverter: config.JSONConverter,
		logger:        logger.Log.With(zap.String("component", "taxjar_calculator")),
	}
}

// APIVersion returns the configured API version, which may be empty
func (c *Calculator) APIVersion() string {
	return c.apiVersion
}

func (c *Calculator) headers() map[string]string {
	headers := map[string]string{
		"Authorization": "Bearer " + c.apiKey,
	}
	if c.apiVersion != "" {
		headers[apiVersionHeader] = c.apiVersion
	}
	return headers
}

func constructURI(fragment, resourceParam string) string {
	uri := APIEndpoint + fragment
	if resourceParam != "" {
		uri += "/" + url.PathEscape(resourceParam)
	}
	return uri
}

// GetTaxRate returns the single rate that applies at address.
// EU countries report the VAT standard rate, everything else the combined rate.
func (c *Calculator) GetTaxRate(ctx context.Context, address *business.Address) (decimal.Decimal, error) {
	if address == nil || isBlank(address.PostalCode) {
		return decimal.Zero, taxerr.NewInputError("The address Zip is required")
	}
	if !isBlank(address.Country) && !IsValidCountry(address.Country) {
		return decimal.Zero, taxerr.NewInputError("The address Country %s is not a supported country", address.Country)
	}

	parameters := ratesParameters(address)

	c.logger.Debug("Requesting tax rate",
		zap.String("path", ratesPath),
		zap.Int("parameter_count", len(parameters)))

	response, err := c.restClient.Get(ctx, constructURI(ratesPath, address.PostalCode), parameters, c.headers())
	if err != nil {
		c.logger.Warn("Tax rate request failed", zap.Error(err))
		return decimal.Zero, taxerr.WrapInternal(err, "Could not complete Get Tax Rate request")
	}
	if err := c.raiseResponseErrors(ctx, response); err != nil {
		return decimal.Zero, err
	}

	decoded, err := decodeResponseBody[RatesResponseWrapper](ctx, c.jsonConverter, response)
	if err != nil {
		return decimal.Zero, err
	}
	if decoded.Rate == nil {
		return decimal.Zero, taxerr.NewInternalError("Could not decode API response: missing rate")
	}

	if IsCountryEu(decoded.Rate.Country) {
		return decoded.Rate.StandardRate, nil
	}
	return decoded.Rate.CombinedRate, nil
}

// CalculateTaxes returns the amount to collect for a shipment. fromAddress may be nil.
func (c *Calculator) CalculateTaxes(ctx context.Context, fromAddress, toAddress *business.Address, amount, shipping decimal.Decimal) (decimal.Decimal, error) {
	if err := validateShipment(fromAddress, toAddress, amount); err != nil {
		return decimal.Zero, err
	}

	requestBody, err := c.jsonConverter.Serialize(NewTaxesRequest(fromAddress, toAddress, amount, shipping))
	if err != nil {
		return decimal.Zero, taxerr.WrapInternal(err, "Could not serialize fromAddress, toAddress, amount, and shipping into valid request")
	}

	c.logger.Debug("Requesting tax calculation",
		zap.String("path", taxesPath),
		zap.String("to_country", toAddress.Country))

	response, err := c.restClient.Post(ctx, constructURI(taxesPath, ""), requestBody, c.headers())
	if err != nil {
		c.logger.Warn("Tax calculation request failed", zap.Error(err))
		return decimal.Zero, taxerr.WrapInternal(err, "Could not complete Calculate Taxes request")
	}
	if err := c.raiseResponseErrors(ctx, response); err != nil {
		return decimal.Zero, err
	}

	decoded, err := decodeResponseBody[TaxesResponseWrapper](ctx, c.jsonConverter, response)
	if err != nil {
		return decimal.Zero, err
	}
	if decoded.Tax == nil {
		return decimal.Zero, taxerr.NewInternalError("Could not decode API response: missing tax")
	}

	return decoded.Tax.AmountToCollect, nil
}

func validateShipment(fromAddress, toAddress *business.Address, amount decimal.Decimal) error {
	if toAddress == nil || isBlank(toAddress.Country) {
		return taxerr.NewInputError("The To Address Country is required")
	}
	if !IsValidCountry(toAddress.Country) {
		return taxerr.NewInputError("The To Address Country %s is not a supported country", toAddress.Country)
	}
	if fromAddress != nil && !isBlank(fromAddress.Country) && !IsValidCountry(fromAddress.Country) {
		return taxerr.NewInputError("The From Address Country %s is not a supported country", fromAddress.Country)
	}
	if toAddress.Country == UnitedStates && isBlank(toAddress.PostalCode) {
		return taxerr.NewInputError("The To Address Zip is required for US addresses")
	}
	if (toAddress.Country == UnitedStates || toAddress.Country == Canada) && isBlank(toAddress.State) {
		return taxerr.NewInputError("The To Address State is required for US and CA addresses")
	}
	if !amount.IsPositive() {
		return taxerr.NewInputError("The amount must be greater than zero")
	}
	return nil
}

// raiseResponseErrors classifies a non-2xx response
func (c *Calculator) raiseResponseErrors(ctx context.Context, response interfaces.RestResponse) error {
	if response.IsSuccess() {
		return nil
	}

	statusCode := response.StatusCode()
	var err error
	switch statusCode {
	case http.StatusUnauthorized:
		err = taxerr.NewConfigurationError("API key is unauthorized")
	case http.StatusForbidden:
		err = taxerr.NewConfigurationError("The API key is not authorized for this use")
	default:
		err = taxerr.NewInternalError("Request failed with error: %s", c.errorDetail(ctx, response))
	}

	c.logger.Warn("TaxJar returned an error response",
		zap.Int("status", statusCode),
		zap.Stringer("kind", taxerr.KindOf(err)),
		zap.String("message", err.Error()))
	return err
}

// errorDetail prefers the decoded TaxJar error body and falls back to the status line
func (c *Calculator) errorDetail(ctx context.Context, response interfaces.RestResponse) string {
	fallback := fmt.Sprintf("%d - %s", response.StatusCode(), response.Reason())

	body, err := response.Body(ctx)
	if err != nil {
		return fallback
	}
	detail, err := codec.DeserializeAs[ErrorResponse](c.jsonConverter, body)
	if err != nil || detail == nil || (detail.Error == "" && detail.Detail == "") {
		return fallback
	}
	return fmt.Sprintf("%s - %s", detail.Error, detail.Detail)
}

func decodeResponseBody[T any](ctx context.Context, converter interfaces.JSONConverter, response interfaces.RestResponse) (*T, error) {
	body, err := response.Body(ctx)
	if err != nil {
		return nil, taxerr.WrapInternal(err, "Could not read API response")
	}

	decoded, err := codec.DeserializeAs[T](converter, body)
	if err != nil {
		return nil, taxerr.WrapInternal(err, "Could not decode API response")
	}
	if decoded == nil {
		return nil, taxerr.NewInternalError("Could not decode API response: empty body")
	}
	return decoded, nil
}

// IsValidCountry reports whether country is supported
func (c *Calculator) IsValidCountry(country string) bool { return IsValidCountry(country) }

// IsCountryEu reports whether country is an EU member
func (c *Calculator) IsCountryEu(country string) bool { return IsCountryEu(country) }

// SupportedCountries returns every supported country code
func (c *Calculator) SupportedCountries() []string { return SupportedCountries() }

var _ interfaces.TaxCalculator = (*Calculator)(nil)
