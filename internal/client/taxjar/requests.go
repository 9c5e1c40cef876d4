package taxjar

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/cyphera/tax-calculator/internal/types/business"
)

// Query parameter names for GET /rates/{zip}
const (
	paramCountry = "country"
	paramState   = "state"
	paramCity    = "city"
	paramStreet  = "street"
)

// nonBlank returns s, or "" when s holds only whitespace
func nonBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

func isBlank(s string) bool {
	return nonBlank(s) == ""
}

// ratesParameters builds the query for GET /rates/{zip}. The zip goes in the path.
func ratesParameters(address *business.Address) map[string]string {
	parameters := make(map[string]string, 4)
	set := func(key, value string) {
		if value = nonBlank(value); value != "" {
			parameters[key] = value
		}
	}
	set(paramCountry, address.Country)
	set(paramState, address.State)
	set(paramCity, address.City)
	set(paramStreet, address.StreetAddress)
	return parameters
}

// wireDecimal encodes as a bare JSON number rather than decimal's default quoted string
type wireDecimal decimal.Decimal

func (d wireDecimal) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(d).String()), nil
}

// TaxesRequest is the body of POST /taxes. Blank strings are omitted from the payload.
type TaxesRequest struct {
	FromCountry   string      `json:"from_country,omitempty"`
	FromZip       string      `json:"from_zip,omitempty"`
	FromState     string      `json:"from_state,omitempty"`
	FromCity      string      `json:"from_city,omitempty"`
	FromStreet    string      `json:"from_street,omitempty"`
	ToCountry     string      `json:"to_country"`
	ToZip         string      `json:"to_zip,omitempty"`
	ToState       string      `json:"to_state,omitempty"`
	ToCity        string      `json:"to_city,omitempty"`
	ToStreet      string      `json:"to_street,omitempty"`
	Amount        wireDecimal `json:"amount"`
	Shipping      wireDecimal `json:"shipping"`
	CustomerID    string      `json:"customer_id,omitempty"`
	ExemptionType string      `json:"exemption_type,omitempty"`
}

// NewTaxesRequest shapes a shipment into the TaxJar request. fromAddress may be nil.
func NewTaxesRequest(fromAddress, toAddress *business.Address, amount, shipping decimal.Decimal) *TaxesRequest {
	request := &TaxesRequest{
		ToCountry: nonBlank(toAddress.Country),
		ToZip:     nonBlank(toAddress.PostalCode),
		ToState:   nonBlank(toAddress.State),
		ToCity:    nonBlank(toAddress.City),
		ToStreet:  nonBlank(toAddress.StreetAddress),
		Amount:    wireDecimal(amount),
		Shipping:  wireDecimal(shipping),
	}
	if fromAddress != nil {
		request.FromCountry = nonBlank(fromAddress.Country)
		request.FromZip = nonBlank(fromAddress.PostalCode)
		request.FromState = nonBlank(fromAddress.State)
		request.FromCity = nonBlank(fromAddress.City)
		request.FromStreet = nonBlank(fromAddress.StreetAddress)
	}
	return request
}
