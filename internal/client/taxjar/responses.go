package taxjar

import (
	"bytes"
	"strconv"

	"github.com/shopspring/decimal"
)

// RatesResponseWrapper is the envelope returned by GET /rates/{zip}
type RatesResponseWrapper struct {
	Rate *RatesResponse `json:"rate"`
}

// RatesResponse holds the per-jurisdiction rates for a location.
// Rates may arrive as JSON numbers or numeric strings.
type RatesResponse struct {
	Zip                   string          `json:"zip"`
	Country               string          `json:"country"`
	CountryName           string          `json:"name"`
	CountryRate           decimal.Decimal `json:"country_rate"`
	State                 string          `json:"state"`
	StateRate             decimal.Decimal `json:"state_rate"`
	County                string          `json:"county"`
	CountyRate            decimal.Decimal `json:"county_rate"`
	City                  string          `json:"city"`
	CityRate              decimal.Decimal `json:"city_rate"`
	CombinedDistrictRate  decimal.Decimal `json:"combined_district_rate"`
	CombinedRate          decimal.Decimal `json:"combined_rate"`
	FreightTaxable        bool            `json:"freight_taxable"`
	StandardRate          decimal.Decimal `json:"standard_rate"`
	ReducedRate           decimal.Decimal `json:"reduced_rate"`
	SuperReducedRate      decimal.Decimal `json:"super_reduced_rate"`
	ParkingRate           decimal.Decimal `json:"parking_rate"`
	DistanceSaleThreshold decimal.Decimal `json:"distance_sale_threshold"`
}

// TaxesResponseWrapper is the envelope returned by POST /taxes
type TaxesResponseWrapper struct {
	Tax *TaxesResponse `json:"tax"`
}

// TaxesResponse is the tax owed for an order
type TaxesResponse struct {
	OrderTotalAmount decimal.Decimal   `json:"order_total_amount"`
	Shipping         decimal.Decimal   `json:"shipping"`
	TaxableAmount    decimal.Decimal   `json:"taxable_amount"`
	AmountToCollect  decimal.Decimal   `json:"amount_to_collect"`
	Rate             decimal.Decimal   `json:"rate"`
	HasNexus         bool              `json:"has_nexus"`
	FreightTaxable   bool              `json:"freight_taxable"`
	TaxSource        string            `json:"tax_source"`
	ExemptionType    string            `json:"exemption_type"`
	Jurisdictions    *TaxJurisdictions `json:"jurisdictions"`
	Breakdown        *FullTaxBreakdown `json:"breakdown"`
}

// TaxJurisdictions names the jurisdictions an order was taxed in
type TaxJurisdictions struct {
	Country string `json:"country"`
	State   string `json:"state"`
	County  string `json:"county"`
	City    string `json:"city"`
}

// TaxBreakdown splits collectable tax by jurisdiction level
type TaxBreakdown struct {
	TaxableAmount                 decimal.Decimal `json:"taxable_amount"`
	TaxCollectable                decimal.Decimal `json:"tax_collectable"`
	CombinedTaxRate               decimal.Decimal `json:"combined_tax_rate"`
	StateTaxableAmount            decimal.Decimal `json:"state_taxable_amount"`
	StateTaxRate                  decimal.Decimal `json:"state_tax_rate"`
	StateTaxCollectable           decimal.Decimal `json:"state_tax_collectable"`
	CountyTaxableAmount           decimal.Decimal `json:"county_taxable_amount"`
	CountyTaxRate                 decimal.Decimal `json:"county_tax_rate"`
	CountyTaxCollectable          decimal.Decimal `json:"county_tax_collectable"`
	CityTaxableAmount             decimal.Decimal `json:"city_taxable_amount"`
	CityTaxRate                   decimal.Decimal `json:"city_tax_rate"`
	CityTaxCollectable            decimal.Decimal `json:"city_tax_collectable"`
	SpecialDistrictTaxableAmount  decimal.Decimal `json:"special_district_taxable_amount"`
	SpecialTaxRate                decimal.Decimal `json:"special_tax_rate"`
	SpecialDistrictTaxCollectable decimal.Decimal `json:"special_district_tax_collectable"`
	GSTTaxableAmount              decimal.Decimal `json:"gst_taxable_amount"`
	GSTTaxRate                    decimal.Decimal `json:"gst_tax_rate"`
	GST                           decimal.Decimal `json:"gst"`
	PSTTaxableAmount              decimal.Decimal `json:"pst_taxable_amount"`
	PSTTaxRate                    decimal.Decimal `json:"pst_tax_rate"`
	PST                           decimal.Decimal `json:"pst"`
	QSTTaxableAmount              decimal.Decimal `json:"qst_taxable_amount"`
	QSTTaxRate                    decimal.Decimal `json:"qst_tax_rate"`
	QST                           decimal.Decimal `json:"qst"`
	CountryTaxableAmount          decimal.Decimal `json:"country_taxable_amount"`
	CountryTaxRate                decimal.Decimal `json:"country_tax_rate"`
	CountryTaxCollectable         decimal.Decimal `json:"country_tax_collectable"`
}

// TaxBreakdownLineItem is the breakdown for one order line
type TaxBreakdownLineItem struct {
	ID string `json:"id"`
	TaxBreakdown
}

// FullTaxBreakdown is the order level breakdown including shipping and lines
type FullTaxBreakdown struct {
	TaxBreakdown
	Shipping  *TaxBreakdown          `json:"shipping"`
	LineItems []TaxBreakdownLineItem `json:"line_items"`
}

// ErrorResponse is the body TaxJar returns with non-2xx statuses
type ErrorResponse struct {
	Error  string         `json:"error"`
	Detail string         `json:"detail"`
	Status flexibleString `json:"status"`
}

// flexibleString accepts a JSON string or number. TaxJar has sent both for status.
type flexibleString string

func (s *flexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*s = flexibleString(unquoted)
		return nil
	}
	if _, err := strconv.ParseFloat(string(data), 64); err != nil {
		return err
	}
	*s = flexibleString(data)
	return nil
}
