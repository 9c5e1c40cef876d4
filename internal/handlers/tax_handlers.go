package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/cyphera/tax-calculator/internal/interfaces"
	"github.com/cyphera/tax-calculator/internal/types/business"
)

// TaxHandler exposes the tax service over HTTP
type TaxHandler struct {
	taxService   interfaces.TaxService
	quoteService interfaces.QuoteService
}

// NewTaxHandler creates a tax handler
func NewTaxHandler(taxService interfaces.TaxService, quoteService interfaces.QuoteService) *TaxHandler {
	return &TaxHandler{
		taxService:   taxService,
		quoteService: quoteService,
	}
}

// TaxRateRequest is the body of POST /taxes/rate
type TaxRateRequest struct {
	Address  *business.Address  `json:"address"`
	Customer *business.Customer `json:"customer,omitempty"`
}

// TaxRateResponse carries a single rate
type TaxRateResponse struct {
	Rate decimal.Decimal `json:"rate"`
}

// ShipmentRequest is the body of POST /taxes/calculate and POST /taxes/quote
type ShipmentRequest struct {
	FromAddress *business.Address  `json:"from_address,omitempty"`
	ToAddress   *business.Address  `json:"to_address"`
	Amount      decimal.Decimal    `json:"amount"`
	Shipping    decimal.Decimal    `json:"shipping"`
	Customer    *business.Customer `json:"customer,omitempty"`
}

// CalculateTaxesResponse carries the tax owed for a shipment
type CalculateTaxesResponse struct {
	AmountToCollect decimal.Decimal `json:"amount_to_collect"`
}

// CountriesResponse lists every supported country code
type CountriesResponse struct {
	Countries []string `json:"countries"`
}

// ListCountries godoc
// @Summary List supported countries
// @Description Returns the ISO country codes the calculator accepts
// @Tags taxes
// @Produce json
// @Success 200 {object} CountriesResponse
// @Router /taxes/countries [get]
func (h *TaxHandler) ListCountries(c *gin.Context) {
	c.JSON(http.StatusOK, CountriesResponse{Countries: h.taxService.SupportedCountries(nil)})
}

// GetTaxRate godoc
// @Summary Get tax rate
// @Description Returns the tax rate that applies at an address
// @Tags taxes
// @Accept json
// @Produce json
// @Param request body TaxRateRequest true "Address to rate"
// @Success 200 {object} TaxRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /taxes/rate [post]
func (h *TaxHandler) GetTaxRate(c *gin.Context) {
	var req TaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(c, err)
		return
	}

	rate, err := h.taxService.GetTaxRate(c.Request.Context(), req.Address, req.Customer)
	if err != nil {
		sendTaxError(c, err)
		return
	}

	c.JSON(http.StatusOK, TaxRateResponse{Rate: rate})
}

// CalculateTaxes godoc
// @Summary Calculate taxes
// @Description Returns the amount to collect for a shipment
// @Tags taxes
// @Accept json
// @Produce json
// @Param request body ShipmentRequest true "Shipment to tax"
// @Success 200 {object} CalculateTaxesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /taxes/calculate [post]
func (h *TaxHandler) CalculateTaxes(c *gin.Context) {
	var req ShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(c, err)
		return
	}

	amount, err := h.taxService.CalculateTaxes(c.Request.Context(), req.FromAddress, req.ToAddress, req.Amount, req.Shipping, req.Customer)
	if err != nil {
		sendTaxError(c, err)
		return
	}

	c.JSON(http.StatusOK, CalculateTaxesResponse{AmountToCollect: amount})
}

// Quote godoc
// @Summary Quote a shipment
// @Description Returns origin and destination rates with the tax owed and the grand total
// @Tags taxes
// @Accept json
// @Produce json
// @Param request body ShipmentRequest true "Shipment to quote"
// @Success 200 {object} business.TaxQuote
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /taxes/quote [post]
func (h *TaxHandler) Quote(c *gin.Context) {
	var req ShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBindError(c, err)
		return
	}

	quote, err := h.quoteService.Quote(c.Request.Context(), req.FromAddress, req.ToAddress, req.Amount, req.Shipping, req.Customer)
	if err != nil {
		sendTaxError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
