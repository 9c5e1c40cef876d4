package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cyphera/tax-calculator/internal/constants"
	"github.com/cyphera/tax-calculator/internal/logger"
	"github.com/cyphera/tax-calculator/internal/middleware"
	"github.com/cyphera/tax-calculator/internal/taxerr"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status string `json:"status"`
}

// sendTaxError writes err using the presentation policy: input errors are shown verbatim,
// configuration and internal errors are logged and replaced by a generic message.
func sendTaxError(c *gin.Context, err error) {
	if taxerr.IsInput(err) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	logger.Error("Tax request failed",
		zap.String("path", c.FullPath()),
		zap.Stringer("kind", taxerr.KindOf(err)),
		zap.String("correlation_id", middleware.GetCorrelationID(c)),
		zap.Error(err))
	c.JSON(http.StatusBadGateway, ErrorResponse{Error: constants.GenericTaxFailureMessage})
}

// sendBindError rejects a request body that could not be decoded
func sendBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
}
