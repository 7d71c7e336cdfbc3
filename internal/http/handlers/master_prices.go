package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	core "tukrent/domain"
	"tukrent/internal/http/middleware"
	"tukrent/internal/services"
)

// GET /api/master-prices
func GetMasterPrices(c *gin.Context) {
	svc := services.PricingService{Cache: sharedCache, RequestID: middleware.GetRequestID(c)}
	c.JSON(http.StatusOK, svc.MasterPrices(c.Request.Context()))
}

// PUT /api/master-prices replaces the whole pricing document.
func SaveMasterPrices(c *gin.Context) {
	var prices core.MasterPrices
	if !BindJSONOrError(c, &prices) {
		return
	}

	svc := services.PricingService{Cache: sharedCache, RequestID: middleware.GetRequestID(c)}
	if err := svc.SaveMasterPrices(c.Request.Context(), prices); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, prices)
}
