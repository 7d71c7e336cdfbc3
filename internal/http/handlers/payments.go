package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tukrent/internal/gateway"
	"tukrent/internal/repositories"
	"tukrent/internal/utils"
)

// CreateBookingCheckout builds the hosted-gateway redirect payload for a
// booking's persisted total. The booking reference travels in custom fields
// so the gateway callback can be matched back.
// POST /api/bookings/:id/checkout
func CreateBookingCheckout(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	b, err := repositories.BookingRepository{}.GetByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "not_found", "booking not found", nil)
		return
	}

	amount, err := utils.ParseMoney(b.RentalPrice)
	if err != nil || amount <= 0 {
		respondError(c, http.StatusConflict, "no_price", "booking has no priced total yet", nil)
		return
	}

	checkout, err := gateway.New(
		appEnv.GatewayMerchantID,
		appEnv.GatewayPublicKey,
		appEnv.GatewayReturnURL,
		appEnv.GatewayCancelURL,
	)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "gateway_unavailable", "payment gateway is not configured", err)
		return
	}

	payload, err := checkout.Build(b.BookingRef, amount, "booking", b.BookingRef)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "gateway_failed", "failed to build checkout payload", err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
