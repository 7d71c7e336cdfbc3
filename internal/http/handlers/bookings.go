package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tukrent/internal/domain/models"
	"tukrent/internal/http/middleware"
	"tukrent/internal/repositories"
	"tukrent/internal/services"
)

func bookingService(c *gin.Context) services.BookingService {
	rid := middleware.GetRequestID(c)
	return services.BookingService{
		BookingRepo: repositories.BookingRepository{},
		Pricing:     services.PricingService{Cache: sharedCache, RequestID: rid},
		Discounts:   services.DiscountService{RequestID: rid},
		Notifier:    sharedNotifier,
		RequestID:   rid,
	}
}

func bookingIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_booking_id", "booking id is not valid", nil)
		return 0, false
	}
	return id, true
}

// GET /api/bookings?status=new|assigned|onboard|finished|PENDING_PAYMENT|PAID
func ListBookings(c *gin.Context) {
	list, err := repositories.BookingRepository{}.List(c.Query("status"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "list_failed", "failed to load bookings", nil)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/bookings/:id
func GetBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	b, err := repositories.BookingRepository{}.GetByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "not_found", "booking not found", nil)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /api/bookings handles the public reservation form.
func CreateBooking(c *gin.Context) {
	var b models.Booking
	if !BindJSONOrError(c, &b) {
		return
	}

	created, err := bookingService(c).Create(c.Request.Context(), b)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/bookings/:id/assign
func AssignBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	var req services.AssignRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	b, err := bookingService(c).Assign(c.Request.Context(), id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PUT /api/bookings/:id/onboard
func MarkBookingOnboard(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	b, err := bookingService(c).MarkOnboard(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PUT /api/bookings/:id/finish
func MarkBookingFinished(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	b, err := bookingService(c).MarkFinished(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type paymentLinkRequest struct {
	PaymentLink string `json:"paymentLink"`
	Recalculate bool   `json:"recalculate"`
}

// PUT /api/bookings/:id/payment-link
func AttachBookingPaymentLink(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	var req paymentLinkRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	b, err := bookingService(c).AttachPaymentLink(c.Request.Context(), id, req.PaymentLink, req.Recalculate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// PUT /api/bookings/:id/paid
func MarkBookingPaid(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	b, err := bookingService(c).MarkPaid(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DELETE /api/bookings/:id
func DeleteBooking(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	if err := (repositories.BookingRepository{}).Delete(id); err != nil {
		respondError(c, http.StatusNotFound, "not_found", "booking not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
