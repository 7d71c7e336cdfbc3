package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tukrent/internal/http/middleware"
	"tukrent/internal/repositories"
	"tukrent/internal/services"
)

// GET /api/bookings/:id/voucher returns the booking voucher PDF inline.
func GetBookingVoucher(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	svc := services.DocsService{
		BookingRepo: repositories.BookingRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateVoucher(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/bookings/:id/invoice returns the invoice PDF inline.
func GetBookingInvoice(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	svc := services.DocsService{
		BookingRepo: repositories.BookingRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
