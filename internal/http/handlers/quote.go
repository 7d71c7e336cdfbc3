package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tukrent/internal/domain/models"
	"tukrent/internal/http/middleware"
	"tukrent/internal/repositories"
	"tukrent/internal/services"
	"tukrent/internal/utils"
)

type quoteRequest struct {
	PickupLocation  string         `json:"pickupLocation"`
	PickupDate      string         `json:"pickupDate"`
	ReturnLocation  string         `json:"returnLocation"`
	ReturnDate      string         `json:"returnDate"`
	TukCount        int            `json:"tukCount"`
	LicenseCount    int            `json:"licenseCount"`
	Extras          map[string]int `json:"extras"`
	TrainTransferID int64          `json:"trainTransferId"`
	CouponCode      string         `json:"couponCode"`
}

// PublicQuote prices a prospective booking without persisting anything.
// A coupon code, when given, is only previewed; redemption happens on
// booking creation.
// POST /api/quote
func PublicQuote(c *gin.Context) {
	var req quoteRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	b := models.Booking{
		PickupLocation: req.PickupLocation,
		PickupDate:     req.PickupDate,
		ReturnLocation: req.ReturnLocation,
		ReturnDate:     req.ReturnDate,
		TukCount:       req.TukCount,
		LicenseCount:   req.LicenseCount,
		Extras:         req.Extras,
	}

	locations := repositories.LocationRepository{}
	if name := strings.TrimSpace(req.PickupLocation); name != "" {
		loc, err := locations.GetByName(name)
		if err != nil {
			respondError(c, http.StatusBadRequest, "unknown_location", "pickup location is not recognised", nil)
			return
		}
		b.PickupPrice = loc.Price
	}
	if name := strings.TrimSpace(req.ReturnLocation); name != "" {
		loc, err := locations.GetByName(name)
		if err != nil {
			respondError(c, http.StatusBadRequest, "unknown_location", "return location is not recognised", nil)
			return
		}
		b.ReturnPrice = loc.Price
	}
	if req.TrainTransferID > 0 {
		route, err := repositories.TrainTransferRepository{}.GetByID(req.TrainTransferID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid_train_transfer", "train transfer route not found", nil)
			return
		}
		b.TrainTransfer = &models.TrainTransferInfo{
			From:       route.From,
			To:         route.To,
			PickupTime: route.PickupTime,
			DownTime:   route.DownTime,
			Price:      route.Price,
		}
	}

	rid := middleware.GetRequestID(c)
	pricing := services.PricingService{Cache: sharedCache, RequestID: rid}
	quote, err := pricing.QuoteForBooking(c.Request.Context(), b)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	resp := gin.H{
		"quote": quote,
		"total": utils.FormatMoney(quote.Total),
	}

	if req.CouponCode != "" {
		discounts := services.DiscountService{RequestID: rid}
		rule, err := discounts.Validate(req.CouponCode)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		discounted := rule.Apply(quote.Total)
		resp["discountedTotal"] = utils.FormatMoney(discounted)
		resp["coupon"] = gin.H{
			"code":  rule.Code,
			"mode":  string(rule.Mode),
			"value": rule.Value,
		}
	}

	c.JSON(http.StatusOK, resp)
}
