package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"

	core "tukrent/domain"
	"tukrent/internal/http/middleware"
	"tukrent/internal/repositories"
	"tukrent/internal/services"
	"tukrent/internal/utils"
)

// GET /api/discounts
func ListDiscounts(c *gin.Context) {
	list, err := repositories.DiscountRepository{}.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "list_failed", "failed to load discounts", nil)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/discounts
func CreateDiscount(c *gin.Context) {
	var d core.DiscountRule
	if !BindJSONOrError(c, &d) {
		return
	}
	d.Code = strings.ToUpper(strings.TrimSpace(d.Code))
	if d.Code == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "code is required", nil)
		return
	}
	if d.Mode != core.DiscountPercentage && d.Mode != core.DiscountReduce {
		respondError(c, http.StatusBadRequest, "validation_error", "mode must be percentage or reduce", nil)
		return
	}
	if d.MaxUsers < 1 {
		respondError(c, http.StatusBadRequest, "validation_error", "maxUsers must be at least 1", nil)
		return
	}

	if err := (repositories.DiscountRepository{}).Create(d); err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			respondError(c, http.StatusConflict, "duplicate", "discount code already exists", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "create_failed", "failed to create discount", nil)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// PUT /api/discounts/:code
func UpdateDiscount(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))
	var d core.DiscountRule
	if !BindJSONOrError(c, &d) {
		return
	}
	d.Code = code

	if err := (repositories.DiscountRepository{}).Save(d); err != nil {
		respondError(c, http.StatusNotFound, "not_found", "discount not found", nil)
		return
	}
	c.JSON(http.StatusOK, d)
}

// DELETE /api/discounts/:code
func DeleteDiscount(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if err := (repositories.DiscountRepository{}).Delete(code); err != nil {
		respondError(c, http.StatusNotFound, "not_found", "discount not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "discount deleted"})
}

type validateDiscountRequest struct {
	Code  string  `json:"code"`
	Total float64 `json:"total"`
}

// ValidateDiscount previews a coupon against a total without consuming a use.
// POST /api/discounts/validate
func ValidateDiscount(c *gin.Context) {
	var req validateDiscountRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.DiscountService{RequestID: middleware.GetRequestID(c)}
	rule, err := svc.Validate(strings.TrimSpace(req.Code))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	resp := gin.H{
		"valid": true,
		"code":  rule.Code,
		"mode":  string(rule.Mode),
		"value": rule.Value,
	}
	if req.Total > 0 {
		resp["discountedTotal"] = utils.FormatMoney(rule.Apply(req.Total))
	}
	c.JSON(http.StatusOK, resp)
}
