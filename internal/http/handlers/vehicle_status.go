package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tukrent/internal/domain/models"
	"tukrent/internal/repositories"
)

// GET /api/vehicle-status
func ListVehicleStatus(c *gin.Context) {
	list, err := repositories.VehicleStatusRepository{}.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "list_failed", "failed to load vehicle status", nil)
		return
	}

	now := time.Now()
	out := make([]gin.H, 0, len(list))
	for _, v := range list {
		out = append(out, gin.H{
			"category":        v.Category,
			"isActive":        v.IsActive,
			"deactivateUntil": v.DeactivateUntil,
			"basePrice":       v.BasePrice,
			"bookable":        v.Bookable(now),
		})
	}
	c.JSON(http.StatusOK, out)
}

// PUT /api/vehicle-status/:category upserts the per-category switch.
func SaveVehicleStatus(c *gin.Context) {
	category := strings.TrimSpace(c.Param("category"))
	if category == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "category is required", nil)
		return
	}

	var v models.VehicleStatus
	if !BindJSONOrError(c, &v) {
		return
	}
	v.Category = category

	if err := (repositories.VehicleStatusRepository{}).Save(v); err != nil {
		respondError(c, http.StatusInternalServerError, "save_failed", "failed to save vehicle status", nil)
		return
	}
	c.JSON(http.StatusOK, v)
}
