package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"

	"tukrent/internal/domain/models"
	"tukrent/internal/repositories"
)

// GET /api/tuktuks?active=true
func ListTukTuks(c *gin.Context) {
	activeOnly := strings.EqualFold(c.Query("active"), "true")
	list, err := repositories.VehicleRepository{}.List(activeOnly)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "list_failed", "failed to load tuk-tuks", nil)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/tuktuks
func CreateTukTuk(c *gin.Context) {
	var v models.TukTuk
	if !BindJSONOrError(c, &v) {
		return
	}
	if strings.TrimSpace(v.VehicleNumber) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "vehicleNumber is required", nil)
		return
	}

	id, err := repositories.VehicleRepository{}.Create(v)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			respondError(c, http.StatusConflict, "duplicate", "vehicle number already registered", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "create_failed", "failed to create tuk-tuk", nil)
		return
	}
	v.ID = id
	c.JSON(http.StatusCreated, v)
}

// PUT /api/tuktuks/:id
func UpdateTukTuk(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "id is not valid", nil)
		return
	}
	var v models.TukTuk
	if !BindJSONOrError(c, &v) {
		return
	}
	v.ID = id

	if err := (repositories.VehicleRepository{}).Save(v); err != nil {
		respondError(c, http.StatusNotFound, "not_found", "tuk-tuk not found", nil)
		return
	}
	c.JSON(http.StatusOK, v)
}

// DELETE /api/tuktuks/:id
func DeleteTukTuk(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "id is not valid", nil)
		return
	}
	if err := (repositories.VehicleRepository{}).Delete(id); err != nil {
		respondError(c, http.StatusNotFound, "not_found", "tuk-tuk not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tuk-tuk deleted"})
}
