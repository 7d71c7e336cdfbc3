package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tukrent/internal/cache"
	"tukrent/internal/domain/models"
	"tukrent/internal/repositories"
)

// ListLocations serves both the admin list and the public active-only list.
// GET /api/locations?active=true
func ListLocations(c *gin.Context) {
	activeOnly := strings.EqualFold(c.Query("active"), "true")

	if activeOnly {
		var cached []models.Location
		if sharedCache.GetJSON(c.Request.Context(), cache.KeyActiveLocations, &cached) {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	list, err := repositories.LocationRepository{}.List(activeOnly)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "list_failed", "failed to load locations", nil)
		return
	}

	if activeOnly {
		_ = sharedCache.SetJSON(c.Request.Context(), cache.KeyActiveLocations, list)
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/locations
func CreateLocation(c *gin.Context) {
	var l models.Location
	if !BindJSONOrError(c, &l) {
		return
	}
	if strings.TrimSpace(l.Name) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		return
	}
	if l.Status == "" {
		l.Status = "active"
	}

	id, err := repositories.LocationRepository{}.Create(l)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "create_failed", "failed to create location", nil)
		return
	}
	l.ID = id
	_ = sharedCache.Invalidate(c.Request.Context(), cache.KeyActiveLocations)
	c.JSON(http.StatusCreated, l)
}

// PUT /api/locations/:id
func UpdateLocation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "id is not valid", nil)
		return
	}
	var l models.Location
	if !BindJSONOrError(c, &l) {
		return
	}
	l.ID = id

	if err := (repositories.LocationRepository{}).Save(l); err != nil {
		respondError(c, http.StatusNotFound, "not_found", "location not found", nil)
		return
	}
	_ = sharedCache.Invalidate(c.Request.Context(), cache.KeyActiveLocations)
	c.JSON(http.StatusOK, l)
}

// DELETE /api/locations/:id
func DeleteLocation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "id is not valid", nil)
		return
	}
	if err := (repositories.LocationRepository{}).Delete(id); err != nil {
		respondError(c, http.StatusNotFound, "not_found", "location not found", nil)
		return
	}
	_ = sharedCache.Invalidate(c.Request.Context(), cache.KeyActiveLocations)
	c.JSON(http.StatusOK, gin.H{"message": "location deleted"})
}
