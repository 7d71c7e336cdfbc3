package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tukrent/internal/domain/models"
	"tukrent/internal/repositories"
)

// GET /api/settings/contact (public)
func GetContactSettings(c *gin.Context) {
	cs, err := repositories.SettingsRepository{}.GetContact()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "load_failed", "failed to load contact settings", nil)
		return
	}
	c.JSON(http.StatusOK, cs)
}

// PUT /api/settings/contact
func SaveContactSettings(c *gin.Context) {
	var cs models.ContactSettings
	if !BindJSONOrError(c, &cs) {
		return
	}
	if err := (repositories.SettingsRepository{}).SaveContact(cs); err != nil {
		respondError(c, http.StatusInternalServerError, "save_failed", "failed to save contact settings", nil)
		return
	}
	c.JSON(http.StatusOK, cs)
}
