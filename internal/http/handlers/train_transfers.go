package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tukrent/internal/domain/models"
	"tukrent/internal/repositories"
)

// GET /api/train-transfers?active=true
func ListTrainTransfers(c *gin.Context) {
	activeOnly := strings.EqualFold(c.Query("active"), "true")
	list, err := repositories.TrainTransferRepository{}.List(activeOnly)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "list_failed", "failed to load train transfers", nil)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/train-transfers
func CreateTrainTransfer(c *gin.Context) {
	var t models.TrainTransferRoute
	if !BindJSONOrError(c, &t) {
		return
	}
	if strings.TrimSpace(t.From) == "" || strings.TrimSpace(t.To) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "from and to are required", nil)
		return
	}
	if t.Price < 0 {
		respondError(c, http.StatusBadRequest, "validation_error", "price cannot be negative", nil)
		return
	}

	id, err := repositories.TrainTransferRepository{}.Create(t)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "create_failed", "failed to create train transfer", nil)
		return
	}
	t.ID = id
	c.JSON(http.StatusCreated, t)
}

// PUT /api/train-transfers/:id
func UpdateTrainTransfer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "id is not valid", nil)
		return
	}
	var t models.TrainTransferRoute
	if !BindJSONOrError(c, &t) {
		return
	}
	t.ID = id

	if err := (repositories.TrainTransferRepository{}).Save(t); err != nil {
		respondError(c, http.StatusNotFound, "not_found", "train transfer not found", nil)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /api/train-transfers/:id
func DeleteTrainTransfer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "id is not valid", nil)
		return
	}
	if err := (repositories.TrainTransferRepository{}).Delete(id); err != nil {
		respondError(c, http.StatusNotFound, "not_found", "train transfer not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "train transfer deleted"})
}
