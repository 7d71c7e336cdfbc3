package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tukrent/internal/domain/models"
	"tukrent/internal/repositories"
)

// GET /api/persons?active=true
func ListPersons(c *gin.Context) {
	activeOnly := strings.EqualFold(c.Query("active"), "true")
	list, err := repositories.PersonRepository{}.List(activeOnly)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "list_failed", "failed to load persons", nil)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/persons
func CreatePerson(c *gin.Context) {
	var p models.Person
	if !BindJSONOrError(c, &p) {
		return
	}
	if strings.TrimSpace(p.Name) == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "name is required", nil)
		return
	}

	id, err := repositories.PersonRepository{}.Create(p)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "create_failed", "failed to create person", nil)
		return
	}
	p.ID = id
	c.JSON(http.StatusCreated, p)
}

// PUT /api/persons/:id
func UpdatePerson(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "id is not valid", nil)
		return
	}
	var p models.Person
	if !BindJSONOrError(c, &p) {
		return
	}
	p.ID = id

	if err := (repositories.PersonRepository{}).Save(p); err != nil {
		respondError(c, http.StatusNotFound, "not_found", "person not found", nil)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DELETE /api/persons/:id
func DeletePerson(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "id is not valid", nil)
		return
	}
	if err := (repositories.PersonRepository{}).Delete(id); err != nil {
		respondError(c, http.StatusNotFound, "not_found", "person not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "person deleted"})
}
