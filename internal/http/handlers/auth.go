package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"tukrent/internal/http/middleware"
	"tukrent/internal/repositories"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	admin, passwordHash, err := repositories.AdminRepository{}.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "email or password is incorrect"})
		} else {
			RespondError(c, http.StatusInternalServerError, "login failed", err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "email or password is incorrect"})
		return
	}

	token, err := middleware.IssueAdminToken(appEnv.JWTSecret, admin.Email)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": admin,
	})
}

// GET /api/auth/me
func Me(c *gin.Context) {
	email := middleware.AdminEmail(c)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	admin, _, err := repositories.AdminRepository{}.GetByEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "account no longer exists"})
		return
	}
	c.JSON(http.StatusOK, admin)
}
