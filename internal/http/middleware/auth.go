package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const adminEmailKey = "admin_email"

// IssueAdminToken signs a 24h bearer token for a logged-in admin.
func IssueAdminToken(secret, email string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// RequireAdmin rejects requests without a valid admin bearer token.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "missing bearer token",
				"request_id": GetRequestID(c),
			})
			return
		}

		claims := jwt.RegisteredClaims{}
		_, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "invalid or expired token",
				"request_id": GetRequestID(c),
			})
			return
		}

		c.Set(adminEmailKey, claims.Subject)
		c.Next()
	}
}

// AdminEmail returns the authenticated admin's email, if any.
func AdminEmail(c *gin.Context) string {
	if v, ok := c.Get(adminEmailKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
