package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"salon-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxStaffIDKey = "staff_id"
	ctxIsAdminKey = "is_admin"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		staffID, isAdmin, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxStaffIDKey, staffID)
		c.Set(ctxIsAdminKey, isAdmin)
		c.Set("jwt_claims", map[string]any{
			"staff_id": staffID.String(),
			"is_admin": isAdmin,
		})
		c.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, ok := GetIsAdmin(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin privileges required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetStaffID(c *gin.Context) (uuid.UUID, bool) {
	staffID, exists := c.Get(ctxStaffIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := staffID.(uuid.UUID)
	return id, ok
}

func GetIsAdmin(c *gin.Context) (bool, bool) {
	isAdmin, exists := c.Get(ctxIsAdminKey)
	if !exists {
		return false, false
	}

	admin, ok := isAdmin.(bool)
	return admin, ok
}
