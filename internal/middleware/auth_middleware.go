package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"restaurant_dashboard/internal/models"
	"restaurant_dashboard/internal/services"
	"restaurant_dashboard/pkg/utils"
)

// AuthMiddleware creates a Gin middleware for JWT authentication.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authorization header required", ""))
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid authorization header format. Use Bearer <token>", ""))
			return
		}

		claims, err := authService.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, utils.ErrInvalidToken), errors.Is(err, services.ErrTokenRevoked), errors.Is(err, services.ErrUserNotFound):
				utils.RespondWithError(c, utils.NewAPIError(http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token", err.Error()))
			default:
				utils.LogError(err, "AuthMiddleware: token check failed")
				utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Could not verify token", "Internal error"))
			}
			return
		}

		// Set user information in the context for downstream handlers
		c.Set(utils.UserIDKey, claims.UserID)
		c.Set(utils.UsernameKey, claims.Username)
		c.Set(utils.UserRoleKey, claims.Role)
		c.Set(utils.ClaimsKey, claims)

		c.Next()
	}
}

// RequireRole lets through users whose role is at least minRole.
// Admins pass every check and managers pass manager and staff checks.
func RequireRole(minRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(utils.UserRoleKey)
		if role == "" {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "User role not found in token claims. Ensure AuthMiddleware runs first.", ""))
			return
		}

		if !models.RoleSatisfies(role, minRole) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusForbidden, utils.ErrCodeForbidden, "You do not have permission to access this resource. Required role: "+minRole, ""))
			return
		}

		c.Next()
	}
}
