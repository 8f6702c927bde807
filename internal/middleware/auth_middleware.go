package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"userhub/internal/database/service"
	"userhub/internal/handler"
)

// AuthMiddleware resolves bearer tokens to authenticated users
type AuthMiddleware struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware instance
func NewAuthMiddleware(service service.AuthService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		service: service,
		logger:  logger,
	}
}

// RequireAuth validates the bearer token and sets the fresh user record in
// the request context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.logger.Warn("⚠️ [Middleware] Missing Authorization header")
			handler.Fail(c, http.StatusUnauthorized, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			m.logger.Warn("⚠️ [Middleware] Invalid Authorization header format")
			handler.Fail(c, http.StatusUnauthorized, "Invalid authorization header format")
			c.Abort()
			return
		}

		token := parts[1]

		user, err := m.service.Authorize(c.Request.Context(), token)
		if err != nil {
			m.logger.Warn("⚠️ [Middleware] Invalid token", "error", err)
			handler.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("token", token)
		m.logger.Debug("✅ [Middleware] Token validated", "user_id", user.ID)

		c.Next()
	}
}
