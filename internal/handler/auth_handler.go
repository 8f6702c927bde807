package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"userhub/internal/database/models"
	"userhub/internal/database/service"
)

// TokenTypeBearer is the token_type constant returned on login
const TokenTypeBearer = "Bearer"

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenPayload struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user,omitempty"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [AuthHandler] Invalid login request", "error", err)
		Fail(c, http.StatusBadRequest, "Invalid request. Email and password required.")
		return
	}

	user, token, err := h.service.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OK(c, TokenPayload{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		User:        user,
	})
}

// Authorize handles GET /auth/authorize. The auth middleware has already
// resolved the bearer token to a fresh user record.
func (h *AuthHandler) Authorize(c *gin.Context) {
	user, err := currentUser(c)
	if err != nil {
		h.logger.Error("❌ [AuthHandler] User not found in context", "error", err)
		Fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	OK(c, user)
}

// Logout handles POST /auth/logout by invalidating the presented token
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token == "" {
		Fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.SignOut(c.Request.Context(), token); err != nil {
		h.handleServiceError(c, err)
		return
	}

	OK(c, gin.H{"message": "Signed out successfully"})
}

// handleServiceError maps service errors to HTTP responses
func (h *AuthHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWrongCredentials):
		Fail(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, service.ErrInvalidToken):
		Fail(c, http.StatusUnauthorized, "Invalid or expired token")
	default:
		h.logger.Error("❌ [AuthHandler] Internal server error", "error", err)
		Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}

// currentUser pulls the authenticated user the middleware stored
func currentUser(c *gin.Context) (*models.User, error) {
	value, exists := c.Get("user")
	if !exists {
		return nil, errors.New("no authenticated user in context")
	}

	user, ok := value.(*models.User)
	if !ok {
		return nil, errors.New("unexpected user type in context")
	}
	return user, nil
}
