package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"userhub/internal/database/models"
	"userhub/internal/database/repository"
	"userhub/internal/database/service"
)

// UserHandler handles HTTP requests for user records
type UserHandler struct {
	service service.UserService
	logger  *slog.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		logger:  logger,
	}
}

type RegisterRequest struct {
	Name      string `json:"name" binding:"required,min=4,max=10"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Password2 string `json:"password2" binding:"required,min=6"`
}

type UpdateUserRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=4,max=10"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password" binding:"omitempty,min=6"`
	Password2 *string `json:"password2" binding:"omitempty,min=6"`
}

// Register handles POST /users
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [UserHandler] Invalid registration request", "error", err)
		Fail(c, http.StatusBadRequest, "Invalid request. Name (4-10 chars), email and password (min 6 chars) required.")
		return
	}

	if req.Password != req.Password2 {
		Fail(c, http.StatusBadRequest, "Passwords do not match")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OK(c, user)
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	user, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OK(c, user)
}

// Update handles PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("⚠️ [UserHandler] Invalid update request", "error", err)
		Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Password != nil && (req.Password2 == nil || *req.Password != *req.Password2) {
		Fail(c, http.StatusBadRequest, "Passwords do not match")
		return
	}

	user, err := h.service.Update(c.Request.Context(), id, &models.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OK(c, user)
}

// Delete handles DELETE /users/:id and returns the deleted record
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}

	user, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OK(c, user)
}

// List handles GET /users with optional name/email filters and pagination
func (h *UserHandler) List(c *gin.Context) {
	var filter models.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.logger.Warn("⚠️ [UserHandler] Invalid list query", "error", err)
		Fail(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	users, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	OK(c, users)
}

// userID parses the :id path parameter, rendering a validation error itself
func (h *UserHandler) userID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		Fail(c, http.StatusBadRequest, "Invalid user id")
		return uuid.Nil, false
	}
	return id, true
}

// handleServiceError maps service errors to HTTP responses
func (h *UserHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		Fail(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, service.ErrEmptyFields):
		Fail(c, http.StatusBadRequest, "No fields to update")
	case errors.Is(err, repository.ErrUserNotFound):
		Fail(c, http.StatusNotFound, "User not found")
	default:
		h.logger.Error("❌ [UserHandler] Internal server error", "error", err)
		Fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
