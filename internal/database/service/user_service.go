package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"userhub/internal/database/models"
	"userhub/internal/database/repository"
)

// ErrEmptyFields signals an update request with nothing to change
var ErrEmptyFields = errors.New("no fields to update")

// UserService defines the interface for user business logic
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	Update(ctx context.Context, id uuid.UUID, input *models.UpdateUserInput) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context, filter *models.ListFilter) ([]models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register creates a user after checking the email is free. The pre-check is
// a fast path; the store's unique constraint remains the authoritative guard.
func (s *userService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	s.logger.Info("📝 [UserService] Registration attempt", "email", email)

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		s.logger.Error("❌ [UserService] Database error", "error", err)
		return nil, err
	}
	if existing != nil {
		s.logger.Warn("⚠️ [UserService] Email already registered", "email", email)
		return nil, repository.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("❌ [UserService] Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("❌ [UserService] Failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User registered successfully", "user_id", user.ID)
	return user, nil
}

func (s *userService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// Update overlays only the present fields onto the stored record; absent
// fields are preserved as-is. An input with no fields fails before any store
// call.
func (s *userService) Update(ctx context.Context, id uuid.UUID, input *models.UpdateUserInput) (*models.User, error) {
	if input.Empty() {
		return nil, ErrEmptyFields
	}

	s.logger.Info("✏️ [UserService] Updating user", "user_id", id)

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("❌ [UserService] Failed to hash password", "error", err)
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("❌ [UserService] Failed to update user", "user_id", id, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [UserService] User updated", "user_id", id)
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.logger.Info("🗑️ [UserService] Deleting user", "user_id", id)
	return s.userRepo.Delete(ctx, id)
}

func (s *userService) List(ctx context.Context, filter *models.ListFilter) ([]models.User, error) {
	filter.Normalize()
	return s.userRepo.List(ctx, filter)
}
