package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"userhub/internal/database"
	"userhub/internal/database/models"
	"userhub/internal/database/repository"
)

// Service errors
var (
	ErrWrongCredentials = errors.New("invalid email or password")
	ErrInvalidToken     = errors.New("invalid or expired token")
)

// TokenStore is the cache-side contract for opaque bearer tokens
type TokenStore interface {
	GenerateToken() (string, error)
	SaveToken(ctx context.Context, token, userID string) error
	ResolveToken(ctx context.Context, token string) (string, error)
	DeleteToken(ctx context.Context, token string) error
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*models.User, string, error)
	Authorize(ctx context.Context, token string) (*models.User, error)
	SignOut(ctx context.Context, token string) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenStore
	logger   *slog.Logger
}

// NewAuthService creates a new authentication service instance
func NewAuthService(userRepo repository.UserRepository, tokens TokenStore, logger *slog.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// SignIn verifies the credential and mints a bearer token for the user.
// Unknown emails and wrong passwords are indistinguishable to the caller,
// and neither leaves a token behind.
func (s *authService) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	s.logger.Info("🔐 [AuthService] Sign-in attempt", "email", email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("⚠️ [AuthService] User not found", "email", email)
			return nil, "", ErrWrongCredentials
		}
		s.logger.Error("❌ [AuthService] Database error", "error", err)
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn("⚠️ [AuthService] Invalid password", "email", email)
		return nil, "", ErrWrongCredentials
	}

	token, err := s.tokens.GenerateToken()
	if err != nil {
		s.logger.Error("❌ [AuthService] Failed to generate token", "error", err)
		return nil, "", err
	}

	if err := s.tokens.SaveToken(ctx, token, user.ID.String()); err != nil {
		s.logger.Error("❌ [AuthService] Failed to save token", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	s.logger.Info("✅ [AuthService] User signed in successfully", "user_id", user.ID)
	return user, token, nil
}

// Authorize resolves a bearer token back to a fresh user record
func (s *authService) Authorize(ctx context.Context, token string) (*models.User, error) {
	subject, err := s.tokens.ResolveToken(ctx, token)
	if err != nil {
		if errors.Is(err, database.ErrTokenNotFound) {
			return nil, ErrInvalidToken
		}
		s.logger.Error("❌ [AuthService] Token store error", "error", err)
		return nil, err
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		s.logger.Warn("⚠️ [AuthService] Malformed token subject", "error", err)
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The account vanished after the token was issued
			return nil, ErrInvalidToken
		}
		s.logger.Error("❌ [AuthService] Database error", "user_id", userID, "error", err)
		return nil, err
	}

	return user, nil
}

// SignOut invalidates the presented token
func (s *authService) SignOut(ctx context.Context, token string) error {
	if err := s.tokens.DeleteToken(ctx, token); err != nil {
		if errors.Is(err, database.ErrTokenNotFound) {
			s.logger.Warn("⚠️ [AuthService] Token not found for sign-out")
			return ErrInvalidToken
		}
		return err
	}

	s.logger.Info("✅ [AuthService] User signed out successfully")
	return nil
}
