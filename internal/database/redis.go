package database

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"userhub/internal/config"
)

// ErrTokenNotFound signals a token with no cache entry, either unknown or expired
var ErrTokenNotFound = errors.New("token not found")

// RedisClient wraps the redis client with the token cache operations
type RedisClient struct {
	client *redis.Client
	logger *slog.Logger
	cfg    *config.Config
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(cfg *config.Config, logger *slog.Logger) (*RedisClient, error) {
	logger.Info("🔌 [Redis] Connecting to Redis...",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
		"db", cfg.RedisDatabase,
	)

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDatabase),
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [Redis] Redis connection established")

	return &RedisClient{
		client: client,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// NewRedisClientForTesting creates a Redis client with a provided redis.Client (for testing)
func NewRedisClientForTesting(client *redis.Client, cfg *config.Config, logger *slog.Logger) *RedisClient {
	return &RedisClient{
		client: client,
		logger: logger,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	return r.client.Close()
}

// tokenKey generates the Redis key for a bearer token
func tokenKey(token string) string {
	return fmt.Sprintf("token:%s", token)
}

// GenerateToken mints an opaque bearer token from 32 bytes of
// cryptographically secure randomness
func (r *RedisClient) GenerateToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}

// SaveToken stores the token-to-user mapping with the configured TTL, so
// tokens can never outlive their expiry even if nobody signs out
func (r *RedisClient) SaveToken(ctx context.Context, token, userID string) error {
	ttl := time.Duration(r.cfg.TokenTTL) * time.Second

	if err := r.client.Set(ctx, tokenKey(token), userID, ttl).Err(); err != nil {
		r.logger.Error("❌ [Redis] Failed to save token",
			"user_id", userID,
			"error", err,
		)
		return err
	}

	r.logger.Debug("💾 [Redis] Stored token",
		"user_id", userID,
		"ttl", ttl,
	)

	return nil
}

// ResolveToken returns the user ID a token was issued to, or
// ErrTokenNotFound when the entry is absent or expired
func (r *RedisClient) ResolveToken(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, tokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrTokenNotFound
		}
		r.logger.Error("❌ [Redis] Failed to resolve token", "error", err)
		return "", err
	}

	return userID, nil
}

// DeleteToken invalidates a token
func (r *RedisClient) DeleteToken(ctx context.Context, token string) error {
	deleted, err := r.client.Del(ctx, tokenKey(token)).Result()
	if err != nil {
		r.logger.Error("❌ [Redis] Failed to delete token", "error", err)
		return err
	}
	if deleted == 0 {
		return ErrTokenNotFound
	}

	r.logger.Debug("🗑️ [Redis] Deleted token")

	return nil
}

