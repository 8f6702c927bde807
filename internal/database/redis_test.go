package database_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userhub/internal/config"
	"userhub/internal/database"
)

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	cfg := &config.Config{
		TokenTTL: 3600, // 1 hour
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	redisClient := database.NewRedisClientForTesting(client, cfg, logger)

	t.Cleanup(func() {
		redisClient.Close()
		mr.Close()
	})

	return mr, redisClient
}

func TestRedisClient_GenerateToken(t *testing.T) {
	_, redisClient := setupMiniRedis(t)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := redisClient.GenerateToken()
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.False(t, seen[token], "token generated twice")
		seen[token] = true
	}
}

func TestRedisClient_SaveAndResolveToken(t *testing.T) {
	_, redisClient := setupMiniRedis(t)
	ctx := context.Background()

	token, err := redisClient.GenerateToken()
	require.NoError(t, err)

	_, err = redisClient.ResolveToken(ctx, token)
	assert.ErrorIs(t, err, database.ErrTokenNotFound)

	require.NoError(t, redisClient.SaveToken(ctx, token, "user-id-1"))

	userID, err := redisClient.ResolveToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-id-1", userID)
}

func TestRedisClient_TokenKeyAndTTL(t *testing.T) {
	mr, redisClient := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, redisClient.SaveToken(ctx, "abc", "user-id-1"))

	// Entries live under the token: prefix with the configured TTL attached
	assert.True(t, mr.Exists("token:abc"))
	assert.Equal(t, time.Hour, mr.TTL("token:abc"))

	// Past the TTL the token no longer resolves
	mr.FastForward(time.Hour + time.Second)
	_, err := redisClient.ResolveToken(ctx, "abc")
	assert.ErrorIs(t, err, database.ErrTokenNotFound)
}

func TestRedisClient_DeleteToken(t *testing.T) {
	_, redisClient := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, redisClient.SaveToken(ctx, "abc", "user-id-1"))
	require.NoError(t, redisClient.DeleteToken(ctx, "abc"))

	_, err := redisClient.ResolveToken(ctx, "abc")
	assert.ErrorIs(t, err, database.ErrTokenNotFound)

	assert.ErrorIs(t, redisClient.DeleteToken(ctx, "abc"), database.ErrTokenNotFound)
}
