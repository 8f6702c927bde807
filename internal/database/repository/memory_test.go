package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userhub/internal/database/models"
	"userhub/internal/database/repository"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func seedUsers(t *testing.T, repo repository.UserRepository, n int) []models.User {
	t.Helper()
	ctx := context.Background()

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Name:     fmt.Sprintf("name%04d", i),
			Email:    fmt.Sprintf("user%04d@example.com", i),
			Password: "hashedpassword",
		}
		require.NoError(t, repo.Create(ctx, user))
		// Distinct creation times keep the listing order deterministic
		time.Sleep(time.Millisecond)
		users = append(users, *user)
	}
	return users
}

func TestMemoryUserRepository_CRUD(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	ctx := context.Background()

	user := &models.User{Name: "testname", Email: "test@example.com", Password: "x"}
	require.NoError(t, repo.Create(ctx, user))

	dup := &models.User{Name: "othername", Email: "test@example.com", Password: "x"}
	assert.ErrorIs(t, repo.Create(ctx, dup), repository.ErrDuplicateEmail)

	found, err := repo.FindByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	found.Name = "newname"
	require.NoError(t, repo.Update(ctx, found))

	got, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "newname", got.Name)

	deleted, err := repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, deleted.ID)

	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestMemoryUserRepository_List(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	ctx := context.Background()
	seedUsers(t, repo, 120)

	t.Run("default pagination returns 20", func(t *testing.T) {
		users, err := repo.List(ctx, &models.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, users, 20)
	})

	t.Run("offset skips rows", func(t *testing.T) {
		users, err := repo.List(ctx, &models.ListFilter{Offset: intPtr(110)})
		require.NoError(t, err)
		assert.Len(t, users, 10)
	})

	t.Run("oversized limit is clamped to 100", func(t *testing.T) {
		users, err := repo.List(ctx, &models.ListFilter{Limit: intPtr(500)})
		require.NoError(t, err)
		assert.Len(t, users, 100)
	})

	t.Run("name filter matches exactly one", func(t *testing.T) {
		users, err := repo.List(ctx, &models.ListFilter{Name: strPtr("name0003")})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "user0003@example.com", users[0].Email)
	})

	t.Run("combined filters must all match", func(t *testing.T) {
		users, err := repo.List(ctx, &models.ListFilter{
			Name:  strPtr("name0003"),
			Email: strPtr("user0004@example.com"),
		})
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}
