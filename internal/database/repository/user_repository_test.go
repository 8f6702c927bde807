package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"userhub/internal/database/models"
	"userhub/internal/database/repository"
)

// setupTestDB creates a new in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{})
	require.NoError(t, err)

	return db
}

func TestUserRepository_Create(t *testing.T) {
	repo := repository.NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := &models.User{
		Name:     "testname",
		Email:    "test@example.com",
		Password: "hashedpassword",
	}

	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	t.Run("duplicate email maps to ErrDuplicateEmail", func(t *testing.T) {
		dup := &models.User{
			Name:     "othername",
			Email:    "test@example.com",
			Password: "hashedpassword",
		}
		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	repo := repository.NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := &models.User{Name: "testname", Email: "test@example.com", Password: "x"}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "test@example.com", found.Email)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	repo := repository.NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := &models.User{Name: "testname", Email: "test@example.com", Password: "x"}
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByEmail(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Update(t *testing.T) {
	repo := repository.NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := &models.User{Name: "testname", Email: "test@example.com", Password: "x"}
	require.NoError(t, repo.Create(ctx, user))

	user.Name = "newname"
	require.NoError(t, repo.Update(ctx, user))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "newname", found.Name)
	assert.Equal(t, "test@example.com", found.Email)

	t.Run("email collision maps to ErrDuplicateEmail", func(t *testing.T) {
		other := &models.User{Name: "othername", Email: "other@example.com", Password: "x"}
		require.NoError(t, repo.Create(ctx, other))

		other.Email = "test@example.com"
		err := repo.Update(ctx, other)
		assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	})
}

func TestUserRepository_List(t *testing.T) {
	repo := repository.NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	t.Run("empty table returns an empty non-nil slice", func(t *testing.T) {
		users, err := repo.List(ctx, &models.ListFilter{})
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	for i := 0; i < 30; i++ {
		u := &models.User{
			Name:     "name" + string(rune('a'+i%26)),
			Email:    uuid.NewString() + "@example.com",
			Password: "x",
		}
		require.NoError(t, repo.Create(ctx, u))
	}

	t.Run("no filter applies the default page size", func(t *testing.T) {
		users, err := repo.List(ctx, &models.ListFilter{})
		require.NoError(t, err)
		assert.Len(t, users, models.DefaultListLimit)
	})

	t.Run("offset skips rows", func(t *testing.T) {
		offset := 25
		users, err := repo.List(ctx, &models.ListFilter{Offset: &offset})
		require.NoError(t, err)
		assert.Len(t, users, 5)
	})

	t.Run("name filter matches exactly", func(t *testing.T) {
		name := "namea"
		users, err := repo.List(ctx, &models.ListFilter{Name: &name})
		require.NoError(t, err)
		require.NotEmpty(t, users)
		for _, u := range users {
			assert.Equal(t, "namea", u.Name)
		}
	})

	t.Run("email filter matches a single row", func(t *testing.T) {
		target := &models.User{Name: "testname", Email: "target@example.com", Password: "x"}
		require.NoError(t, repo.Create(ctx, target))

		email := "target@example.com"
		users, err := repo.List(ctx, &models.ListFilter{Email: &email})
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, target.ID, users[0].ID)
	})

	t.Run("oversized limit is clamped, not rejected", func(t *testing.T) {
		limit := 500
		users, err := repo.List(ctx, &models.ListFilter{Limit: &limit})
		require.NoError(t, err)
		assert.Len(t, users, 31)
	})
}

func TestUserRepository_Delete(t *testing.T) {
	repo := repository.NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	user := &models.User{Name: "testname", Email: "test@example.com", Password: "x"}
	require.NoError(t, repo.Create(ctx, user))

	deleted, err := repo.Delete(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, deleted.ID)
	assert.Equal(t, "test@example.com", deleted.Email)

	// The row is gone, not flagged
	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.Delete(ctx, user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
