package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"userhub/internal/database/models"
)

// memoryUserRepository is the in-memory UserRepository used in tests and
// selectable at composition time wherever a relational store is unavailable.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users: make(map[uuid.UUID]models.User),
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *memoryUserRepository) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return ErrUserNotFound
	}

	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	user.UpdatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	delete(r.users, id)
	return &user, nil
}

func (r *memoryUserRepository) List(ctx context.Context, filter *models.ListFilter) ([]models.User, error) {
	filter.Normalize()

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		if filter.Name != nil && u.Name != *filter.Name {
			continue
		}
		if filter.Email != nil && u.Email != *filter.Email {
			continue
		}
		matched = append(matched, u)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	offset := *filter.Offset
	if offset >= len(matched) {
		return []models.User{}, nil
	}
	matched = matched[offset:]

	if limit := *filter.Limit; len(matched) > limit {
		matched = matched[:limit]
	}

	return matched, nil
}
