package users

import (
	"context"
	"sync"
	"time"

	"github.com/ivanosipov/wordvault/internal/common"
)

// InMemoryRepository keeps users in a map guarded by a mutex. It backs the
// server when no database DSN is configured and keeps service tests free of
// a live PostgreSQL instance.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byLogin map[string]*User
	byID    map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byLogin: make(map[string]*User),
		byID:    make(map[string]*User),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byLogin[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	stored.CreatedAt = time.Now()

	r.byLogin[stored.UserName] = &stored
	r.byID[stored.ID] = &stored

	copied := stored
	return &copied, nil
}

func (r *InMemoryRepository) GetUserByLogin(ctx context.Context, login string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byLogin[login]
	if !ok {
		return nil, common.ErrorNotFound
	}

	copied := *user
	return &copied, nil
}

func (r *InMemoryRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	copied := *user
	return &copied, nil
}
