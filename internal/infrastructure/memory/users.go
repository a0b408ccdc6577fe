// Package memory provides map-backed user and session stores for local runs
// and tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-api-selfservice/internal/domain"
)

// UserRepo is an in-memory users table keyed by user id.
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{users: make(map[string]domain.User)}
}

func (r *UserRepo) Put(_ context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.UserID] = *u
	return nil
}

// Get returns a copy so callers cannot mutate stored state without Update.
func (r *UserRepo) Get(_ context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[userID]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	return &u, nil
}

func (r *UserRepo) Update(_ context.Context, userID string, updates map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	for k, v := range updates {
		if err := applyUserField(&u, k, v); err != nil {
			return err
		}
	}
	u.UpdatedAt = time.Now().UTC()
	r.users[userID] = u
	return nil
}

func applyUserField(u *domain.User, field string, value interface{}) error {
	switch field {
	case "phone_number":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %s expects string, got %T", field, value)
		}
		u.PhoneNumber = s
	case "password_hash":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("field %s expects string, got %T", field, value)
		}
		u.PasswordHash = s
	case "enable":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("field %s expects bool, got %T", field, value)
		}
		u.Enable = b
	default:
		return fmt.Errorf("unknown user field %q: %w", field, domain.ErrBadRequest)
	}
	return nil
}
