package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-api-selfservice/internal/domain"
)

// SessionRepo is an in-memory sessions table keyed by session id.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{sessions: make(map[string]domain.Session)}
}

func (r *SessionRepo) Put(_ context.Context, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.SessionID] = *s
	return nil
}

func (r *SessionRepo) Get(_ context.Context, sessionID string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session not found: %w", domain.ErrNotFound)
	}
	return &s, nil
}
