package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-api-selfservice/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionRepo persists sessions in PostgreSQL.
type SessionRepo struct {
	pool *pgxpool.Pool
}

func NewSessionRepo(pool *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

func (r *SessionRepo) Put(ctx context.Context, s *domain.Session) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO sessions (session_id, user_id, enable, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (session_id) DO UPDATE SET enable = EXCLUDED.enable, updated_at = EXCLUDED.updated_at`,
		s.SessionID, s.UserID, s.Enable, s.CreatedAt.UTC(), s.UpdatedAt.UTC())
	return err
}

func (r *SessionRepo) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	var s domain.Session
	err := r.pool.QueryRow(ctx, `SELECT session_id, user_id, enable, created_at, updated_at
        FROM sessions WHERE session_id = $1`, sessionID).Scan(&s.SessionID, &s.UserID, &s.Enable, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("session not found: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
