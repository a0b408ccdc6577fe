// Package identity resolves bearer credentials into request identities.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-api-selfservice/internal/domain"
	jwtinfra "github.com/go-api-selfservice/internal/infrastructure/jwt"
)

type tokenVerifier interface {
	Verify(tokenStr string) (*jwtinfra.Claims, error)
}

type sessionStore interface {
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
}

// Resolver turns a bearer token into a domain.Identity. Every rejection is
// reported as domain.ErrUnauthenticated.
type Resolver struct {
	verifier tokenVerifier
	sessions sessionStore
	logger   *slog.Logger
}

// NewResolver builds a Resolver. sessions may be nil, in which case session
// liveness is not checked and a valid signature is sufficient.
func NewResolver(verifier tokenVerifier, sessions sessionStore, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{verifier: verifier, sessions: sessions, logger: logger}
}

func (r *Resolver) Resolve(ctx context.Context, bearer string) (*domain.Identity, error) {
	if bearer == "" {
		return nil, fmt.Errorf("missing token: %w", domain.ErrUnauthenticated)
	}
	claims, err := r.verifier.Verify(bearer)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token: %w", domain.ErrUnauthenticated)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token has no subject: %w", domain.ErrUnauthenticated)
	}
	if r.sessions != nil && claims.SessionID != "" {
		sess, err := r.sessions.Get(ctx, claims.SessionID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("session not found: %w", domain.ErrUnauthenticated)
		case err != nil:
			// A store outage is not the caller's fault, but the request still
			// cannot be attributed to anyone.
			r.logger.ErrorContext(ctx, "session lookup failed", "session_id", claims.SessionID, "err", err)
			return nil, fmt.Errorf("session lookup failed: %w", domain.ErrUnauthenticated)
		case !sess.Enable:
			return nil, fmt.Errorf("session disabled: %w", domain.ErrUnauthenticated)
		case sess.UserID != claims.UserID:
			return nil, fmt.Errorf("session belongs to another user: %w", domain.ErrUnauthenticated)
		}
	}
	return &domain.Identity{
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
		Role:      claims.Role,
	}, nil
}
