package http

import (
	"context"

	"github.com/go-api-selfservice/internal/domain"
	jwtinfra "github.com/go-api-selfservice/internal/infrastructure/jwt"
	"github.com/go-api-selfservice/internal/metrics"
	"github.com/go-api-selfservice/internal/pkg/password"
	"github.com/prometheus/client_golang/prometheus"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

// SessionRepository is the minimal interface the router requires from a session store.
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
}

// TokenVerifier checks bearer tokens. *jwtinfra.Provider satisfies it.
type TokenVerifier interface {
	Verify(tokenStr string) (*jwtinfra.Claims, error)
}

// Notifier delivers security notifications after a credential change.
type Notifier interface {
	PasswordChanged(ctx context.Context, u *domain.User)
	PhoneChanged(ctx context.Context, u *domain.User, previousPhone string)
}

// Deps holds all infrastructure dependencies for the router. Notifier,
// Metrics, Gatherer and Ready are optional.
type Deps struct {
	UserRepo    UserRepository
	SessionRepo SessionRepository
	Verifier    TokenVerifier
	Hasher      password.Hasher
	Notifier    Notifier
	Metrics     *metrics.Collector
	Gatherer    prometheus.Gatherer
	Ready       func(ctx context.Context) error
}
