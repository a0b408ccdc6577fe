// Package store opens the user and session stores for the configured backend.
package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-api-selfservice/internal/config"
	"github.com/go-api-selfservice/internal/domain"
	"github.com/go-api-selfservice/internal/infrastructure/dynamo"
	"github.com/go-api-selfservice/internal/infrastructure/memory"
	"github.com/go-api-selfservice/internal/infrastructure/postgres"
)

// UserStore is what every backend provides for user records.
type UserStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

// SessionStore is what every backend provides for sessions.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Put(ctx context.Context, s *domain.Session) error
}

// Stores bundles the opened stores with a Close that releases backend
// resources and a Ping that checks the backend is reachable.
type Stores struct {
	Backend  string
	Users    UserStore
	Sessions SessionStore
	Ping     func(ctx context.Context) error
	Close    func()
}

// Open connects to cfg.StoreBackend, preparing its schema first.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Stores, error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		logger.Warn("using in-memory store; data is lost on restart")
		return &Stores{
			Backend:  cfg.StoreBackend,
			Users:    memory.NewUserRepo(),
			Sessions: memory.NewSessionRepo(),
			Ping:     func(context.Context) error { return nil },
			Close:    func() {},
		}, nil

	case config.BackendPostgres:
		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, err
		}
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Backend:  cfg.StoreBackend,
			Users:    postgres.NewUserRepo(pool),
			Sessions: postgres.NewSessionRepo(pool),
			Ping:     pool.Ping,
			Close:    pool.Close,
		}, nil

	case config.BackendDynamo:
		client, err := dynamo.NewClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		dynamo.Bootstrap(ctx, client, cfg.DynamoTables)
		return &Stores{
			Backend:  cfg.StoreBackend,
			Users:    dynamo.NewUserRepo(client, cfg.DynamoTables.Users),
			Sessions: dynamo.NewSessionRepo(client, cfg.DynamoTables.Sessions),
			Ping: func(ctx context.Context) error {
				return dynamo.Ping(ctx, client, cfg.DynamoTables.Users)
			},
			Close: func() {},
		}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
