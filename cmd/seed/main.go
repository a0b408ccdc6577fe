// Command seed creates a user and an enabled session in the configured store
// and prints a bearer token for it, for exercising the API locally.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-api-selfservice/internal/config"
	"github.com/go-api-selfservice/internal/domain"
	jwtinfra "github.com/go-api-selfservice/internal/infrastructure/jwt"
	"github.com/go-api-selfservice/internal/infrastructure/store"
	"github.com/go-api-selfservice/internal/logging"
	"github.com/go-api-selfservice/internal/pkg/id"
	"github.com/go-api-selfservice/internal/pkg/password"
	"github.com/go-api-selfservice/internal/pkg/validate"
	"github.com/joho/godotenv"
)

type seedInput struct {
	Username string `validate:"required"`
	Email    string `validate:"omitempty,email"`
	Phone    string
	Password string `validate:"required,min=6"`
}

func main() {
	var in seedInput
	flag.StringVar(&in.Username, "username", "", "username of the seeded user")
	flag.StringVar(&in.Email, "email", "", "email address (optional)")
	flag.StringVar(&in.Phone, "phone", "", "phone number (optional)")
	flag.StringVar(&in.Password, "password", "", "initial password, at least 6 characters")
	flag.Parse()

	if err := run(context.Background(), in); err != nil {
		slog.Error("seed failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, in seedInput) error {
	_ = godotenv.Load()
	if err := validate.Struct(in); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.StoreBackend == config.BackendMemory {
		return errors.New("seeding the memory backend has no effect on a running server")
	}
	logger := logging.New(cfg.LogLevel)

	stores, err := store.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer stores.Close()

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		return err
	}
	hash, err := password.NewBcrypt(cfg.BcryptCost).Hash(in.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Username:     in.Username,
		Email:        in.Email,
		Role:         domain.RoleUser,
		PhoneNumber:  in.Phone,
		PasswordHash: hash,
		Enable:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := stores.Users.Put(ctx, u); err != nil {
		return fmt.Errorf("put user: %w", err)
	}
	sess := &domain.Session{
		SessionID: id.New(),
		UserID:    u.UserID,
		Enable:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := stores.Sessions.Put(ctx, sess); err != nil {
		return fmt.Errorf("put session: %w", err)
	}

	token, err := jwtProvider.Sign(u.UserID, u.Role, sess.SessionID)
	if err != nil {
		return err
	}
	logger.Info("seeded user", "user_id", u.UserID, "session_id", sess.SessionID, "store", stores.Backend)
	fmt.Println(token)
	return nil
}
