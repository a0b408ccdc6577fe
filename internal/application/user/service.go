package user

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/go-api-selfservice/internal/domain"
	"github.com/go-api-selfservice/internal/pkg/password"
)

// Attribute names used in partial update maps.
const (
	fieldPhoneNumber  = "phone_number"
	fieldPasswordHash = "password_hash"
)

// Operation names reported to the recorder.
const (
	OpGetProfile        = "get_profile"
	OpChangePassword    = "change_password"
	OpChangePhoneNumber = "change_phone_number"
)

// Service is the self-service surface for an authenticated caller. Every
// method takes the caller's identity explicitly; a nil identity yields
// domain.ErrUnauthenticated before the store is touched.
//
// Writes are last-write-wins: two concurrent mutations of the same record
// are not coordinated.
type Service interface {
	GetProfile(ctx context.Context, ident *domain.Identity) (*domain.User, error)
	ChangePassword(ctx context.Context, ident *domain.Identity, currentPassword, newPassword string) error
	ChangePhoneNumber(ctx context.Context, ident *domain.Identity, phoneNumber string) error
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type notifier interface {
	PasswordChanged(ctx context.Context, u *domain.User)
	PhoneChanged(ctx context.Context, u *domain.User, previousPhone string)
}

type recorder interface {
	RecordOperation(operation string, err error)
}

type service struct {
	repo     userStore
	hasher   password.Hasher
	notifier notifier
	recorder recorder
	logger   *slog.Logger
}

type ServiceDeps struct {
	UserRepo userStore
	Hasher   password.Hasher
	Notifier notifier // optional
	Recorder recorder // optional
	Logger   *slog.Logger
}

func NewService(deps ServiceDeps) Service {
	s := &service{
		repo:     deps.UserRepo,
		hasher:   deps.Hasher,
		notifier: deps.Notifier,
		recorder: deps.Recorder,
		logger:   deps.Logger,
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	if s.recorder == nil {
		s.recorder = nopRecorder{}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

func (s *service) GetProfile(ctx context.Context, ident *domain.Identity) (u *domain.User, err error) {
	defer func() { s.recorder.RecordOperation(OpGetProfile, err) }()
	return s.load(ctx, ident)
}

func (s *service) ChangePassword(ctx context.Context, ident *domain.Identity, currentPassword, newPassword string) (err error) {
	defer func() { s.recorder.RecordOperation(OpChangePassword, err) }()
	if ident == nil {
		return unauthenticated()
	}
	if utf8.RuneCountInString(newPassword) < domain.MinPasswordLength {
		return fmt.Errorf("new password must be at least %d characters: %w", domain.MinPasswordLength, domain.ErrValidation)
	}
	if len(newPassword) > domain.MaxPasswordBytes {
		return fmt.Errorf("new password must be at most %d bytes: %w", domain.MaxPasswordBytes, domain.ErrValidation)
	}
	u, err := s.load(ctx, ident)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(currentPassword, u.PasswordHash) {
		return fmt.Errorf("current password is incorrect: %w", domain.ErrInvalidCredential)
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, u.UserID, map[string]interface{}{fieldPasswordHash: hash}); err != nil {
		return fmt.Errorf("save password: %w", err)
	}
	u.PasswordHash = hash
	s.logger.InfoContext(ctx, "password changed", "user_id", u.UserID)
	s.notifier.PasswordChanged(ctx, u)
	return nil
}

func (s *service) ChangePhoneNumber(ctx context.Context, ident *domain.Identity, phoneNumber string) (err error) {
	defer func() { s.recorder.RecordOperation(OpChangePhoneNumber, err) }()
	u, err := s.load(ctx, ident)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, u.UserID, map[string]interface{}{fieldPhoneNumber: phoneNumber}); err != nil {
		return fmt.Errorf("save phone number: %w", err)
	}
	previous := u.PhoneNumber
	u.PhoneNumber = phoneNumber
	s.logger.InfoContext(ctx, "phone number changed", "user_id", u.UserID)
	s.notifier.PhoneChanged(ctx, u, previous)
	return nil
}

// load resolves the caller's record. A valid identity whose record is gone
// surfaces as domain.ErrNotFound.
func (s *service) load(ctx context.Context, ident *domain.Identity) (*domain.User, error) {
	if ident == nil || ident.UserID == "" {
		return nil, unauthenticated()
	}
	u, err := s.repo.Get(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func unauthenticated() error {
	return fmt.Errorf("no identity on request: %w", domain.ErrUnauthenticated)
}

type nopNotifier struct{}

func (nopNotifier) PasswordChanged(context.Context, *domain.User)       {}
func (nopNotifier) PhoneChanged(context.Context, *domain.User, string) {}

type nopRecorder struct{}

func (nopRecorder) RecordOperation(string, error) {}
