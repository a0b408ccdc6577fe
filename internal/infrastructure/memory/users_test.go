package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/go-api-selfservice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_GetMissing(t *testing.T) {
	_, err := NewUserRepo().Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUserRepo_PutGet_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepo()
	require.NoError(t, r.Put(ctx, &domain.User{UserID: "u1", PhoneNumber: "555-0000"}))

	u, err := r.Get(ctx, "u1")
	require.NoError(t, err)
	u.PhoneNumber = "mutated"

	again, err := r.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "555-0000", again.PhoneNumber)
}

func TestUserRepo_Update(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepo()
	require.NoError(t, r.Put(ctx, &domain.User{UserID: "u1"}))

	require.NoError(t, r.Update(ctx, "u1", map[string]interface{}{
		"phone_number":  "555-0100",
		"password_hash": "h",
	}))

	u, err := r.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "555-0100", u.PhoneNumber)
	assert.Equal(t, "h", u.PasswordHash)
	assert.False(t, u.UpdatedAt.IsZero())
}

func TestUserRepo_UpdateMissing(t *testing.T) {
	err := NewUserRepo().Update(context.Background(), "nope", map[string]interface{}{"phone_number": "1"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUserRepo_UpdateUnknownField(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepo()
	require.NoError(t, r.Put(ctx, &domain.User{UserID: "u1"}))

	err := r.Update(ctx, "u1", map[string]interface{}{"shoe_size": 42})
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestUserRepo_UpdateWrongType(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepo()
	require.NoError(t, r.Put(ctx, &domain.User{UserID: "u1"}))

	assert.Error(t, r.Update(ctx, "u1", map[string]interface{}{"phone_number": 5550100}))
}

func TestSessionRepo_PutGet(t *testing.T) {
	ctx := context.Background()
	r := NewSessionRepo()
	require.NoError(t, r.Put(ctx, &domain.Session{SessionID: "s1", UserID: "u1", Enable: true}))

	s, err := r.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "u1", s.UserID)

	_, err = r.Get(ctx, "s2")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
