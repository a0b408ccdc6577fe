package store

import (
	"context"
	"testing"

	"github.com/go-api-selfservice/internal/config"
	"github.com/go-api-selfservice/internal/domain"
	"github.com/go-api-selfservice/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	ctx := context.Background()
	s, err := Open(ctx, &config.Config{StoreBackend: config.BackendMemory}, logging.Discard())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Users.Put(ctx, &domain.User{UserID: "u1"}))
	u, err := s.Users.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.UserID)
	assert.Equal(t, config.BackendMemory, s.Backend)
	assert.NoError(t, s.Ping(ctx))
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StoreBackend: "floppy"}, logging.Discard())
	assert.ErrorContains(t, err, "unknown store backend")
}
