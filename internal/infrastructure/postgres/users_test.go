package postgres

import (
	"errors"
	"testing"

	"github.com/go-api-selfservice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUpdate_SingleColumn(t *testing.T) {
	query, args, err := buildUpdate("u1", map[string]interface{}{"phone_number": "555-0100"})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET phone_number = $1, updated_at = now() WHERE user_id = $2", query)
	assert.Equal(t, []interface{}{"555-0100", "u1"}, args)
}

func TestBuildUpdate_SortedColumns(t *testing.T) {
	query, args, err := buildUpdate("u1", map[string]interface{}{
		"phone_number":  "555-0100",
		"password_hash": "h",
	})
	require.NoError(t, err)
	assert.Equal(t, "UPDATE users SET password_hash = $1, phone_number = $2, updated_at = now() WHERE user_id = $3", query)
	assert.Equal(t, []interface{}{"h", "555-0100", "u1"}, args)
}

func TestBuildUpdate_RejectsUnknownColumn(t *testing.T) {
	_, _, err := buildUpdate("u1", map[string]interface{}{"role; DROP TABLE users": "x"})
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestBuildUpdate_Empty(t *testing.T) {
	_, _, err := buildUpdate("u1", nil)
	assert.ErrorContains(t, err, "no fields to update")
}

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/app?sslmode=disable", migrateURL("postgres://u:p@db:5432/app?sslmode=disable"))
	assert.Equal(t, "pgx5://db/app", migrateURL("postgresql://db/app"))
	assert.Equal(t, "pgx5://db/app", migrateURL("pgx5://db/app"))
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
