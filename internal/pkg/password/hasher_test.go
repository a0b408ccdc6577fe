package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcrypt_HashThenVerify(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("abc123")
	require.NoError(t, err)

	assert.NotEqual(t, "abc123", hash)
	assert.True(t, h.Verify("abc123", hash))
	assert.False(t, h.Verify("abc124", hash))
}

func TestBcrypt_SaltsEachHash(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	a, err := h.Hash("samepass")
	require.NoError(t, err)
	b, err := h.Hash("samepass")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestBcrypt_VerifyRejectsGarbageHash(t *testing.T) {
	assert.False(t, NewBcrypt(bcrypt.MinCost).Verify("abc123", "not-a-bcrypt-hash"))
}

func TestBcrypt_OutOfRangeCostUsesDefault(t *testing.T) {
	h := NewBcrypt(99).(*bcryptHasher)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}

func TestBcrypt_RejectsOverlongPassword(t *testing.T) {
	_, err := NewBcrypt(bcrypt.MinCost).Hash(strings.Repeat("x", 73))
	assert.Error(t, err)
}
