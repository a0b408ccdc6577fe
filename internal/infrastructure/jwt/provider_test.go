package jwtinfra_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/go-api-selfservice/internal/config"
	jwtinfra "github.com/go-api-selfservice/internal/infrastructure/jwt"
	"github.com/go-api-selfservice/internal/infrastructure/jwt/jwttest"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_SignVerifyRoundTrip(t *testing.T) {
	p := jwttest.NewProvider(t)

	signed, err := p.Sign("u1", "user", "s1")
	require.NoError(t, err)

	claims, err := p.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "s1", claims.SessionID)
}

func TestProvider_RejectsForeignKey(t *testing.T) {
	signed, err := jwttest.NewProvider(t).Sign("u1", "user", "s1")
	require.NoError(t, err)

	_, err = jwttest.NewProvider(t).Verify(signed)
	assert.Error(t, err)
}

func TestProvider_RejectsHMACToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtinfra.Claims{UserID: "u1"})
	signed, err := token.SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	_, err = jwttest.NewProvider(t).Verify(signed)
	assert.Error(t, err)
}

func TestProvider_VerifyOnly(t *testing.T) {
	_, pubPath, _ := jwttest.WriteKeyPair(t)
	p, err := jwtinfra.NewProvider(&config.Config{
		JWTPublicKeyPath:  pubPath,
		JWTPrivateKeyPath: filepath.Join(t.TempDir(), "missing.pem"),
		JWTExpiry:         time.Hour,
	})
	require.NoError(t, err)

	_, err = p.Sign("u1", "user", "s1")
	assert.ErrorContains(t, err, "no private key")
}

func TestProvider_MissingPublicKey(t *testing.T) {
	_, err := jwtinfra.NewProvider(&config.Config{JWTPublicKeyPath: filepath.Join(t.TempDir(), "nope.pem")})
	assert.ErrorContains(t, err, "read public key")
}
