// Package jwttest builds throwaway RS256 providers for tests.
package jwttest

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-api-selfservice/internal/config"
	jwtinfra "github.com/go-api-selfservice/internal/infrastructure/jwt"
	"github.com/stretchr/testify/require"
)

// WriteKeyPair generates a fresh RSA key pair and writes both halves as PEM
// files under a test temp dir, returning their paths and the private key.
func WriteKeyPair(t testing.TB) (privPath, pubPath string, key *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	dir := t.TempDir()
	privPath = filepath.Join(dir, "private.pem")
	pubPath = filepath.Join(dir, "public.pem")

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	require.NoError(t, os.WriteFile(privPath, privPEM, 0600))

	pubBytes, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})
	require.NoError(t, os.WriteFile(pubPath, pubPEM, 0600))
	return privPath, pubPath, key
}

// NewProvider returns a signing-capable provider backed by a fresh key pair.
func NewProvider(t testing.TB) *jwtinfra.Provider {
	t.Helper()
	privPath, pubPath, _ := WriteKeyPair(t)
	p, err := jwtinfra.NewProvider(&config.Config{
		JWTPrivateKeyPath: privPath,
		JWTPublicKeyPath:  pubPath,
		JWTExpiry:         24 * time.Hour,
	})
	require.NoError(t, err)
	return p
}
