package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-api-selfservice/internal/domain"
)

type contextKey string

const IdentityKey contextKey = "identity"

type identityResolver interface {
	Resolve(ctx context.Context, bearer string) (*domain.Identity, error)
}

// Auth returns middleware that resolves the Bearer token into a domain.Identity
// and injects it into the request context.
func Auth(resolver identityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeJSONError(w, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}
			ident, err := resolver.Resolve(r.Context(), strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), IdentityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the caller's identity, or nil when the request
// was not authenticated.
func IdentityFromContext(ctx context.Context) *domain.Identity {
	ident, _ := ctx.Value(IdentityKey).(*domain.Identity)
	return ident
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
