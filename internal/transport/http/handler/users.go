package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/go-api-selfservice/internal/application/user"
	"github.com/go-api-selfservice/internal/domain"
	"github.com/go-api-selfservice/internal/pkg/validate"
	"github.com/go-api-selfservice/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
)

// UserHandler handles the caller's own profile endpoints.
type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler { return &UserHandler{svc: svc} }

// GetProfile returns the caller's user record.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context(), middleware.IdentityFromContext(r.Context()))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req domain.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		httpError(w, err)
		return
	}
	ident := middleware.IdentityFromContext(r.Context())
	if err := h.svc.ChangePassword(r.Context(), ident, req.Password, req.NewPassword); err != nil {
		httpError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) ChangePhoneNumber(w http.ResponseWriter, r *http.Request) {
	number, err := phoneParam(r)
	if err != nil {
		httpError(w, err)
		return
	}
	ident := middleware.IdentityFromContext(r.Context())
	if err := h.svc.ChangePhoneNumber(r.Context(), ident, number); err != nil {
		httpError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// phoneParam returns the decoded {new_number} segment. The number itself is
// free-form, but it must be storable text: valid UTF-8 without NUL bytes.
func phoneParam(r *http.Request) (string, error) {
	number := chi.URLParam(r, "new_number")
	// chi matches on RawPath when the path has escapes it cannot represent
	// in Path, leaving the segment percent-encoded.
	if r.URL.RawPath != "" {
		decoded, err := url.PathUnescape(number)
		if err != nil {
			return "", fmt.Errorf("phone number is not a valid path segment: %w", domain.ErrBadRequest)
		}
		number = decoded
	}
	if !utf8.ValidString(number) || strings.ContainsRune(number, 0) {
		return "", fmt.Errorf("phone number must be valid UTF-8 text: %w", domain.ErrBadRequest)
	}
	return number, nil
}
