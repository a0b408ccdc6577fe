package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound          = errors.New("not found")
	ErrUnauthenticated   = errors.New("not authenticated")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrValidation        = errors.New("validation failed")
	ErrBadRequest        = errors.New("bad request")
)
