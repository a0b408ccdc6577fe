package domain

// Identity is the caller resolved from a bearer credential for a single
// request. It is never persisted.
type Identity struct {
	UserID    string
	SessionID string
	Role      string
}
