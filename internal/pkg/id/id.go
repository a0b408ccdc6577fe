package id

import "github.com/oklog/ulid/v2"

// New returns a ULID for a new user or session record. Values sort by
// creation time and are safe for concurrent use.
func New() string {
	return ulid.Make().String()
}
