package store

import "errors"

// Sentinel errors returned by the token repository. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrTokenNotFound is returned by Load when no session token is
	// currently persisted. It is the "logged out" answer, not a failure of
	// the storage backend.
	ErrTokenNotFound = errors.New("no session token stored")

	// ErrStorage is returned (wrapped) when the local persistence layer is
	// unavailable or the stored entry cannot be read or written.
	ErrStorage = errors.New("local storage failure")
)
