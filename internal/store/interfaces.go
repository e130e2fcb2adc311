package store

import (
	"context"

	"github.com/spendwise/spendwise-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/token_store_mock.go -package=mock

// TokenStore is the single owner of the persisted session token. At most one
// token exists at a time; all access goes through the session service, which
// guarantees at most one in-flight writer.
//
// Every method may return [ErrStorage] (wrapped) when the backing store is
// unavailable or corrupt. Failures are never swallowed because the session
// state machine depends on a reliable answer.
type TokenStore interface {
	// Save persists token, overwriting any existing one. The token survives
	// process restarts.
	Save(ctx context.Context, token models.Token) error

	// Load returns the previously saved token. Returns [ErrTokenNotFound]
	// if no token was ever saved or it has been cleared.
	Load(ctx context.Context) (models.Token, error)

	// Clear removes any stored token. Clearing an already-empty store is
	// not an error.
	Clear(ctx context.Context) error
}
