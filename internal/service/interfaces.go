// Package service implements the client-side session lifecycle: credential
// submission, token persistence, session termination, and the navigation
// intents gated by session validity.
package service

import (
	"context"

	"github.com/spendwise/spendwise-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_service_mock.go -package=mock

// SessionService drives the explicit session state machine. Exactly one
// state-mutating operation may be in flight at a time; a call arriving while
// another is running is rejected immediately rather than queued.
type SessionService interface {
	// State returns the current session state.
	State() models.SessionState

	// SubmitLogin exchanges creds for a session token, persists it, and on
	// success moves the machine to [models.StateLoggedIn] and emits a push intent
	// for the home screen. Any failure, remote or storage, returns the
	// machine to [models.StateLoggedOut] with no token stored. A second call while
	// one is in flight returns [ErrAuthInProgress].
	SubmitLogin(ctx context.Context, creds models.Credentials) error

	// SubmitRegistration creates a new account. A password/confirmation
	// mismatch is rejected locally with [ErrPasswordMismatch] before any
	// request is issued. Server success does not authenticate the user; a
	// push intent toward the login screen is emitted instead.
	SubmitRegistration(ctx context.Context, reg models.Registration) error

	// Logout clears the persisted token and emits a stack-replacing intent
	// for the login screen. The state always reaches [models.StateLoggedOut], even
	// when clearing the store fails; such a failure is still returned so
	// the caller can report it.
	Logout(ctx context.Context) error

	// RequireSession returns the stored token. When none exists it emits a
	// stack-replacing intent for the login screen and fails with
	// [ErrNoSession] without touching the network.
	RequireSession(ctx context.Context) (models.Token, error)

	// FetchExpenses loads the expense list using the stored token as the
	// bearer credential. Records pass through exactly as received, in
	// server order.
	FetchExpenses(ctx context.Context) ([]models.Expense, error)
}
