package service

import "errors"

var (
	// ErrAuthInProgress rejects a login or registration submitted while
	// another authentication attempt is still in flight.
	ErrAuthInProgress = errors.New("authentication already in progress")

	// ErrLogoutInProgress rejects a call submitted while a logout is
	// still in flight.
	ErrLogoutInProgress = errors.New("logout already in progress")

	// ErrAlreadyLoggedIn rejects a login or registration submitted while a
	// session is already active.
	ErrAlreadyLoggedIn = errors.New("already logged in")

	// ErrNotLoggedIn rejects a logout without an active session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrPasswordMismatch is the local validation failure for a
	// registration whose password fields differ.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrNoSession signals that a protected operation found no stored
	// token. The caller has already been redirected to the login screen.
	ErrNoSession = errors.New("no active session")
)
