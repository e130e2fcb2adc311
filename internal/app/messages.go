// Package app contains shared application-layer constants used across the
// spendwise client.
//
// All Msg* constants are human-readable message strings shown to the user to
// describe the outcome of an operation. Keeping them in one place ensures
// consistent wording throughout the app; only the session service translates
// internal error classifications into these messages.
package app

const (
	// MsgInvalidCredentials is shown when the supplied username/password
	// combination is rejected and the server gave no further detail.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgSomethingWentWrong is shown when the server could not be reached
	// or answered with an unexpected failure.
	MsgSomethingWentWrong = "Something went wrong"

	// MsgPasswordsDoNotMatch is shown when the two password fields of the
	// registration form differ. Detected locally, before any request.
	MsgPasswordsDoNotMatch = "Passwords do not match"

	// MsgRegistrationComplete is shown after a successful registration;
	// the user still has to log in explicitly.
	MsgRegistrationComplete = "You can now log in"

	// MsgLoginInProgress is shown when a login is submitted while another
	// one is still in flight.
	MsgLoginInProgress = "Login already in progress"

	// MsgLogoutInProgress is shown when a logout is requested while one is
	// already running.
	MsgLogoutInProgress = "Logout already in progress"

	// MsgAlreadyLoggedIn is shown when a login is submitted while a
	// session is already active.
	MsgAlreadyLoggedIn = "You are already logged in"

	// MsgNotLoggedIn is shown when a logout is requested without an
	// active session.
	MsgNotLoggedIn = "You are not logged in"

	// MsgSessionExpired is shown when a protected operation finds no
	// stored session token.
	MsgSessionExpired = "Your session has expired, please log in again"

	// MsgStorageFailure is shown when the local token store cannot be
	// read or written.
	MsgStorageFailure = "Could not access local storage"
)
