package models

// SessionState is one of the four named states of the session machine.
// Exactly one value holds at any time.
type SessionState string

const (
	StateLoggedOut      SessionState = "logged_out"
	StateAuthenticating SessionState = "authenticating"
	StateLoggedIn       SessionState = "logged_in"
	StateLoggingOut     SessionState = "logging_out"
)
