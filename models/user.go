package models

// Credentials carries the login form fields. The value lives only for the
// duration of a single login call; it is never persisted and must never be
// written to logs.
type Credentials struct {
	// Username is the unique account identifier entered by the user.
	Username string `json:"username"`

	// Password is the plaintext password entered by the user. Transmitted
	// only over the login endpoint.
	Password string `json:"password"`
}

// Registration carries the sign-up form fields. Like [Credentials], it is
// transient and never persisted or logged.
type Registration struct {
	// Username is the desired unique account identifier.
	Username string `json:"username"`

	// Email is the account contact address.
	Email string `json:"email"`

	// Password is the chosen plaintext password.
	Password string `json:"password"`

	// PasswordConfirm repeats Password. The caller must verify the two
	// fields match before the request is sent; the server field name is
	// "password2".
	PasswordConfirm string `json:"password2"`
}
