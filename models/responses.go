package models

// LoginResponse is the success body of the login endpoint. Only the token
// field is consumed; any additional fields the server includes are ignored.
type LoginResponse struct {
	Token Token `json:"token"`
}

// ErrorResponse is the failure body returned by the server on 4xx responses.
// Detail, when present, is a human-readable explanation suitable for
// surfacing to the user verbatim.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
