package adapter

import "errors"

// Sentinel errors classifying every possible remote-call failure. Callers
// match them with [errors.Is]; the service layer is the only place where
// they are translated to user-facing messages.
var (
	// ErrNetwork indicates that no response reached the client at all
	// (connection refused, DNS failure, timeout).
	ErrNetwork = errors.New("server unreachable")

	// ErrUnauthorized indicates a 401/403 response without a server-supplied
	// detail message, or a protected call attempted without a token.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrValidation indicates a 4xx response. When the server supplied a
	// detail message it is appended after the sentinel text and can be
	// recovered verbatim by the service layer.
	ErrValidation = errors.New("request rejected")

	// ErrServer indicates a 5xx response or a malformed success response.
	ErrServer = errors.New("server error")
)
