package adapter

import (
	"context"

	"github.com/spendwise/spendwise-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the expense
// server. Implementations are responsible for serialisation, authorization
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// The adapter is stateless between calls: the session token is supplied per
// request and never cached inside the adapter.
type ServerAdapter interface {
	// Login exchanges the user's credentials for a session token. Returns
	// the token issued by the server, or an error classified via the
	// package sentinels ([ErrNetwork], [ErrValidation], [ErrUnauthorized],
	// [ErrServer]). A 200 response that lacks a token field is treated as
	// [ErrServer].
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Register creates a new account with the given sign-up fields. The
	// caller must have verified that the password fields match; the adapter
	// does not revalidate them, but still surfaces any server-side
	// validation failure. Success is exactly HTTP 201.
	Register(ctx context.Context, reg models.Registration) error

	// GetExpenses fetches the user's expense records using token as the
	// bearer credential. An empty token fails fast with [ErrUnauthorized]
	// before any request is issued. Records are returned exactly as
	// received, in server order.
	GetExpenses(ctx context.Context, token models.Token) ([]models.Expense, error)
}
