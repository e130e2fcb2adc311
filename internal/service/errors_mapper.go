package service

import (
	"errors"
	"strings"

	"github.com/spendwise/spendwise-client/internal/adapter"
	"github.com/spendwise/spendwise-client/internal/app"
	"github.com/spendwise/spendwise-client/internal/store"
)

// UserMessage translates any error returned by a [SessionService] operation
// into the message shown to the user. A server-supplied validation detail is
// surfaced verbatim; every other classification maps to one of the app.Msg*
// constants. A nil error yields an empty string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrPasswordMismatch):
		return app.MsgPasswordsDoNotMatch
	case errors.Is(err, ErrAuthInProgress):
		return app.MsgLoginInProgress
	case errors.Is(err, ErrLogoutInProgress):
		return app.MsgLogoutInProgress
	case errors.Is(err, ErrAlreadyLoggedIn):
		return app.MsgAlreadyLoggedIn
	case errors.Is(err, ErrNotLoggedIn):
		return app.MsgNotLoggedIn
	case errors.Is(err, ErrNoSession):
		return app.MsgSessionExpired
	case errors.Is(err, adapter.ErrValidation):
		if detail := extractDetail(err); detail != "" {
			return detail
		}
		return app.MsgSomethingWentWrong
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgInvalidCredentials
	case errors.Is(err, store.ErrStorage):
		return app.MsgStorageFailure
	default:
		// adapter.ErrNetwork, adapter.ErrServer and anything unclassified.
		return app.MsgSomethingWentWrong
	}
}

// extractDetail recovers the server-supplied detail appended after the
// [adapter.ErrValidation] sentinel text, stripping any wrapping prefixes the
// service layer added on the way up.
func extractDetail(err error) string {
	marker := adapter.ErrValidation.Error() + ": "
	msg := err.Error()

	idx := strings.LastIndex(msg, marker)
	if idx < 0 {
		return ""
	}
	return msg[idx+len(marker):]
}
