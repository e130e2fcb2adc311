package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spendwise/spendwise-client/internal/adapter"
	"github.com/spendwise/spendwise-client/internal/app"
	"github.com/spendwise/spendwise-client/internal/store"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "validation with server detail is surfaced verbatim",
			err:  fmt.Errorf("login: %w", fmt.Errorf("%w: %s", adapter.ErrValidation, "Invalid credentials")),
			want: "Invalid credentials",
		},
		{
			name: "unauthorized without detail",
			err:  fmt.Errorf("login: %w", adapter.ErrUnauthorized),
			want: app.MsgInvalidCredentials,
		},
		{
			name: "network failure",
			err:  fmt.Errorf("login: %w: connection refused", adapter.ErrNetwork),
			want: app.MsgSomethingWentWrong,
		},
		{
			name: "server failure",
			err:  fmt.Errorf("login: %w: http 500", adapter.ErrServer),
			want: app.MsgSomethingWentWrong,
		},
		{
			name: "storage failure",
			err:  fmt.Errorf("persist token: %w: disk full", store.ErrStorage),
			want: app.MsgStorageFailure,
		},
		{
			name: "password mismatch",
			err:  ErrPasswordMismatch,
			want: app.MsgPasswordsDoNotMatch,
		},
		{
			name: "auth in progress",
			err:  ErrAuthInProgress,
			want: app.MsgLoginInProgress,
		},
		{
			name: "logout in progress",
			err:  ErrLogoutInProgress,
			want: app.MsgLogoutInProgress,
		},
		{
			name: "already logged in",
			err:  ErrAlreadyLoggedIn,
			want: app.MsgAlreadyLoggedIn,
		},
		{
			name: "not logged in",
			err:  ErrNotLoggedIn,
			want: app.MsgNotLoggedIn,
		},
		{
			name: "no session",
			err:  ErrNoSession,
			want: app.MsgSessionExpired,
		},
		{
			name: "unclassified error",
			err:  errors.New("something odd"),
			want: app.MsgSomethingWentWrong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestExtractDetail_KeepsColonsInsideDetail(t *testing.T) {
	err := fmt.Errorf("register: %w", fmt.Errorf("%w: %s", adapter.ErrValidation, "field email: invalid format"))
	assert.Equal(t, "field email: invalid format", UserMessage(err))
}
