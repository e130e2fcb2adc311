package client

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spendwise/spendwise-client/internal/adapter"
	"github.com/spendwise/spendwise-client/internal/app"
	"github.com/spendwise/spendwise-client/internal/config"
	"github.com/spendwise/spendwise-client/internal/logger"
	"github.com/spendwise/spendwise-client/internal/mock"
	"github.com/spendwise/spendwise-client/internal/navigation"
	"github.com/spendwise/spendwise-client/internal/service"
	"github.com/spendwise/spendwise-client/models"
)

// newTestApp wires an App around mocks, scripted stdin, and a captured
// stdout. The navigator is real: route changes only happen through the
// intents the session mock dispatches, same as in production.
func newTestApp(t *testing.T, ctrl *gomock.Controller, input string, start navigation.Route) (*App, *mock.MockSessionService, *mock.MockExpenseRefreshJob, *StackNavigator, *bytes.Buffer) {
	t.Helper()

	sessions := mock.NewMockSessionService(ctrl)
	job := mock.NewMockExpenseRefreshJob(ctrl)
	nav := NewStackNavigator(start, logger.Nop())

	cfg := config.ClientWorkers{RefreshInterval: time.Minute}
	a, err := NewApp(sessions, job, nav, cfg, logger.Nop())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a.in = strings.NewReader(input)
	a.out = out

	return a, sessions, job, nav, out
}

func TestApp_LoginListLogoutQuit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := "alice\nsecret123\nlist\nlogout\nquit\n"
	a, sessions, job, nav, out := newTestApp(t, ctrl, input, navigation.RouteLogin)

	creds := models.Credentials{Username: "alice", Password: "secret123"}
	expenses := []models.Expense{{ID: 1, Category: "groceries", Amount: 42.5, Date: "2025-03-02"}}

	sessions.EXPECT().State().Return(models.StateLoggedOut)
	sessions.EXPECT().SubmitLogin(gomock.Any(), creds).DoAndReturn(
		func(context.Context, models.Credentials) error {
			nav.Dispatch(navigation.GoTo(navigation.RouteHome))
			return nil
		},
	)
	sessions.EXPECT().FetchExpenses(gomock.Any()).Return(expenses, nil)
	sessions.EXPECT().Logout(gomock.Any()).DoAndReturn(
		func(context.Context) error {
			nav.Dispatch(navigation.ResetTo(navigation.RouteLogin))
			return nil
		},
	)

	job.EXPECT().Start(gomock.Any(), time.Minute)
	job.EXPECT().Stop().AnyTimes()

	require.NoError(t, a.Run())

	assert.Contains(t, out.String(), "Logged in.")
	assert.Contains(t, out.String(), "groceries")
	assert.Equal(t, navigation.RouteLogin, nav.Current())
}

func TestApp_LoginFailureShowsMessageAndStaysOnLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := "alice\nwrong\nquit\n"
	a, sessions, job, nav, out := newTestApp(t, ctrl, input, navigation.RouteLogin)

	sessions.EXPECT().State().Return(models.StateLoggedOut)
	sessions.EXPECT().SubmitLogin(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("login: %w: %s", adapter.ErrValidation, "Invalid credentials"))

	job.EXPECT().Stop().AnyTimes()

	require.NoError(t, a.Run())

	assert.Contains(t, out.String(), "Invalid credentials")
	assert.Equal(t, navigation.RouteLogin, nav.Current())
}

func TestApp_RegisterFlowRoutesBackToLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := "register\nbob\nbob@example.com\nhunter2hunter2\nhunter2hunter2\nquit\n"
	a, sessions, job, nav, out := newTestApp(t, ctrl, input, navigation.RouteLogin)

	reg := models.Registration{
		Username:        "bob",
		Email:           "bob@example.com",
		Password:        "hunter2hunter2",
		PasswordConfirm: "hunter2hunter2",
	}

	sessions.EXPECT().State().Return(models.StateLoggedOut)
	sessions.EXPECT().SubmitRegistration(gomock.Any(), reg).DoAndReturn(
		func(context.Context, models.Registration) error {
			nav.Dispatch(navigation.GoTo(navigation.RouteLogin))
			return nil
		},
	)

	job.EXPECT().Stop().AnyTimes()

	require.NoError(t, a.Run())

	assert.Contains(t, out.String(), app.MsgRegistrationComplete)
	assert.Equal(t, navigation.RouteLogin, nav.Current())
}

func TestApp_RestoredSessionSkipsLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := "quit\n"
	a, sessions, job, nav, _ := newTestApp(t, ctrl, input, navigation.RouteLogin)

	sessions.EXPECT().State().Return(models.StateLoggedIn)
	job.EXPECT().Start(gomock.Any(), time.Minute)
	job.EXPECT().Stop().AnyTimes()

	require.NoError(t, a.Run())

	assert.Equal(t, navigation.RouteHome, nav.Current())
}

func TestApp_SessionExpiryDuringListRedirectsToLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := "list\nquit\n"
	a, sessions, job, nav, out := newTestApp(t, ctrl, input, navigation.RouteLogin)

	sessions.EXPECT().State().Return(models.StateLoggedIn)
	sessions.EXPECT().FetchExpenses(gomock.Any()).DoAndReturn(
		func(context.Context) ([]models.Expense, error) {
			nav.Dispatch(navigation.ResetTo(navigation.RouteLogin))
			return nil, service.ErrNoSession
		},
	)

	job.EXPECT().Start(gomock.Any(), time.Minute)
	job.EXPECT().Stop().AnyTimes()

	require.NoError(t, a.Run())

	assert.Contains(t, out.String(), app.MsgSessionExpired)
	assert.Equal(t, navigation.RouteLogin, nav.Current())
}

func TestNewApp_RejectsMissingDependencies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewApp(nil, mock.NewMockExpenseRefreshJob(ctrl), NewStackNavigator(navigation.RouteLogin, logger.Nop()), config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)
}
