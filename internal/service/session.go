package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/spendwise/spendwise-client/internal/adapter"
	"github.com/spendwise/spendwise-client/internal/logger"
	"github.com/spendwise/spendwise-client/internal/navigation"
	"github.com/spendwise/spendwise-client/internal/store"
	"github.com/spendwise/spendwise-client/models"
)

type sessionService struct {
	tokens  store.TokenStore
	adapter adapter.ServerAdapter
	nav     navigation.Navigator
	logger  *logger.Logger

	mu    sync.Mutex
	state models.SessionState
}

// NewSessionService constructs a [SessionService] and determines the initial
// state by querying the token store: a stored token means [models.StateLoggedIn],
// anything else means [models.StateLoggedOut]. Only presence is checked, the token's
// remote validity is not verified at startup. A storage fault during the
// probe is logged and treated as logged out.
func NewSessionService(ctx context.Context, tokens store.TokenStore, serverAdapter adapter.ServerAdapter, nav navigation.Navigator, log *logger.Logger) SessionService {
	s := &sessionService{
		tokens:  tokens,
		adapter: serverAdapter,
		nav:     nav,
		logger:  log,
		state:   models.StateLoggedOut,
	}

	if _, err := tokens.Load(ctx); err == nil {
		s.state = models.StateLoggedIn
	} else if !errors.Is(err, store.ErrTokenNotFound) {
		log.Warn().Err(err).Msg("token probe failed on startup, assuming logged out")
	}

	return s
}

// State implements [SessionService].
func (s *sessionService) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// beginAuth is the mutual-exclusion gate for login and registration. It
// either claims the [models.StateAuthenticating] slot or reports why it cannot.
func (s *sessionService) beginAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case models.StateAuthenticating:
		return ErrAuthInProgress
	case models.StateLoggingOut:
		return ErrLogoutInProgress
	case models.StateLoggedIn:
		return ErrAlreadyLoggedIn
	}

	s.state = models.StateAuthenticating
	return nil
}

func (s *sessionService) setState(state models.SessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// SubmitLogin implements [SessionService]. The gate guarantees that at most
// one authentication attempt reaches the adapter; the state is resolved on
// every return path so a cancelled context can never leave the machine stuck
// in [models.StateAuthenticating]. Failing to persist the token counts as a failed
// login: the machine must never report [models.StateLoggedIn] without a stored
// token backing it.
func (s *sessionService) SubmitLogin(ctx context.Context, creds models.Credentials) error {
	if err := s.beginAuth(); err != nil {
		return err
	}

	token, err := s.adapter.Login(ctx, creds)
	if err != nil {
		s.setState(models.StateLoggedOut)
		return fmt.Errorf("login: %w", err)
	}

	if err = s.tokens.Save(ctx, token); err != nil {
		s.setState(models.StateLoggedOut)
		return fmt.Errorf("persist token: %w", err)
	}

	s.setState(models.StateLoggedIn)
	s.nav.Dispatch(navigation.GoTo(navigation.RouteHome))
	s.logger.Info().Str("username", creds.Username).Msg("login successful")
	return nil
}

// SubmitRegistration implements [SessionService]. The mismatch check runs
// before the gate and before any network traffic. A successful registration
// does not authenticate the user and stores no token, so the machine returns
// to [models.StateLoggedOut] and the user is routed to the login screen for an
// explicit login.
func (s *sessionService) SubmitRegistration(ctx context.Context, reg models.Registration) error {
	if reg.Password != reg.PasswordConfirm {
		return ErrPasswordMismatch
	}

	if err := s.beginAuth(); err != nil {
		return err
	}

	err := s.adapter.Register(ctx, reg)
	s.setState(models.StateLoggedOut)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}

	s.nav.Dispatch(navigation.GoTo(navigation.RouteLogin))
	s.logger.Info().Str("username", reg.Username).Msg("registration successful")
	return nil
}

// Logout implements [SessionService]. Logout fails open: even when clearing
// the store reports a fault, the machine still reaches [models.StateLoggedOut] and
// the screen stack is reset, because a client-side logout must never be
// blocked by a storage error. The fault is still returned for reporting.
func (s *sessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case models.StateLoggingOut:
		s.mu.Unlock()
		return ErrLogoutInProgress
	case models.StateLoggedIn:
		s.state = models.StateLoggingOut
		s.mu.Unlock()
	default:
		s.mu.Unlock()
		return ErrNotLoggedIn
	}

	clearErr := s.tokens.Clear(ctx)

	s.setState(models.StateLoggedOut)
	s.nav.Dispatch(navigation.ResetTo(navigation.RouteLogin))

	if clearErr != nil {
		s.logger.Warn().Err(clearErr).Msg("token clear failed during logout")
		return fmt.Errorf("logout: %w", clearErr)
	}

	s.logger.Info().Msg("logout successful")
	return nil
}

// RequireSession implements [SessionService]. An absent token redirects to
// the login screen and fails without issuing any network call; a storage
// fault propagates as-is because "no reliable answer" is different from
// "logged out".
func (s *sessionService) RequireSession(ctx context.Context) (models.Token, error) {
	token, err := s.tokens.Load(ctx)
	if errors.Is(err, store.ErrTokenNotFound) {
		s.nav.Dispatch(navigation.ResetTo(navigation.RouteLogin))
		return "", ErrNoSession
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}

	return token, nil
}

// FetchExpenses implements [SessionService].
func (s *sessionService) FetchExpenses(ctx context.Context) ([]models.Expense, error) {
	token, err := s.RequireSession(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.adapter.GetExpenses(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch expenses: %w", err)
	}

	return items, nil
}
