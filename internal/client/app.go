package client

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spendwise/spendwise-client/internal/app"
	"github.com/spendwise/spendwise-client/internal/config"
	"github.com/spendwise/spendwise-client/internal/logger"
	"github.com/spendwise/spendwise-client/internal/navigation"
	"github.com/spendwise/spendwise-client/internal/service"
	"github.com/spendwise/spendwise-client/internal/workers"
	"github.com/spendwise/spendwise-client/models"
)

// App is the line-mode client application. Each named route renders as a
// small prompt loop; which loop runs next is decided solely by the navigator,
// which in turn only moves on intents dispatched by the session service.
type App struct {
	sessions service.SessionService
	job      workers.ExpenseRefreshJob
	nav      *StackNavigator
	cfg      config.ClientWorkers
	logger   *logger.Logger

	in  io.Reader
	out io.Writer
}

// NewApp assembles the client runtime.
func NewApp(sessions service.SessionService, job workers.ExpenseRefreshJob, nav *StackNavigator, cfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if sessions == nil || job == nil || nav == nil {
		return nil, fmt.Errorf("client app: missing dependency")
	}

	return &App{
		sessions: sessions,
		job:      job,
		nav:      nav,
		cfg:      cfg,
		logger:   log,
		in:       os.Stdin,
		out:      os.Stdout,
	}, nil
}

// Run implements [Client]. It blocks until the user quits or stdin closes.
func (a *App) Run() error {
	ctx := context.Background()
	scanner := bufio.NewScanner(a.in)

	if a.sessions.State() == models.StateLoggedIn {
		// a stored token restored the session, skip the login screen
		a.logger.Info().Msg("session restored from stored token")
		a.nav.Dispatch(navigation.ResetTo(navigation.RouteHome))
		a.job.Start(ctx, a.cfg.RefreshInterval)
	}
	defer a.job.Stop()

	for {
		var quit bool
		var err error

		switch a.nav.Current() {
		case navigation.RouteHome:
			quit, err = a.homeScreen(ctx, scanner)
		case navigation.RouteRegister:
			quit, err = a.registerScreen(ctx, scanner)
		default:
			quit, err = a.loginScreen(ctx, scanner)
		}

		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// loginScreen prompts for credentials. The commands "register" and "quit"
// are accepted in place of a username.
func (a *App) loginScreen(ctx context.Context, scanner *bufio.Scanner) (bool, error) {
	a.printf("\n[login] enter username, or 'register' / 'quit':\n")

	username, ok := a.readLine(scanner, "username> ")
	if !ok {
		return true, nil
	}

	switch strings.ToLower(username) {
	case "quit", "exit":
		return true, nil
	case "register":
		a.nav.Dispatch(navigation.GoTo(navigation.RouteRegister))
		return false, nil
	case "":
		return false, nil
	}

	password, ok := a.readLine(scanner, "password> ")
	if !ok {
		return true, nil
	}

	err := a.sessions.SubmitLogin(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		a.printf("%s\n", service.UserMessage(err))
		return false, nil
	}

	a.printf("Logged in.\n")
	a.job.Start(ctx, a.cfg.RefreshInterval)
	return false, nil
}

// registerScreen prompts for the registration form. An empty username goes
// back to the previous screen.
func (a *App) registerScreen(ctx context.Context, scanner *bufio.Scanner) (bool, error) {
	a.printf("\n[register] enter details, empty username to go back:\n")

	username, ok := a.readLine(scanner, "username> ")
	if !ok {
		return true, nil
	}
	if username == "" {
		a.nav.Back()
		return false, nil
	}

	email, ok := a.readLine(scanner, "email> ")
	if !ok {
		return true, nil
	}
	password, ok := a.readLine(scanner, "password> ")
	if !ok {
		return true, nil
	}
	confirm, ok := a.readLine(scanner, "confirm password> ")
	if !ok {
		return true, nil
	}

	reg := models.Registration{
		Username:        username,
		Email:           email,
		Password:        password,
		PasswordConfirm: confirm,
	}

	if err := a.sessions.SubmitRegistration(ctx, reg); err != nil {
		a.printf("%s\n", service.UserMessage(err))
		return false, nil
	}

	a.printf("%s\n", app.MsgRegistrationComplete)
	return false, nil
}

// homeScreen is the authenticated prompt loop.
func (a *App) homeScreen(ctx context.Context, scanner *bufio.Scanner) (bool, error) {
	a.printf("\n[home] commands: list, logout, quit\n")

	for a.nav.Current() == navigation.RouteHome {
		cmd, ok := a.readLine(scanner, "> ")
		if !ok {
			return true, nil
		}

		switch strings.ToLower(cmd) {
		case "quit", "exit":
			return true, nil

		case "list":
			items, err := a.sessions.FetchExpenses(ctx)
			if err != nil {
				a.printf("%s\n", service.UserMessage(err))
				continue
			}
			a.printExpenses(items)

		case "logout":
			a.job.Stop()
			if err := a.sessions.Logout(ctx); err != nil {
				a.printf("%s\n", service.UserMessage(err))
			}

		case "":
		default:
			a.printf("unknown command: %s\n", cmd)
		}
	}

	return false, nil
}

func (a *App) printExpenses(items []models.Expense) {
	if len(items) == 0 {
		a.printf("no expenses yet\n")
		return
	}
	for _, e := range items {
		a.printf("%6d  %-16s %10.2f  %s\n", e.ID, e.Category, e.Amount, e.Date)
	}
}

// readLine prints prompt and reads one trimmed line. ok is false when stdin
// is exhausted.
func (a *App) readLine(scanner *bufio.Scanner, prompt string) (line string, ok bool) {
	a.printf("%s", prompt)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
