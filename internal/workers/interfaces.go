// Package workers contains the background jobs of the client. Jobs are idle
// until started and own their goroutines for their whole lifetime.
package workers

import (
	"context"
	"time"

	"github.com/spendwise/spendwise-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/expense_refresh_job_mock.go -package=mock

// ExpenseRefreshJob keeps a cached expense snapshot warm by refetching the
// list on a ticker while a session is active.
type ExpenseRefreshJob interface {
	// Start stops any previously running job, then launches a background
	// goroutine that refreshes the snapshot every interval. The goroutine
	// exits when ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and blocks until it has fully
	// exited. Safe to call when the job is not running.
	Stop()

	// Latest returns the most recent successfully fetched snapshot, or nil
	// when no refresh has succeeded yet.
	Latest() []models.Expense
}
