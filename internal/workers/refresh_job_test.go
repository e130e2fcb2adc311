package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/spendwise/spendwise-client/internal/logger"
	"github.com/spendwise/spendwise-client/internal/mock"
	"github.com/spendwise/spendwise-client/internal/service"
	"github.com/spendwise/spendwise-client/models"
)

func waitForSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a background refresh")
	}
}

func TestExpenseRefreshJob_UpdatesSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mock.NewMockSessionService(ctrl)
	want := []models.Expense{{ID: 1, Category: "groceries", Amount: 12.3, Date: "2025-03-01"}}

	fetched := make(chan struct{}, 1)
	sessions.EXPECT().FetchExpenses(gomock.Any()).DoAndReturn(
		func(context.Context) ([]models.Expense, error) {
			select {
			case fetched <- struct{}{}:
			default:
			}
			return want, nil
		},
	).AnyTimes()

	job := NewExpenseRefreshJob(sessions, logger.Nop())
	require.Nil(t, job.Latest())

	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	waitForSignal(t, fetched)
	job.Stop()

	assert.Equal(t, want, job.Latest())
}

func TestExpenseRefreshJob_MissingSessionKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mock.NewMockSessionService(ctrl)
	want := []models.Expense{{ID: 2, Category: "transport", Amount: 4.5, Date: "2025-03-02"}}

	firstDone := make(chan struct{}, 1)
	failed := make(chan struct{}, 1)
	first := sessions.EXPECT().FetchExpenses(gomock.Any()).DoAndReturn(
		func(context.Context) ([]models.Expense, error) {
			select {
			case firstDone <- struct{}{}:
			default:
			}
			return want, nil
		},
	)
	sessions.EXPECT().FetchExpenses(gomock.Any()).DoAndReturn(
		func(context.Context) ([]models.Expense, error) {
			select {
			case failed <- struct{}{}:
			default:
			}
			return nil, service.ErrNoSession
		},
	).AnyTimes().After(first)

	job := NewExpenseRefreshJob(sessions, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)
	defer job.Stop()

	waitForSignal(t, firstDone)
	waitForSignal(t, failed)
	job.Stop()

	// the last good snapshot survives a failed refresh
	assert.Equal(t, want, job.Latest())
}

func TestExpenseRefreshJob_StopWithoutStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := NewExpenseRefreshJob(mock.NewMockSessionService(ctrl), logger.Nop())
	job.Stop()
	job.Stop()
}

func TestExpenseRefreshJob_ContextCancelStopsRefreshing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessions := mock.NewMockSessionService(ctrl)
	sessions.EXPECT().FetchExpenses(gomock.Any()).Return(nil, service.ErrNoSession).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	job := NewExpenseRefreshJob(sessions, logger.Nop())
	job.Start(ctx, 5*time.Millisecond)

	cancel()

	// Stop must return promptly once the context is cancelled
	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return after context cancellation")
	}
}
