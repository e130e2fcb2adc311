package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/spendwise/spendwise-client/internal/logger"
	"github.com/spendwise/spendwise-client/internal/service"
	"github.com/spendwise/spendwise-client/internal/utils"
	"github.com/spendwise/spendwise-client/models"
)

type expenseRefreshJob struct {
	sessions service.SessionService
	logger   *logger.Logger
	uuidGen  *utils.UUIDGenerator

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	snapMu sync.RWMutex
	latest []models.Expense
}

// NewExpenseRefreshJob creates a job that refetches the expense list on a
// ticker. The job is idle until Start is called.
func NewExpenseRefreshJob(sessions service.SessionService, log *logger.Logger) ExpenseRefreshJob {
	return &expenseRefreshJob{sessions: sessions, logger: log, uuidGen: utils.NewUUIDGenerator()}
}

// Start implements ExpenseRefreshJob. If interval is zero or negative it
// defaults to 5 minutes.
func (j *expenseRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx)
			}
		}
	}()
}

// refresh performs one fetch and updates the snapshot on success. Each cycle
// is tagged with its own request ID so the requests it issues correlate in
// the server logs. A missing session is expected between logins and skipped
// quietly; any other failure is logged and the previous snapshot stays in
// place.
func (j *expenseRefreshJob) refresh(ctx context.Context) {
	ctx = utils.WithRequestID(ctx, j.uuidGen.Generate())

	items, err := j.sessions.FetchExpenses(ctx)
	if err != nil {
		if !errors.Is(err, service.ErrNoSession) && !errors.Is(err, context.Canceled) {
			j.logger.Warn().Err(err).Msg("background expense refresh failed")
		}
		return
	}

	j.snapMu.Lock()
	j.latest = items
	j.snapMu.Unlock()
}

// Stop implements ExpenseRefreshJob.
func (j *expenseRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// Latest implements ExpenseRefreshJob.
func (j *expenseRefreshJob) Latest() []models.Expense {
	j.snapMu.RLock()
	defer j.snapMu.RUnlock()
	return j.latest
}
