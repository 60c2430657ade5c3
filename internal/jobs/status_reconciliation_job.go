package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"visadesk/internal/core/application/usecases/commands"
	"visadesk/internal/pkg/clock"
)

const (
	StatusReconciliationJobName = "status_reconciliation"
	// DefaultStatusReconciliationSchedule fires daily at 01:01.
	DefaultStatusReconciliationSchedule = "1 1 * * *"
)

type RetirePastOrdersHandler interface {
	Handle(ctx context.Context, cmd commands.RetirePastOrdersCommand) (commands.RetirePastOrdersResult, error)
}

type JobMetrics interface {
	JobFinished(job string, took time.Duration, err error)
	Retired(orders, applications int)
}

// StatusReconciliationJob moves Complete orders whose travel date has passed
// to Past. Runs never overlap.
type StatusReconciliationJob struct {
	handler  RetirePastOrdersHandler
	clock    clock.Clock
	schedule string
	metrics  JobMetrics
	logger   *slog.Logger

	running sync.Mutex
}

func NewStatusReconciliationJob(
	handler RetirePastOrdersHandler,
	clk clock.Clock,
	schedule string,
	metrics JobMetrics,
	logger *slog.Logger,
) *StatusReconciliationJob {
	if schedule == "" {
		schedule = DefaultStatusReconciliationSchedule
	}
	return &StatusReconciliationJob{
		handler:  handler,
		clock:    clk,
		schedule: schedule,
		metrics:  metrics,
		logger:   logger.With("component", "status_reconciliation_job"),
	}
}

func (j *StatusReconciliationJob) Name() string {
	return StatusReconciliationJobName
}

func (j *StatusReconciliationJob) Schedule() string {
	return j.schedule
}

func (j *StatusReconciliationJob) Run(ctx context.Context) error {
	_, err := j.RunNow(ctx)
	return err
}

// RunNow performs one reconciliation pass against the clock's current time.
// It returns ErrJobAlreadyRunning if another pass is in flight.
func (j *StatusReconciliationJob) RunNow(ctx context.Context) (commands.RetirePastOrdersResult, error) {
	if !j.running.TryLock() {
		j.logger.WarnContext(ctx, "Status reconciliation skipped, previous run still in progress")
		return commands.RetirePastOrdersResult{}, ErrJobAlreadyRunning
	}
	defer j.running.Unlock()

	begin := time.Now()
	asOf := j.clock.Now()
	cmd, err := commands.NewRetirePastOrdersCommand(asOf)
	if err != nil {
		return commands.RetirePastOrdersResult{}, err
	}

	result, err := j.handler.Handle(ctx, cmd)
	took := time.Since(begin)
	if j.metrics != nil {
		j.metrics.JobFinished(StatusReconciliationJobName, took, err)
		j.metrics.Retired(result.RetiredOrders, result.RetiredApplications)
	}
	if err != nil {
		j.logger.ErrorContext(ctx, "Status reconciliation failed",
			"error", err,
			"retired_orders", result.RetiredOrders,
			"retired_applications", result.RetiredApplications)
		return result, err
	}

	j.logger.InfoContext(ctx, "Status reconciliation finished",
		"as_of", asOf,
		"checked", result.Checked,
		"retired_orders", result.RetiredOrders,
		"retired_applications", result.RetiredApplications)
	return result, nil
}
