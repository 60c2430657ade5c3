package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// JobManager runs every registered Task on its cron schedule and hands
// failures to the Reporter.
type JobManager struct {
	tasks    []Task
	reporter Reporter
	logger   *slog.Logger

	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

// NewJobManager schedules tasks in loc. A nil loc means time.Local.
func NewJobManager(loc *time.Location, reporter Reporter, logger *slog.Logger, tasks ...Task) *JobManager {
	if loc == nil {
		loc = time.Local
	}
	logger = logger.With("component", "job_manager")
	cronLog := NewCronLogger(logger)
	ctx, cancel := context.WithCancel(context.Background())

	return &JobManager{
		tasks:    tasks,
		reporter: reporter,
		logger:   logger,
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog)),
		),
		ctx:    ctx,
		cancel: cancel,
	}
}

// StartAll registers all tasks and starts the scheduler. Nothing is started
// if any schedule fails to parse.
func (jm *JobManager) StartAll() error {
	ids := make([]cron.EntryID, 0, len(jm.tasks))
	for _, task := range jm.tasks {
		id, err := jm.cron.AddFunc(task.Schedule(), jm.runner(task))
		if err != nil {
			for _, added := range ids {
				jm.cron.Remove(added)
			}
			return fmt.Errorf("failed to schedule %s job: %w", task.Name(), err)
		}
		ids = append(ids, id)
		jm.logger.InfoContext(jm.ctx, "Job scheduled", "job", task.Name(), "schedule", task.Schedule())
	}

	jm.cron.Start()
	return nil
}

// StopAll stops scheduling, cancels in-flight runs and waits for them.
func (jm *JobManager) StopAll() {
	stopped := jm.cron.Stop()
	jm.cancel()
	<-stopped.Done()
	jm.logger.InfoContext(context.Background(), "All jobs stopped")
}

func (jm *JobManager) runner(task Task) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				jm.logger.ErrorContext(jm.ctx, "Job panicked", "job", task.Name(), "panic", r)
				jm.reporter.Report(task.Name(), fmt.Errorf("%w: %v", ErrJobPanicked, r))
			}
		}()

		err := task.Run(jm.ctx)
		switch {
		case err == nil:
		case errors.Is(err, ErrJobAlreadyRunning):
		case errors.Is(err, context.Canceled) && jm.ctx.Err() != nil:
			jm.logger.WarnContext(jm.ctx, "Job interrupted by shutdown", "job", task.Name())
		default:
			jm.reporter.Report(task.Name(), err)
		}
	}
}

// Entries exposes the next scheduled activations, mainly for diagnostics.
func (jm *JobManager) Entries() []cron.Entry {
	return jm.cron.Entries()
}
