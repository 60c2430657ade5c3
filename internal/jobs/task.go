package jobs

import (
	"context"
	"errors"
)

var (
	ErrJobAlreadyRunning = errors.New("job is already running")
	ErrJobPanicked       = errors.New("job panicked")
)

// Task is a unit of recurring work the JobManager schedules.
type Task interface {
	Name() string
	// Schedule is a standard five-field cron expression.
	Schedule() string
	Run(ctx context.Context) error
}

// Reporter receives errors from scheduled runs.
type Reporter interface {
	Report(source string, err error)
}
