// Package alerts collects errors from background jobs and the HTTP layer and
// forwards each of them to the operator by email.
package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"visadesk/internal/core/ports"
	"visadesk/internal/pkg/clock"
)

const (
	Subject = "Error in api server"

	DefaultBufferSize   = 64
	DefaultDrainTimeout = 10 * time.Second
)

type Report struct {
	Source string
	Err    error
	At     time.Time
}

// Reporter is what producers of errors depend on.
type Reporter interface {
	Report(source string, err error)
}

type Metrics interface {
	Alert(source, result string)
}

type Supervisor struct {
	reports      chan Report
	mailer       ports.Mailer
	to           string
	clock        clock.Clock
	logger       *slog.Logger
	metrics      Metrics
	drainTimeout time.Duration
}

type Option func(*Supervisor)

func WithMetrics(m Metrics) Option {
	return func(s *Supervisor) { s.metrics = m }
}

func WithBufferSize(n int) Option {
	return func(s *Supervisor) {
		if n > 0 {
			s.reports = make(chan Report, n)
		}
	}
}

func WithDrainTimeout(d time.Duration) Option {
	return func(s *Supervisor) { s.drainTimeout = d }
}

func NewSupervisor(mailer ports.Mailer, to string, clk clock.Clock, logger *slog.Logger, opts ...Option) *Supervisor {
	s := &Supervisor{
		reports:      make(chan Report, DefaultBufferSize),
		mailer:       mailer,
		to:           to,
		clock:        clk,
		logger:       logger.With("component", "alert_supervisor"),
		drainTimeout: DefaultDrainTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Report never blocks. When the buffer is full the error is only logged.
func (s *Supervisor) Report(source string, err error) {
	if err == nil {
		return
	}
	r := Report{Source: source, Err: err, At: s.clock.Now()}
	select {
	case s.reports <- r:
	default:
		s.logger.Error("alert buffer full, dropping report", "source", source, "error", err)
		s.count(source, "dropped")
	}
}

// Run delivers reports until ctx is cancelled, then drains what is left
// within the drain timeout.
func (s *Supervisor) Run(ctx context.Context) {
	for {
		select {
		case r := <-s.reports:
			s.deliver(ctx, r)
		case <-ctx.Done():
			s.drain()
			return
		}
	}
}

func (s *Supervisor) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
	defer cancel()
	for {
		select {
		case r := <-s.reports:
			s.deliver(ctx, r)
		default:
			return
		}
		if ctx.Err() != nil {
			s.logger.Warn("alert drain timed out", "pending", len(s.reports))
			return
		}
	}
}

func (s *Supervisor) deliver(ctx context.Context, r Report) {
	s.logger.Error("error reported", "source", r.Source, "error", r.Err)

	msg := ports.Message{
		To:      []string{s.to},
		Subject: Subject,
		Body:    formatBody(r),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error("failed to send alert email",
			"source", r.Source, "error", r.Err, "send_error", err)
		s.count(r.Source, "failed")
		return
	}
	s.count(r.Source, "sent")
}

func (s *Supervisor) count(source, result string) {
	if s.metrics != nil {
		s.metrics.Alert(source, result)
	}
}

func formatBody(r Report) string {
	return fmt.Sprintf("Source: %s\nTime: %s\n\n%v\n", r.Source, r.At.Format(time.RFC3339), r.Err)
}
