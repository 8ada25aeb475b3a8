package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"leadgate/internal/platform/metrics"
)

const dispatchTimeout = 30 * time.Second

// Dispatcher runs notification tasks in the background. Failures are logged
// and counted but never reach the caller, and a panicking sender cannot take
// down its siblings or the process.
type Dispatcher struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
	wg      sync.WaitGroup
}

// NewDispatcher builds a dispatcher. metrics may be nil in tests.
func NewDispatcher(logger *slog.Logger, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{logger: logger, metrics: m}
}

// Task is one named delivery attempt.
type Task struct {
	Name string
	Send func(ctx context.Context) error
}

// Dispatch runs the tasks concurrently, detached from the request context so
// an early client disconnect does not cancel delivery. It returns immediately.
func (d *Dispatcher) Dispatch(ctx context.Context, submissionID string, tasks ...Task) {
	base := context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(base, dispatchTimeout)
		defer cancel()

		var g errgroup.Group
		for _, task := range tasks {
			g.Go(func() error {
				d.run(ctx, submissionID, task)
				return nil
			})
		}
		_ = g.Wait()
	}()
}

func (d *Dispatcher) run(ctx context.Context, submissionID string, task Task) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("notification sender panicked",
				"task", task.Name, "submission_id", submissionID, "panic", r)
			d.fail()
		}
	}()

	if err := task.Send(ctx); err != nil {
		d.logger.Error("notification delivery failed",
			"task", task.Name, "submission_id", submissionID, "error", err)
		d.fail()
		return
	}
	d.logger.Debug("notification delivered", "task", task.Name, "submission_id", submissionID)
}

func (d *Dispatcher) fail() {
	if d.metrics != nil {
		d.metrics.NotificationFailures.Inc()
	}
}

// Wait blocks until all in-flight dispatches finish. Called on shutdown and
// by tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
