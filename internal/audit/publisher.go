package audit

import (
	"context"
	"log/slog"
	"time"
)

// Sink receives trail events. Implementations must be safe for concurrent
// use.
type Sink interface {
	Append(ctx context.Context, event Event) error
}

// Publisher captures structured trail events. Append failures are logged and
// swallowed so the trail can never take down a submission.
type Publisher struct {
	sink   Sink
	logger *slog.Logger
}

func NewPublisher(sink Sink, logger *slog.Logger) *Publisher {
	return &Publisher{sink: sink, logger: logger}
}

func (p *Publisher) Emit(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := p.sink.Append(ctx, event); err != nil {
		p.logger.Warn("audit append failed",
			"submission_id", event.SubmissionID, "action", event.Action, "error", err)
	}
}
