package audit

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherStampsAndAppends(t *testing.T) {
	sink := NewMemorySink()
	pub := NewPublisher(sink, slog.New(slog.DiscardHandler))

	pub.Emit(context.Background(), Event{
		SubmissionID: "REG-1-AAAAAAAAA",
		Domain:       "events",
		Action:       ActionReceived,
		Outcome:      OutcomeOK,
	})
	pub.Emit(context.Background(), Event{
		SubmissionID: "REG-1-AAAAAAAAA",
		Domain:       "events",
		Action:       ActionPersisted,
		Outcome:      OutcomeOK,
	})

	events := sink.BySubmission("REG-1-AAAAAAAAA")
	require.Len(t, events, 2)
	assert.Equal(t, ActionReceived, events[0].Action)
	assert.Equal(t, ActionPersisted, events[1].Action)
	assert.False(t, events[0].Timestamp.IsZero())
}

type failingSink struct{}

func (failingSink) Append(context.Context, Event) error {
	return errors.New("broker unreachable")
}

func TestPublisherSwallowsSinkErrors(t *testing.T) {
	pub := NewPublisher(failingSink{}, slog.New(slog.DiscardHandler))

	assert.NotPanics(t, func() {
		pub.Emit(context.Background(), Event{SubmissionID: "REG-1-AAAAAAAAA"})
	})
}
