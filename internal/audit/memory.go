package audit

import (
	"context"
	"sync"
)

// MemorySink is an append-only in-process sink. It backs deployments without
// a broker and keeps tests free of infrastructure.
type MemorySink struct {
	mu     sync.RWMutex
	events []Event
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// BySubmission returns the recorded events for one submission, in order.
func (s *MemorySink) BySubmission(id string) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Event
	for _, e := range s.events {
		if e.SubmissionID == id {
			out = append(out, e)
		}
	}
	return out
}
