// Package audit records the intake trail: one event per submission milestone
// (received, payment initiated, persisted, verified). The trail is best
// effort and never blocks or fails a request.
package audit

import "time"

// Event is emitted from intake logic to capture key actions. Keep it
// transport-agnostic so sinks can fan out.
type Event struct {
	Timestamp    time.Time `json:"timestamp"`
	SubmissionID string    `json:"submissionId"`
	Domain       string    `json:"domain"`
	Action       string    `json:"action"`
	Outcome      string    `json:"outcome"`
	Detail       string    `json:"detail,omitempty"`
}

// Actions recorded on the trail.
const (
	ActionReceived         = "received"
	ActionPaymentInitiated = "payment_initiated"
	ActionPersisted        = "persisted"
	ActionNotified         = "notified"
	ActionPaymentVerified  = "payment_verified"
)

// Outcomes recorded on the trail.
const (
	OutcomeOK       = "ok"
	OutcomeFailed   = "failed"
	OutcomeDegraded = "degraded"
	OutcomeNoop     = "noop"
)
