// Package service orchestrates intake submissions. Every domain shares one
// sequence: validate, assign an id, initiate payment when the submission is
// priced, persist, then notify. Persistence tolerates store downtime and
// notifications are fire-and-forget, so a submitter gets their id and
// acknowledgement whenever their payload is valid.
package service

import (
	"context"
	"errors"
	"log/slog"

	"leadgate/internal/audit"
	"leadgate/internal/intake/store"
	"leadgate/internal/notify"
	"leadgate/internal/payment"
	"leadgate/internal/platform/metrics"
	dErrors "leadgate/pkg/domain-errors"
	"leadgate/pkg/platform/sentinel"
)

// Deps carries everything the orchestrators need. SMS may be nil; the
// dispatcher then skips text messages.
type Deps struct {
	Store         store.Store
	Gateway       payment.Gateway
	Email         notify.EmailSender
	SMS           notify.SMSSender
	Dispatcher    *notify.Dispatcher
	Trail         *audit.Publisher
	Metrics       *metrics.Metrics
	Logger        *slog.Logger
	OperatorEmail string
}

// Service is the intake orchestrator for all submission domains.
type Service struct {
	store         store.Store
	gateway       payment.Gateway
	email         notify.EmailSender
	sms           notify.SMSSender
	dispatcher    *notify.Dispatcher
	trail         *audit.Publisher
	metrics       *metrics.Metrics
	logger        *slog.Logger
	operatorEmail string
}

func New(deps Deps) *Service {
	return &Service{
		store:         deps.Store,
		gateway:       deps.Gateway,
		email:         deps.Email,
		sms:           deps.SMS,
		dispatcher:    deps.Dispatcher,
		trail:         deps.Trail,
		metrics:       deps.Metrics,
		logger:        deps.Logger,
		operatorEmail: deps.OperatorEmail,
	}
}

// Submission outcomes for metrics.
const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeDegraded = "degraded"
)

// persist writes through fn and classifies the result: store downtime is
// tolerated (the submission proceeds without a durable record), anything else
// is fatal to the request.
func (s *Service) persist(ctx context.Context, domainName, id string, fn func(context.Context) error) (persisted bool, err error) {
	if err := fn(ctx); err != nil {
		if errors.Is(err, sentinel.ErrUnavailable) {
			s.logger.WarnContext(ctx, "record store unavailable, continuing without save",
				"domain", domainName, "submission_id", id, "error", err)
			s.metrics.StoreUnavailable.Inc()
			s.emit(ctx, id, domainName, audit.ActionPersisted, audit.OutcomeDegraded, "store unavailable")
			return false, nil
		}
		return false, dErrors.Wrap(dErrors.CodeInternal, "persist "+domainName+" submission", err)
	}
	s.emit(ctx, id, domainName, audit.ActionPersisted, audit.OutcomeOK, "")
	return true, nil
}

func (s *Service) emit(ctx context.Context, id, domainName, action, outcome, detail string) {
	if s.trail == nil {
		return
	}
	s.trail.Emit(ctx, audit.Event{
		SubmissionID: id,
		Domain:       domainName,
		Action:       action,
		Outcome:      outcome,
		Detail:       detail,
	})
}

func (s *Service) observe(domainName, outcome string) {
	s.metrics.ObserveSubmission(domainName, outcome)
}
