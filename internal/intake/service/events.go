package service

import (
	"context"
	"errors"

	"leadgate/internal/audit"
	"leadgate/internal/catalog"
	"leadgate/internal/domain"
	"leadgate/internal/intake"
	"leadgate/internal/intake/ident"
	"leadgate/internal/intake/validate"
	"leadgate/internal/notify"
	"leadgate/internal/payment"
	dErrors "leadgate/pkg/domain-errors"
	"leadgate/pkg/platform/sentinel"
)

const (
	eventAcceptedFree     = "Registration successful! You'll receive a confirmation email shortly."
	eventAcceptedPending  = "Registration created! Please complete payment to confirm your spot."
	eventAcceptedDegraded = "Registration created! Payment initialization failed. Please contact support."

	verificationSucceeded = "Payment verified successfully!"
	verificationFailed    = "Payment verification failed"
)

// RegisterForEvent handles event signups. Priced events open a hosted payment
// page; initiation failure degrades the registration instead of aborting it,
// so the attendee keeps their id and can pay later.
func (s *Service) RegisterForEvent(ctx context.Context, req intake.EventRegistrationRequest) (*intake.RegistrationResponse, error) {
	if v := validate.EventRegistration(req); v != nil {
		s.observe("events", outcomeRejected)
		return nil, dErrors.New(dErrors.CodeBadRequest, v.Message)
	}

	ev, ok := catalog.Lookup(req.EventID)
	if !ok {
		s.observe("events", outcomeRejected)
		return nil, dErrors.New(dErrors.CodeNotFound, "Event not found")
	}

	amount := req.Amount
	if amount <= 0 {
		amount = ev.Amount
	}
	currency := req.Currency
	if currency == "" {
		currency = catalog.DefaultCurrency
	}
	priced := amount > 0

	reg := &domain.EventRegistration{
		ID:             ident.New(ident.Event),
		EventID:        req.EventID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		BusinessName:   req.BusinessName,
		AdditionalInfo: req.AdditionalInfo,
		Amount:         amount,
		Currency:       currency,
		PaymentState:   domain.PaymentFree,
	}
	if priced {
		reg.PaymentState = domain.PaymentPending
	}
	s.emit(ctx, reg.ID, "events", audit.ActionReceived, audit.OutcomeOK, ev.Title)

	var paymentURL string
	if priced {
		session, err := s.gateway.Initiate(ctx, payment.Initiation{
			SubmissionID: reg.ID,
			Email:        reg.Email,
			Description:  ev.Title,
			Amount:       amount,
			Currency:     currency,
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "payment initiation failed, continuing without payment page",
				"submission_id", reg.ID, "event_id", ev.ID, "error", err)
			s.metrics.PaymentInitiations.WithLabelValues("failed").Inc()
			s.emit(ctx, reg.ID, "events", audit.ActionPaymentInitiated, audit.OutcomeFailed, "")
		} else {
			paymentURL = session.RedirectURL
			reg.PaymentReference = session.Reference
			s.metrics.PaymentInitiations.WithLabelValues("ok").Inc()
			s.emit(ctx, reg.ID, "events", audit.ActionPaymentInitiated, audit.OutcomeOK, "")
		}
	}

	if _, err := s.persist(ctx, "events", reg.ID, func(ctx context.Context) error {
		return s.store.SaveEventRegistration(ctx, reg)
	}); err != nil {
		s.observe("events", outcomeRejected)
		return nil, err
	}

	// A priced registration whose payment page never opened gets no
	// confirmation yet; the attendee is told to contact support instead.
	if !priced || paymentURL != "" {
		tasks := []notify.Task{
			{Name: "event_confirmation", Send: func(ctx context.Context) error {
				return s.email.SendEmail(ctx, notify.EventConfirmation(reg, ev))
			}},
			{Name: "event_operator_alert", Send: func(ctx context.Context) error {
				return s.email.SendEmail(ctx, notify.EventNotification(s.operatorEmail, reg, ev))
			}},
		}
		if s.sms != nil && reg.Phone != "" {
			tasks = append(tasks, notify.Task{Name: "event_confirmation_sms", Send: func(ctx context.Context) error {
				return s.sms.SendSMS(ctx, notify.EventRegistrationSMS(reg, ev))
			}})
		}
		s.dispatcher.Dispatch(ctx, reg.ID, tasks...)
		s.emit(ctx, reg.ID, "events", audit.ActionNotified, audit.OutcomeOK, "")
	}

	resp := &intake.RegistrationResponse{
		Success:          true,
		RegistrationID:   reg.ID,
		PaymentURL:       paymentURL,
		PaymentReference: reg.PaymentReference,
	}
	switch {
	case !priced:
		resp.Message = eventAcceptedFree
		s.observe("events", outcomeAccepted)
	case paymentURL != "":
		resp.Message = eventAcceptedPending
		s.observe("events", outcomeAccepted)
	default:
		resp.Message = eventAcceptedDegraded
		s.observe("events", outcomeDegraded)
	}
	return resp, nil
}

// VerifyEventPayment asks the gateway about a reference and, when paid,
// settles the matching registration. Verifying an already-paid reference is an
// idempotent success that does not re-send the confirmation email.
func (s *Service) VerifyEventPayment(ctx context.Context, req intake.PaymentVerificationRequest) (*intake.PaymentVerificationResponse, error) {
	if req.Reference == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "Payment reference is required")
	}

	verification, err := s.gateway.Verify(ctx, req.Reference)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "verify payment", err)
	}
	if !verification.Paid {
		s.metrics.PaymentVerifications.WithLabelValues("failed").Inc()
		return &intake.PaymentVerificationResponse{
			Success: false,
			Message: verificationFailed,
			Status:  "failed",
		}, nil
	}

	reg, transitioned, err := s.store.TransitionEventPayment(ctx, req.Reference, domain.PaymentPaid)
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			s.metrics.PaymentVerifications.WithLabelValues("not_found").Inc()
			return nil, dErrors.New(dErrors.CodeNotFound, "Registration not found")
		case errors.Is(err, sentinel.ErrUnavailable):
			// The gateway says paid; the record catches up when the store
			// returns. The customer is not told to retry a settled payment.
			s.logger.WarnContext(ctx, "record store unavailable, payment state not updated",
				"reference", req.Reference, "error", err)
			s.metrics.StoreUnavailable.Inc()
		case errors.Is(err, sentinel.ErrConflict):
			return nil, dErrors.Wrap(dErrors.CodeConflict, "payment state conflict", err)
		default:
			return nil, dErrors.Wrap(dErrors.CodeInternal, "update payment state", err)
		}
	}

	if transitioned {
		ev, ok := catalog.Lookup(reg.EventID)
		if ok {
			s.dispatcher.Dispatch(ctx, reg.ID,
				notify.Task{Name: "event_payment_confirmation", Send: func(ctx context.Context) error {
					return s.email.SendEmail(ctx, notify.EventConfirmation(reg, ev))
				}},
			)
		}
		s.emit(ctx, reg.ID, "events", audit.ActionPaymentVerified, audit.OutcomeOK, "")
	} else if reg != nil {
		s.emit(ctx, reg.ID, "events", audit.ActionPaymentVerified, audit.OutcomeNoop, "")
	}

	s.metrics.PaymentVerifications.WithLabelValues("success").Inc()
	return &intake.PaymentVerificationResponse{
		Success: true,
		Message: verificationSucceeded,
		Status:  "success",
		Amount:  verification.Amount,
	}, nil
}
