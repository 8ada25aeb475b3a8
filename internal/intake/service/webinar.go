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
	webinarAcceptedPending       = "Registration initiated! Please complete your payment to secure your spot."
	webinarAcceptedDegraded      = "Registration created! Payment initialization failed. Please contact support."
	webinarVerificationSucceeded = "Payment verified successfully! Your webinar registration is confirmed."
)

// RegisterForWebinar handles webinar signups, which are always priced at the
// fixed webinar fee.
func (s *Service) RegisterForWebinar(ctx context.Context, req intake.WebinarRegistrationRequest) (*intake.RegistrationResponse, error) {
	if v := validate.WebinarRegistration(req); v != nil {
		s.observe("webinar", outcomeRejected)
		return nil, dErrors.New(dErrors.CodeBadRequest, v.Message)
	}

	reg := &domain.WebinarRegistration{
		ID:           ident.New(ident.Webinar),
		Name:         req.Name,
		BusinessName: req.BusinessName,
		Phone:        req.Phone,
		Email:        req.Email,
		Questions:    req.Questions,
		Amount:       catalog.WebinarAmount,
		Currency:     catalog.DefaultCurrency,
		PaymentState: domain.PaymentPending,
	}
	s.emit(ctx, reg.ID, "webinar", audit.ActionReceived, audit.OutcomeOK, "")

	var paymentURL string
	session, err := s.gateway.Initiate(ctx, payment.Initiation{
		SubmissionID: reg.ID,
		Email:        reg.Email,
		Description:  "Beauty Business Webinar",
		Amount:       reg.Amount,
		Currency:     reg.Currency,
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "payment initiation failed, continuing without payment page",
			"submission_id", reg.ID, "error", err)
		s.metrics.PaymentInitiations.WithLabelValues("failed").Inc()
		s.emit(ctx, reg.ID, "webinar", audit.ActionPaymentInitiated, audit.OutcomeFailed, "")
	} else {
		paymentURL = session.RedirectURL
		reg.PaymentReference = session.Reference
		s.metrics.PaymentInitiations.WithLabelValues("ok").Inc()
		s.emit(ctx, reg.ID, "webinar", audit.ActionPaymentInitiated, audit.OutcomeOK, "")
	}

	if _, err := s.persist(ctx, "webinar", reg.ID, func(ctx context.Context) error {
		return s.store.SaveWebinarRegistration(ctx, reg)
	}); err != nil {
		s.observe("webinar", outcomeRejected)
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, reg.ID,
		notify.Task{Name: "webinar_confirmation", Send: func(ctx context.Context) error {
			return s.email.SendEmail(ctx, notify.WebinarConfirmation(reg))
		}},
		notify.Task{Name: "webinar_operator_alert", Send: func(ctx context.Context) error {
			return s.email.SendEmail(ctx, notify.WebinarNotification(s.operatorEmail, reg))
		}},
	)
	s.emit(ctx, reg.ID, "webinar", audit.ActionNotified, audit.OutcomeOK, "")

	resp := &intake.RegistrationResponse{
		Success:          true,
		RegistrationID:   reg.ID,
		PaymentURL:       paymentURL,
		PaymentReference: reg.PaymentReference,
	}
	if paymentURL != "" {
		resp.Message = webinarAcceptedPending
		s.observe("webinar", outcomeAccepted)
	} else {
		resp.Message = webinarAcceptedDegraded
		s.observe("webinar", outcomeDegraded)
	}
	return resp, nil
}

// VerifyWebinarPayment settles a webinar registration after the gateway
// confirms payment. Re-verification is an idempotent success.
func (s *Service) VerifyWebinarPayment(ctx context.Context, req intake.PaymentVerificationRequest) (*intake.PaymentVerificationResponse, error) {
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

	reg, transitioned, err := s.store.TransitionWebinarPayment(ctx, req.Reference, domain.PaymentPaid)
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrNotFound):
			s.metrics.PaymentVerifications.WithLabelValues("not_found").Inc()
			return nil, dErrors.New(dErrors.CodeNotFound, "Registration not found")
		case errors.Is(err, sentinel.ErrUnavailable):
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
		s.dispatcher.Dispatch(ctx, reg.ID,
			notify.Task{Name: "webinar_payment_confirmation", Send: func(ctx context.Context) error {
				return s.email.SendEmail(ctx, notify.WebinarPaymentConfirmation(reg, verification.Amount))
			}},
		)
		s.emit(ctx, reg.ID, "webinar", audit.ActionPaymentVerified, audit.OutcomeOK, "")
	} else if reg != nil {
		s.emit(ctx, reg.ID, "webinar", audit.ActionPaymentVerified, audit.OutcomeNoop, "")
	}

	s.metrics.PaymentVerifications.WithLabelValues("success").Inc()
	return &intake.PaymentVerificationResponse{
		Success: true,
		Message: webinarVerificationSucceeded,
		Status:  "success",
		Amount:  verification.Amount,
	}, nil
}
