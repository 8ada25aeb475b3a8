package service

import (
	"context"

	"leadgate/internal/audit"
	"leadgate/internal/domain"
	"leadgate/internal/intake"
	"leadgate/internal/intake/ident"
	"leadgate/internal/intake/validate"
	"leadgate/internal/notify"
	dErrors "leadgate/pkg/domain-errors"
)

const inquiryAccepted = "Thank you for your interest! Our team will contact you within 24 hours."

// SubmitServiceInquiry handles requests about a listed service.
func (s *Service) SubmitServiceInquiry(ctx context.Context, req intake.ServiceInquiryRequest) (*intake.ServiceInquiryResponse, error) {
	if v := validate.ServiceInquiry(req); v != nil {
		s.observe("services", outcomeRejected)
		return nil, dErrors.New(dErrors.CodeBadRequest, v.Message)
	}

	inq := &domain.ServiceInquiry{
		ID:              ident.New(ident.Inquiry),
		ServiceName:     req.ServiceName,
		ServiceCategory: req.ServiceCategory,
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		BusinessName:    req.BusinessName,
		Message:         req.Message,
	}
	s.emit(ctx, inq.ID, "services", audit.ActionReceived, audit.OutcomeOK, inq.ServiceName)

	if _, err := s.persist(ctx, "services", inq.ID, func(ctx context.Context) error {
		return s.store.SaveServiceInquiry(ctx, inq)
	}); err != nil {
		s.observe("services", outcomeRejected)
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, inq.ID,
		notify.Task{Name: "inquiry_confirmation", Send: func(ctx context.Context) error {
			return s.email.SendEmail(ctx, notify.ServiceInquiryConfirmation(inq))
		}},
		notify.Task{Name: "inquiry_operator_alert", Send: func(ctx context.Context) error {
			return s.email.SendEmail(ctx, notify.ServiceInquiryNotification(s.operatorEmail, inq))
		}},
	)
	s.emit(ctx, inq.ID, "services", audit.ActionNotified, audit.OutcomeOK, "")
	s.observe("services", outcomeAccepted)

	return &intake.ServiceInquiryResponse{Success: true, Message: inquiryAccepted}, nil
}
