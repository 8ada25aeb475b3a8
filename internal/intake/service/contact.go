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

const contactAccepted = "Thank you for your message. We'll get back to you soon!"

// SubmitContact handles the contact form: validate, id, best-effort persist,
// then confirmation and operator emails in the background.
func (s *Service) SubmitContact(ctx context.Context, req intake.ContactRequest) (*intake.ContactResponse, error) {
	if v := validate.Contact(req); v != nil {
		s.observe("contact", outcomeRejected)
		return nil, dErrors.New(dErrors.CodeBadRequest, v.Message)
	}

	contact := &domain.Contact{
		ID:      ident.New(ident.Contact),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	s.emit(ctx, contact.ID, "contact", audit.ActionReceived, audit.OutcomeOK, "")

	if _, err := s.persist(ctx, "contact", contact.ID, func(ctx context.Context) error {
		return s.store.SaveContact(ctx, contact)
	}); err != nil {
		s.observe("contact", outcomeRejected)
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, contact.ID,
		notify.Task{Name: "contact_confirmation", Send: func(ctx context.Context) error {
			return s.email.SendEmail(ctx, notify.ContactConfirmation(contact))
		}},
		notify.Task{Name: "contact_operator_alert", Send: func(ctx context.Context) error {
			return s.email.SendEmail(ctx, notify.ContactNotification(s.operatorEmail, contact))
		}},
	)
	s.emit(ctx, contact.ID, "contact", audit.ActionNotified, audit.OutcomeOK, "")
	s.observe("contact", outcomeAccepted)

	return &intake.ContactResponse{Success: true, Message: contactAccepted}, nil
}
