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

const businessClubAccepted = "Thank you for your application! We'll review your information and get back to you shortly."

// RegisterForBusinessClub handles the membership questionnaire. The payload
// carries closed-vocabulary selections, all enforced before any side effect.
func (s *Service) RegisterForBusinessClub(ctx context.Context, req intake.BusinessClubRegistrationRequest) (*intake.BusinessClubRegistrationResponse, error) {
	if v := validate.BusinessClubRegistration(req); v != nil {
		s.observe("business_club", outcomeRejected)
		return nil, dErrors.New(dErrors.CodeBadRequest, v.Message)
	}

	reg := &domain.BusinessClubRegistration{
		ID:                ident.New(ident.BusinessClub),
		FullName:          req.FullName,
		Phone:             req.Phone,
		Email:             req.Email,
		BusinessName:      req.BusinessName,
		BusinessType:      req.BusinessType,
		BusinessLocation:  req.BusinessLocation,
		YearsInBusiness:   req.YearsInBusiness,
		NumberOfEmployees: req.NumberOfEmployees,
		BusinessRealities: req.BusinessRealities,
		Expectations:      req.Expectations,
		FocusAreas:        req.FocusAreas,
		HowDidYouHear:     req.HowDidYouHear,
	}
	s.emit(ctx, reg.ID, "business_club", audit.ActionReceived, audit.OutcomeOK, "")

	if _, err := s.persist(ctx, "business_club", reg.ID, func(ctx context.Context) error {
		return s.store.SaveBusinessClubRegistration(ctx, reg)
	}); err != nil {
		s.observe("business_club", outcomeRejected)
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, reg.ID,
		notify.Task{Name: "business_club_confirmation", Send: func(ctx context.Context) error {
			return s.email.SendEmail(ctx, notify.BusinessClubConfirmation(reg))
		}},
		notify.Task{Name: "business_club_operator_alert", Send: func(ctx context.Context) error {
			return s.email.SendEmail(ctx, notify.BusinessClubNotification(s.operatorEmail, reg))
		}},
	)
	s.emit(ctx, reg.ID, "business_club", audit.ActionNotified, audit.OutcomeOK, "")
	s.observe("business_club", outcomeAccepted)

	return &intake.BusinessClubRegistrationResponse{
		Success:        true,
		Message:        businessClubAccepted,
		RegistrationID: reg.ID,
	}, nil
}
