package domain

import (
	"fmt"
	"time"
)

// PaymentState tracks a payment-gated submission through its lifecycle.
// Transitions only move forward: pending may become paid or failed; free is
// both initial and terminal for unpriced submissions and never acquires a
// payment reference.
type PaymentState string

const (
	PaymentFree    PaymentState = "free"
	PaymentPending PaymentState = "pending"
	PaymentPaid    PaymentState = "paid"
	PaymentFailed  PaymentState = "failed"
)

// CanTransitionTo reports whether moving to the target state is a legal
// forward transition.
func (s PaymentState) CanTransitionTo(target PaymentState) bool {
	switch s {
	case PaymentPending:
		return target == PaymentPaid || target == PaymentFailed
	default:
		return false
	}
}

// Transition returns the target state or an error when the move would go
// backward or skip a state.
func (s PaymentState) Transition(target PaymentState) (PaymentState, error) {
	if !s.CanTransitionTo(target) {
		return s, fmt.Errorf("illegal payment state transition %s -> %s", s, target)
	}
	return target, nil
}

// Contact is a write-once contact form submission.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EventRegistration is a signup for a catalog event, payment-gated when the
// resolved price is nonzero.
type EventRegistration struct {
	ID             string
	EventID        int
	Name           string
	Email          string
	Phone          string
	BusinessName   string
	AdditionalInfo string
	// Amount is the event price in major currency units.
	Amount   int64
	Currency string
	// PaymentReference correlates the gateway transaction with this record.
	// Set only after successful payment initiation.
	PaymentReference string
	PaymentState     PaymentState
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// WebinarRegistration is always payment-gated at the fixed webinar price.
type WebinarRegistration struct {
	ID               string
	Name             string
	BusinessName     string
	Phone            string
	Email            string
	Questions        string
	Amount           int64
	Currency         string
	PaymentReference string
	PaymentState     PaymentState
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BusinessClubRegistration is the multi-step membership questionnaire.
// BusinessRealities and FocusAreas always carry at least one element; an
// empty selection is rejected at validation, never stored.
type BusinessClubRegistration struct {
	ID                string
	FullName          string
	Phone             string
	Email             string
	BusinessName      string
	BusinessType      string
	BusinessLocation  string
	YearsInBusiness   string
	NumberOfEmployees string
	BusinessRealities []string
	Expectations      string
	FocusAreas        []string
	HowDidYouHear     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ServiceInquiry is a write-once request about a listed service.
type ServiceInquiry struct {
	ID              string
	ServiceName     string
	ServiceCategory string
	Name            string
	Email           string
	Phone           string
	BusinessName    string
	Message         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Closed vocabularies for the business club questionnaire. These are enforced
// at the validation layer so a bad value is rejected with a clear message
// before any side effect.
var (
	BusinessTypes = []string{
		"Spa",
		"Hair and Beauty Salon",
		"Barbershop",
		"Salon & Spa",
		"Barbershop & Salon",
		"Nail Salon",
	}

	YearsInBusinessOptions = []string{
		"Less than 1 year",
		"1 – 3 years",
		"3 – 5 years",
		"Over 5 years",
	}

	NumberOfEmployeesOptions = []string{
		"1 (Just me)",
		"2 – 3",
		"4 – 6",
		"7 – 10",
		"10+",
	}

	BusinessRealityOptions = []string{
		"I'm busy but profits are zero to none",
		"I struggle with pricing",
		"Cash flow is inconsistent",
		"Staff management is a challenge",
		"I want to grow but don't know how",
		"I feel overwhelmed running the business",
		"Things are going well, but I want to scale",
	}

	FocusAreaOptions = []string{
		"Pricing & profitability",
		"Financial management & taxes",
		"Staff management & retention",
		"Marketing & customer retention",
		"Business systems & structure",
		"Scaling & opening more branches",
		"Personal growth as a business owner",
	}

	HowDidYouHearOptions = []string{
		"Instagram",
		"WhatsApp",
		"Referral from another owner",
		"Webinar / Event",
		"Other",
	}
)
