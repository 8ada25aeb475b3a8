// Package store persists submissions. Implementations classify failures with
// pkg/platform/sentinel so orchestrators can tell a transient availability
// problem (tolerated) from a data problem (fatal) without inspecting vendor
// error text.
package store

import (
	"context"

	"leadgate/internal/domain"
)

// Store is the record store adapter. Save methods return
// sentinel.ErrUnavailable when the backing store is unreachable or not
// configured, and sentinel.ErrConflict on constraint violations. Find methods
// return sentinel.ErrNotFound for absent records.
type Store interface {
	SaveContact(ctx context.Context, c *domain.Contact) error
	SaveEventRegistration(ctx context.Context, r *domain.EventRegistration) error
	SaveWebinarRegistration(ctx context.Context, r *domain.WebinarRegistration) error
	SaveBusinessClubRegistration(ctx context.Context, r *domain.BusinessClubRegistration) error
	SaveServiceInquiry(ctx context.Context, s *domain.ServiceInquiry) error

	FindEventByPaymentReference(ctx context.Context, reference string) (*domain.EventRegistration, error)
	FindWebinarByPaymentReference(ctx context.Context, reference string) (*domain.WebinarRegistration, error)

	// TransitionEventPayment conditionally moves the registration with the
	// given payment reference to the target state. The bool reports whether a
	// transition happened: false with a nil error means the record was
	// already in the target state (idempotent no-op). A record in a
	// different terminal state yields sentinel.ErrConflict.
	TransitionEventPayment(ctx context.Context, reference string, to domain.PaymentState) (*domain.EventRegistration, bool, error)
	TransitionWebinarPayment(ctx context.Context, reference string, to domain.PaymentState) (*domain.WebinarRegistration, bool, error)
}
