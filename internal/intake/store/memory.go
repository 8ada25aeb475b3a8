package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"leadgate/internal/domain"
	"leadgate/pkg/platform/sentinel"
)

// InMemory keeps submissions in process memory. It backs development runs
// without a database and doubles as the test fake; SetUnavailable simulates
// store downtime for the availability-tolerance paths.
type InMemory struct {
	mu sync.RWMutex

	contacts  map[string]*domain.Contact
	events    map[string]*domain.EventRegistration
	webinars  map[string]*domain.WebinarRegistration
	clubs     map[string]*domain.BusinessClubRegistration
	inquiries map[string]*domain.ServiceInquiry

	unavailable bool
}

func NewInMemory() *InMemory {
	return &InMemory{
		contacts:  make(map[string]*domain.Contact),
		events:    make(map[string]*domain.EventRegistration),
		webinars:  make(map[string]*domain.WebinarRegistration),
		clubs:     make(map[string]*domain.BusinessClubRegistration),
		inquiries: make(map[string]*domain.ServiceInquiry),
	}
}

// SetUnavailable toggles simulated store downtime.
func (s *InMemory) SetUnavailable(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = down
}

func (s *InMemory) checkAvailable() error {
	if s.unavailable {
		return fmt.Errorf("in-memory store marked down: %w", sentinel.ErrUnavailable)
	}
	return nil
}

func (s *InMemory) SaveContact(ctx context.Context, c *domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkAvailable(); err != nil {
		return err
	}
	if _, exists := s.contacts[c.ID]; exists {
		return fmt.Errorf("contact %s: %w", c.ID, sentinel.ErrConflict)
	}
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	cp := *c
	s.contacts[c.ID] = &cp
	return nil
}

func (s *InMemory) SaveEventRegistration(ctx context.Context, r *domain.EventRegistration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkAvailable(); err != nil {
		return err
	}
	if _, exists := s.events[r.ID]; exists {
		return fmt.Errorf("event registration %s: %w", r.ID, sentinel.ErrConflict)
	}
	now := time.Now()
	r.CreatedAt, r.UpdatedAt = now, now
	cp := *r
	s.events[r.ID] = &cp
	return nil
}

func (s *InMemory) SaveWebinarRegistration(ctx context.Context, r *domain.WebinarRegistration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkAvailable(); err != nil {
		return err
	}
	if _, exists := s.webinars[r.ID]; exists {
		return fmt.Errorf("webinar registration %s: %w", r.ID, sentinel.ErrConflict)
	}
	now := time.Now()
	r.CreatedAt, r.UpdatedAt = now, now
	cp := *r
	s.webinars[r.ID] = &cp
	return nil
}

func (s *InMemory) SaveBusinessClubRegistration(ctx context.Context, r *domain.BusinessClubRegistration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkAvailable(); err != nil {
		return err
	}
	if _, exists := s.clubs[r.ID]; exists {
		return fmt.Errorf("business club registration %s: %w", r.ID, sentinel.ErrConflict)
	}
	now := time.Now()
	r.CreatedAt, r.UpdatedAt = now, now
	cp := *r
	s.clubs[r.ID] = &cp
	return nil
}

func (s *InMemory) SaveServiceInquiry(ctx context.Context, inq *domain.ServiceInquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkAvailable(); err != nil {
		return err
	}
	if _, exists := s.inquiries[inq.ID]; exists {
		return fmt.Errorf("service inquiry %s: %w", inq.ID, sentinel.ErrConflict)
	}
	now := time.Now()
	inq.CreatedAt, inq.UpdatedAt = now, now
	cp := *inq
	s.inquiries[inq.ID] = &cp
	return nil
}

func (s *InMemory) FindEventByPaymentReference(ctx context.Context, reference string) (*domain.EventRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkAvailable(); err != nil {
		return nil, err
	}
	for _, r := range s.events {
		if r.PaymentReference != "" && r.PaymentReference == reference {
			cp := *r
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("payment reference %s: %w", reference, sentinel.ErrNotFound)
}

func (s *InMemory) FindWebinarByPaymentReference(ctx context.Context, reference string) (*domain.WebinarRegistration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkAvailable(); err != nil {
		return nil, err
	}
	for _, r := range s.webinars {
		if r.PaymentReference != "" && r.PaymentReference == reference {
			cp := *r
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("payment reference %s: %w", reference, sentinel.ErrNotFound)
}

func (s *InMemory) TransitionEventPayment(ctx context.Context, reference string, to domain.PaymentState) (*domain.EventRegistration, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkAvailable(); err != nil {
		return nil, false, err
	}
	for _, r := range s.events {
		if r.PaymentReference == "" || r.PaymentReference != reference {
			continue
		}
		switch {
		case r.PaymentState.CanTransitionTo(to):
			r.PaymentState = to
			r.UpdatedAt = time.Now()
			cp := *r
			return &cp, true, nil
		case r.PaymentState == to:
			cp := *r
			return &cp, false, nil
		default:
			return nil, false, fmt.Errorf("payment state %s cannot become %s: %w", r.PaymentState, to, sentinel.ErrConflict)
		}
	}
	return nil, false, fmt.Errorf("payment reference %s: %w", reference, sentinel.ErrNotFound)
}

func (s *InMemory) TransitionWebinarPayment(ctx context.Context, reference string, to domain.PaymentState) (*domain.WebinarRegistration, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkAvailable(); err != nil {
		return nil, false, err
	}
	for _, r := range s.webinars {
		if r.PaymentReference == "" || r.PaymentReference != reference {
			continue
		}
		switch {
		case r.PaymentState.CanTransitionTo(to):
			r.PaymentState = to
			r.UpdatedAt = time.Now()
			cp := *r
			return &cp, true, nil
		case r.PaymentState == to:
			cp := *r
			return &cp, false, nil
		default:
			return nil, false, fmt.Errorf("payment state %s cannot become %s: %w", r.PaymentState, to, sentinel.ErrConflict)
		}
	}
	return nil, false, fmt.Errorf("payment reference %s: %w", reference, sentinel.ErrNotFound)
}

// GetEventRegistration is a test helper for asserting persisted state.
func (s *InMemory) GetEventRegistration(id string) (*domain.EventRegistration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.events[id]
	if !ok {
		return nil, false
	}
	cp := *r
	return &cp, true
}

// GetBusinessClubRegistration is a test helper for asserting persisted state.
func (s *InMemory) GetBusinessClubRegistration(id string) (*domain.BusinessClubRegistration, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.clubs[id]
	if !ok {
		return nil, false
	}
	cp := *r
	return &cp, true
}
