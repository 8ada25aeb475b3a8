package service

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"leadgate/internal/audit"
	"leadgate/internal/domain"
	"leadgate/internal/intake"
	"leadgate/internal/intake/store"
	"leadgate/internal/notify"
	"leadgate/internal/payment"
	"leadgate/internal/platform/metrics"
	dErrors "leadgate/pkg/domain-errors"
)

type fakeGateway struct {
	mu         sync.Mutex
	failInit   bool
	paid       map[string]bool
	initiated  int
	lastAmount int64
}

func (g *fakeGateway) Initiate(_ context.Context, in payment.Initiation) (*payment.Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.failInit {
		return nil, errors.New("provider rejected the request")
	}
	g.initiated++
	g.lastAmount = payment.MinorUnits(in.Amount)
	return &payment.Session{
		Reference:   "sess_" + in.SubmissionID,
		RedirectURL: "https://pay.example/c/" + in.SubmissionID,
	}, nil
}

func (g *fakeGateway) Verify(_ context.Context, reference string) (*payment.Verification, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return &payment.Verification{Paid: g.paid[reference], Amount: 5000, Currency: "KES"}, nil
}

type fakeEmail struct {
	mu   sync.Mutex
	sent []notify.Email
	err  error
}

func (f *fakeEmail) SendEmail(_ context.Context, msg notify.Email) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeEmail) bySubject(fragment string) []notify.Email {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []notify.Email
	for _, m := range f.sent {
		if strings.Contains(m.Subject, fragment) {
			out = append(out, m)
		}
	}
	return out
}

type ServiceSuite struct {
	suite.Suite
	ctx        context.Context
	store      *store.InMemory
	gateway    *fakeGateway
	email      *fakeEmail
	dispatcher *notify.Dispatcher
	trail      *audit.MemorySink
	svc        *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = store.NewInMemory()
	s.gateway = &fakeGateway{paid: map[string]bool{}}
	s.email = &fakeEmail{}
	s.trail = audit.NewMemorySink()

	logger := slog.New(slog.DiscardHandler)
	m := metrics.New(prometheus.NewRegistry())
	s.dispatcher = notify.NewDispatcher(logger, m)
	s.svc = New(Deps{
		Store:         s.store,
		Gateway:       s.gateway,
		Email:         s.email,
		Dispatcher:    s.dispatcher,
		Trail:         audit.NewPublisher(s.trail, logger),
		Metrics:       m,
		Logger:        logger,
		OperatorEmail: "admin@spaandsalonafrica.com",
	})
}

func validWebinar() intake.WebinarRegistrationRequest {
	return intake.WebinarRegistrationRequest{
		Name:         "Jane",
		BusinessName: "Glow Spa",
		Phone:        "+254712345678",
		Email:        "jane@example.com",
	}
}

func validBusinessClub() intake.BusinessClubRegistrationRequest {
	return intake.BusinessClubRegistrationRequest{
		FullName:          "Amara Okafor",
		Phone:             "+254712345678",
		Email:             "amara@example.com",
		BusinessName:      "Glow Spa",
		BusinessType:      "Spa",
		BusinessLocation:  "Nairobi",
		YearsInBusiness:   "1 – 3 years",
		NumberOfEmployees: "2 – 3",
		BusinessRealities: []string{"I struggle with pricing"},
		Expectations:      "Grow revenue",
		FocusAreas:        []string{"Pricing & profitability"},
		HowDidYouHear:     "Instagram",
	}
}

func (s *ServiceSuite) TestContactAcknowledgesAndNotifies() {
	resp, err := s.svc.SubmitContact(s.ctx, intake.ContactRequest{
		Name: "Jane", Email: "jane@example.com", Subject: "Pricing", Message: "Hi",
	})
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal("Thank you for your message. We'll get back to you soon!", resp.Message)

	s.dispatcher.Wait()
	s.Len(s.email.bySubject("Thank you for contacting"), 1)
	s.Len(s.email.bySubject("New Contact Form Submission"), 1)
}

func (s *ServiceSuite) TestContactRejectsInvalidPayload() {
	_, err := s.svc.SubmitContact(s.ctx, intake.ContactRequest{
		Name: "Jane", Email: "not-an-email", Subject: "Pricing", Message: "Hi",
	})
	s.Require().Error(err)
	s.True(dErrors.Is(err, dErrors.CodeBadRequest))
	s.Contains(err.Error(), "Invalid email format")

	s.dispatcher.Wait()
	s.Empty(s.email.sent)
}

func (s *ServiceSuite) TestSubmissionSucceedsWithStoreDown() {
	s.store.SetUnavailable(true)

	resp, err := s.svc.SubmitContact(s.ctx, intake.ContactRequest{
		Name: "Jane", Email: "jane@example.com", Subject: "Pricing", Message: "Hi",
	})
	s.Require().NoError(err)
	s.True(resp.Success)

	club, err := s.svc.RegisterForBusinessClub(s.ctx, validBusinessClub())
	s.Require().NoError(err)
	s.True(club.Success)
	s.Regexp(`^BC-\d+-[A-Z0-9]{9}$`, club.RegistrationID)

	s.dispatcher.Wait()
	// Notifications still go out while the store is down.
	s.Len(s.email.bySubject("Business Club Application Received"), 1)
}

func (s *ServiceSuite) TestNotificationFailureDoesNotFailSubmission() {
	s.email.err = errors.New("smtp relay down")

	resp, err := s.svc.SubmitContact(s.ctx, intake.ContactRequest{
		Name: "Jane", Email: "jane@example.com", Subject: "Pricing", Message: "Hi",
	})
	s.Require().NoError(err)
	s.True(resp.Success)
	s.dispatcher.Wait()
}

func (s *ServiceSuite) TestPricedEventOpensPaymentPage() {
	resp, err := s.svc.RegisterForEvent(s.ctx, intake.EventRegistrationRequest{
		EventID: 1, Name: "Jane", Email: "jane@example.com",
	})
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal("Registration created! Please complete payment to confirm your spot.", resp.Message)
	s.Regexp(`^REG-\d+-[A-Z0-9]{9}$`, resp.RegistrationID)
	s.NotEmpty(resp.PaymentURL)
	s.NotEmpty(resp.PaymentReference)
	s.Equal(int64(500000), s.gateway.lastAmount)

	saved, err := s.store.FindEventByPaymentReference(s.ctx, resp.PaymentReference)
	s.Require().NoError(err)
	s.Equal(domain.PaymentPending, saved.PaymentState)
}

func (s *ServiceSuite) TestFreeEventSkipsPayment() {
	resp, err := s.svc.RegisterForEvent(s.ctx, intake.EventRegistrationRequest{
		EventID: 2, Name: "Jane", Email: "jane@example.com",
	})
	s.Require().NoError(err)
	s.Equal("Registration successful! You'll receive a confirmation email shortly.", resp.Message)
	s.Empty(resp.PaymentURL)
	s.Empty(resp.PaymentReference)
	s.Zero(s.gateway.initiated)

	saved, ok := s.store.GetEventRegistration(resp.RegistrationID)
	s.Require().True(ok)
	s.Equal(domain.PaymentFree, saved.PaymentState)
	s.Empty(saved.PaymentReference)
}

func (s *ServiceSuite) TestUnknownEventIsNotFound() {
	_, err := s.svc.RegisterForEvent(s.ctx, intake.EventRegistrationRequest{
		EventID: 99, Name: "Jane", Email: "jane@example.com",
	})
	s.Require().Error(err)
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestEventPaymentInitiationFailureDegrades() {
	s.gateway.failInit = true

	resp, err := s.svc.RegisterForEvent(s.ctx, intake.EventRegistrationRequest{
		EventID: 1, Name: "Jane", Email: "jane@example.com",
	})
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal("Registration created! Payment initialization failed. Please contact support.", resp.Message)
	s.Empty(resp.PaymentURL)

	// The record is kept pending, without a reference, so support can follow up.
	saved, ok := s.store.GetEventRegistration(resp.RegistrationID)
	s.Require().True(ok)
	s.Equal(domain.PaymentPending, saved.PaymentState)
	s.Empty(saved.PaymentReference)

	s.dispatcher.Wait()
	// No confirmation until a payment page exists.
	s.Empty(s.email.bySubject("Event Registration Confirmed"))
}

func (s *ServiceSuite) TestVerifyEventPaymentSettlesOnce() {
	reg, err := s.svc.RegisterForEvent(s.ctx, intake.EventRegistrationRequest{
		EventID: 1, Name: "Jane", Email: "jane@example.com",
	})
	s.Require().NoError(err)
	s.dispatcher.Wait()
	registrationEmails := len(s.email.bySubject("Event Registration Confirmed"))

	s.gateway.paid[reg.PaymentReference] = true

	resp, err := s.svc.VerifyEventPayment(s.ctx, intake.PaymentVerificationRequest{Reference: reg.PaymentReference})
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal("success", resp.Status)
	s.Equal(int64(5000), resp.Amount)

	saved, _ := s.store.FindEventByPaymentReference(s.ctx, reg.PaymentReference)
	s.Equal(domain.PaymentPaid, saved.PaymentState)

	s.dispatcher.Wait()
	afterFirst := len(s.email.bySubject("Event Registration Confirmed"))
	s.Equal(registrationEmails+1, afterFirst)

	// Verifying again succeeds without re-sending the confirmation.
	again, err := s.svc.VerifyEventPayment(s.ctx, intake.PaymentVerificationRequest{Reference: reg.PaymentReference})
	s.Require().NoError(err)
	s.True(again.Success)
	s.dispatcher.Wait()
	s.Equal(afterFirst, len(s.email.bySubject("Event Registration Confirmed")))
}

func (s *ServiceSuite) TestVerifyEventPaymentDeclined() {
	reg, err := s.svc.RegisterForEvent(s.ctx, intake.EventRegistrationRequest{
		EventID: 1, Name: "Jane", Email: "jane@example.com",
	})
	s.Require().NoError(err)

	resp, err := s.svc.VerifyEventPayment(s.ctx, intake.PaymentVerificationRequest{Reference: reg.PaymentReference})
	s.Require().NoError(err)
	s.False(resp.Success)
	s.Equal("failed", resp.Status)

	saved, _ := s.store.FindEventByPaymentReference(s.ctx, reg.PaymentReference)
	s.Equal(domain.PaymentPending, saved.PaymentState)
}

func (s *ServiceSuite) TestVerifyUnknownReferenceIsNotFound() {
	s.gateway.paid["sess_unknown"] = true

	_, err := s.svc.VerifyEventPayment(s.ctx, intake.PaymentVerificationRequest{Reference: "sess_unknown"})
	s.Require().Error(err)
	s.True(dErrors.Is(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestVerifyMissingReferenceIsBadRequest() {
	_, err := s.svc.VerifyEventPayment(s.ctx, intake.PaymentVerificationRequest{})
	s.Require().Error(err)
	s.True(dErrors.Is(err, dErrors.CodeBadRequest))
}

func (s *ServiceSuite) TestWebinarRegistrationIsAlwaysPriced() {
	resp, err := s.svc.RegisterForWebinar(s.ctx, validWebinar())
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal("Registration initiated! Please complete your payment to secure your spot.", resp.Message)
	s.Regexp(`^WEB-\d+-[A-Z0-9]{9}$`, resp.RegistrationID)
	s.Equal(int64(250000), s.gateway.lastAmount)

	saved, err := s.store.FindWebinarByPaymentReference(s.ctx, resp.PaymentReference)
	s.Require().NoError(err)
	s.Equal(domain.PaymentPending, saved.PaymentState)
}

func (s *ServiceSuite) TestWebinarToleratesPaymentInitiationFailure() {
	s.gateway.failInit = true

	resp, err := s.svc.RegisterForWebinar(s.ctx, validWebinar())
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal("Registration created! Payment initialization failed. Please contact support.", resp.Message)
	s.Empty(resp.PaymentURL)
}

func (s *ServiceSuite) TestVerifyWebinarPaymentConfirms() {
	reg, err := s.svc.RegisterForWebinar(s.ctx, validWebinar())
	s.Require().NoError(err)
	s.gateway.paid[reg.PaymentReference] = true

	resp, err := s.svc.VerifyWebinarPayment(s.ctx, intake.PaymentVerificationRequest{Reference: reg.PaymentReference})
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal("Payment verified successfully! Your webinar registration is confirmed.", resp.Message)

	s.dispatcher.Wait()
	s.Len(s.email.bySubject("Payment Confirmed - Your Webinar Spot Is Secured"), 1)
}

func (s *ServiceSuite) TestBusinessClubEndToEnd() {
	resp, err := s.svc.RegisterForBusinessClub(s.ctx, validBusinessClub())
	s.Require().NoError(err)
	s.True(resp.Success)
	s.Equal("Thank you for your application! We'll review your information and get back to you shortly.", resp.Message)
	s.Regexp(regexp.MustCompile(`^BC-\d+-[A-Z0-9]{9}$`), resp.RegistrationID)

	saved, ok := s.store.GetBusinessClubRegistration(resp.RegistrationID)
	s.Require().True(ok)
	s.Equal([]string{"I struggle with pricing"}, saved.BusinessRealities)

	s.dispatcher.Wait()
	s.Len(s.email.bySubject("New Business Club Application"), 1)
}

func (s *ServiceSuite) TestServiceInquiryAcknowledges() {
	resp, err := s.svc.SubmitServiceInquiry(s.ctx, intake.ServiceInquiryRequest{
		ServiceName: "Salon Audit", Name: "Jane", Email: "jane@example.com",
	})
	s.Require().NoError(err)
	s.Equal("Thank you for your interest! Our team will contact you within 24 hours.", resp.Message)

	s.dispatcher.Wait()
	s.Len(s.email.bySubject("New Service Inquiry"), 1)
}

func (s *ServiceSuite) TestTrailRecordsMilestones() {
	resp, err := s.svc.RegisterForEvent(s.ctx, intake.EventRegistrationRequest{
		EventID: 1, Name: "Jane", Email: "jane@example.com",
	})
	s.Require().NoError(err)

	events := s.trail.BySubmission(resp.RegistrationID)
	s.Require().NotEmpty(events)
	s.Equal(audit.ActionReceived, events[0].Action)

	var actions []string
	for _, e := range events {
		actions = append(actions, e.Action)
	}
	s.Contains(actions, audit.ActionPaymentInitiated)
	s.Contains(actions, audit.ActionPersisted)
}
