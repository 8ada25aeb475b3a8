package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leadgate/internal/catalog"
	"leadgate/internal/domain"
)

func TestContactMessagesAddressing(t *testing.T) {
	c := &domain.Contact{
		ID:      "CT-1-AAAAAAAAA",
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Pricing question",
		Message: "How much\nis a consult?",
	}

	confirm := ContactConfirmation(c)
	assert.Equal(t, []Recipient{{Email: "jane@example.com", Name: "Jane"}}, confirm.To)
	assert.Contains(t, confirm.TextContent, "Thank you for reaching out, Jane!")

	notify := ContactNotification("admin@spaandsalonafrica.com", c)
	assert.Equal(t, []Recipient{{Email: "admin@spaandsalonafrica.com"}}, notify.To)
	assert.Equal(t, "New Contact Form Submission: Pricing question", notify.Subject)
	assert.Contains(t, notify.HTMLContent, "How much<br>is a consult?")
	assert.NotContains(t, notify.HTMLContent, "Phone:")
}

func TestEventConfirmationPaidBadge(t *testing.T) {
	ev, ok := catalog.Lookup(1)
	assert.True(t, ok)

	r := &domain.EventRegistration{
		ID: "REG-1-AAAAAAAAA", Name: "Jane", Email: "jane@example.com",
		PaymentState: domain.PaymentPending,
	}
	pending := EventConfirmation(r, ev)
	assert.NotContains(t, pending.TextContent, "Payment Confirmed")

	r.PaymentState = domain.PaymentPaid
	paid := EventConfirmation(r, ev)
	assert.Contains(t, paid.TextContent, "Payment Confirmed")
	assert.Contains(t, paid.Subject, ev.Title)
	assert.Contains(t, paid.TextContent, "REG-1-AAAAAAAAA")
}

func TestEventRegistrationSMSContent(t *testing.T) {
	ev, _ := catalog.Lookup(1)
	sms := EventRegistrationSMS(&domain.EventRegistration{
		ID: "REG-1-AAAAAAAAA", Name: "Jane", Phone: "0712345678",
	}, ev)

	assert.Equal(t, "0712345678", sms.Recipient)
	assert.Contains(t, sms.Message, `"Salon Profitability Bootcamp"`)
	assert.Contains(t, sms.Message, "REG-1-AAAAAAAAA")
}

func TestWebinarPaymentConfirmationAmount(t *testing.T) {
	msg := WebinarPaymentConfirmation(&domain.WebinarRegistration{
		ID: "WEB-1-AAAAAAAAA", Name: "Jane", Email: "jane@example.com",
	}, 2500)

	assert.Contains(t, msg.TextContent, "KES 2500")
	assert.Contains(t, msg.TextContent, "WEB-1-AAAAAAAAA")
}

func TestBusinessClubNotificationListsSelections(t *testing.T) {
	msg := BusinessClubNotification("admin@spaandsalonafrica.com", &domain.BusinessClubRegistration{
		ID:                "BC-1-AAAAAAAAA",
		FullName:          "Amara Okafor",
		Email:             "amara@example.com",
		BusinessName:      "Glow Spa",
		BusinessType:      "Spa",
		BusinessRealities: []string{"I struggle with pricing", "I want to grow my team"},
		FocusAreas:        []string{"Pricing & profitability"},
	})

	assert.Contains(t, msg.TextContent, "I struggle with pricing, I want to grow my team")
	assert.Contains(t, msg.Subject, "Glow Spa")
}

func TestServiceInquiryMessages(t *testing.T) {
	inq := &domain.ServiceInquiry{
		ID: "SVC-1-AAAAAAAAA", ServiceName: "Salon Audit",
		Name: "Jane", Email: "jane@example.com",
	}

	confirm := ServiceInquiryConfirmation(inq)
	assert.Contains(t, confirm.TextContent, "within 24 hours")

	notify := ServiceInquiryNotification("admin@spaandsalonafrica.com", inq)
	assert.Equal(t, "New Service Inquiry: Salon Audit", notify.Subject)
	assert.Contains(t, notify.TextContent, "SVC-1-AAAAAAAAA")
}
