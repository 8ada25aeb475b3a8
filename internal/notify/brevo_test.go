package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadgate/internal/platform/config"
)

func testBrevo(t *testing.T, handler http.HandlerFunc) *Brevo {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewBrevo(config.EmailConfig{
		BrevoAPIKey: "test-key",
		SenderName:  "Spa & Salon Africa",
		SenderEmail: "noreply@spaandsalonafrica.com",
		SMSSender:   "SpaSalon",
	}).WithBaseURL(srv.URL)
}

func TestSendEmail(t *testing.T) {
	var got brevoEmailRequest
	var gotPath, gotKey string

	b := testBrevo(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})

	err := b.SendEmail(context.Background(), Email{
		To:          []Recipient{{Email: "jane@example.com", Name: "Jane"}},
		Subject:     "Thank you for contacting Spa & Salon Africa",
		TextContent: "Thanks!",
	})
	require.NoError(t, err)

	assert.Equal(t, "/smtp/email", gotPath)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "noreply@spaandsalonafrica.com", got.Sender.Email)
	assert.Equal(t, []Recipient{{Email: "jane@example.com", Name: "Jane"}}, got.To)
	assert.Equal(t, "Thank you for contacting Spa & Salon Africa", got.Subject)
}

func TestSendEmailSurfacesAPIErrors(t *testing.T) {
	b := testBrevo(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"code":"unauthorized"}`, http.StatusUnauthorized)
	})

	err := b.SendEmail(context.Background(), Email{
		To:      []Recipient{{Email: "jane@example.com"}},
		Subject: "hello",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestSendSMSNormalizesRecipient(t *testing.T) {
	var got brevoSMSRequest

	b := testBrevo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactionalSMS/sms", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})

	err := b.SendSMS(context.Background(), SMS{Recipient: "0712345678", Message: "hello"})
	require.NoError(t, err)

	assert.Equal(t, "+254712345678", got.Recipient)
	assert.Equal(t, "SpaSalon", got.Sender)
	assert.Equal(t, "transactional", got.Type)
}

func TestSendSMSRejectsUnparseablePhone(t *testing.T) {
	b := testBrevo(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})

	err := b.SendSMS(context.Background(), SMS{Recipient: "12", Message: "hello"})
	require.Error(t, err)
}

func TestFormatKenyanPhone(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"+254712345678", "+254712345678", true},
		{"254712345678", "+254712345678", true},
		{"0712345678", "+254712345678", true},
		{"712345678", "+254712345678", true},
		{"7123456789", "+2547123456789", true},
		{"071-234-5678", "+254712345678", true},
		{"12", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := FormatKenyanPhone(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
