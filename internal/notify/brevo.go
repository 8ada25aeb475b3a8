package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"leadgate/internal/platform/config"
)

const brevoBaseURL = "https://api.brevo.com/v3"

// Brevo sends transactional email and SMS through the Brevo REST API.
type Brevo struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	sender     Recipient
	smsSender  string
}

// NewBrevo builds a client from email configuration.
func NewBrevo(cfg config.EmailConfig) *Brevo {
	return &Brevo{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    brevoBaseURL,
		apiKey:     cfg.BrevoAPIKey,
		sender:     Recipient{Name: cfg.SenderName, Email: cfg.SenderEmail},
		smsSender:  cfg.SMSSender,
	}
}

// WithBaseURL points the client at a different API endpoint. Used by tests.
func (b *Brevo) WithBaseURL(url string) *Brevo {
	b.baseURL = url
	return b
}

type brevoEmailRequest struct {
	Sender      Recipient   `json:"sender"`
	To          []Recipient `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent,omitempty"`
	TextContent string      `json:"textContent,omitempty"`
}

func (b *Brevo) SendEmail(ctx context.Context, msg Email) error {
	return b.post(ctx, "/smtp/email", brevoEmailRequest{
		Sender:      b.sender,
		To:          msg.To,
		Subject:     msg.Subject,
		HTMLContent: msg.HTMLContent,
		TextContent: msg.TextContent,
	})
}

type brevoSMSRequest struct {
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Content   string `json:"content"`
	Type      string `json:"type"`
}

func (b *Brevo) SendSMS(ctx context.Context, msg SMS) error {
	recipient, ok := FormatKenyanPhone(msg.Recipient)
	if !ok {
		return fmt.Errorf("invalid phone number format: %q", msg.Recipient)
	}
	return b.post(ctx, "/transactionalSMS/sms", brevoSMSRequest{
		Sender:    b.smsSender,
		Recipient: recipient,
		Content:   msg.Message,
		Type:      "transactional",
	})
}

func (b *Brevo) post(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", b.apiKey)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call brevo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("brevo %s returned %d: %s", path, resp.StatusCode, snippet)
	}
	return nil
}
