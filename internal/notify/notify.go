// Package notify delivers transactional email and SMS for submissions.
// Delivery is always best effort: the dispatcher runs senders in the
// background and a failed notification never fails the request that
// triggered it.
package notify

import "context"

// Recipient is a single email destination.
type Recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Email is one transactional message.
type Email struct {
	To          []Recipient
	Subject     string
	HTMLContent string
	TextContent string
}

// SMS is one transactional text message. Recipient must be in
// international format.
type SMS struct {
	Recipient string
	Message   string
}

// EmailSender delivers a single email.
type EmailSender interface {
	SendEmail(ctx context.Context, msg Email) error
}

// SMSSender delivers a single SMS.
type SMSSender interface {
	SendSMS(ctx context.Context, msg SMS) error
}
