// Package payment abstracts the hosted payment page provider. Orchestrators
// initiate a payment and hand the customer the redirect URL; verification
// later asks the provider whether the reference was actually paid.
package payment

import "context"

// Initiation describes a charge to set up. Amount is in major currency units;
// the gateway converts to the provider's minor-unit representation.
type Initiation struct {
	SubmissionID string
	Email        string
	Description  string
	Amount       int64
	Currency     string
}

// Session is the provider's answer to an initiation.
type Session struct {
	// Reference identifies the payment at the provider and is stored on the
	// submission for later verification.
	Reference string
	// RedirectURL is the hosted payment page the customer completes.
	RedirectURL string
}

// Verification is the provider's view of a payment reference.
type Verification struct {
	Paid     bool
	Amount   int64 // major units
	Currency string
}

// Gateway is implemented by payment providers.
type Gateway interface {
	Initiate(ctx context.Context, in Initiation) (*Session, error)
	Verify(ctx context.Context, reference string) (*Verification, error)
}

// MinorUnits converts a major-unit amount to the provider's minor-unit
// representation (cents for KES and most currencies).
func MinorUnits(major int64) int64 {
	return major * 100
}
