package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"leadgate/pkg/platform/sentinel"
)

// StripeGateway runs payments through Stripe Checkout hosted pages.
type StripeGateway struct {
	api        *client.API
	successURL string
	cancelURL  string
}

// NewStripeGateway builds a gateway with its own API client. callbackBaseURL
// is the frontend origin the customer returns to after checkout.
func NewStripeGateway(secretKey, callbackBaseURL string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	base := strings.TrimRight(callbackBaseURL, "/")
	return &StripeGateway{
		api:        api,
		successURL: base + "/payment/callback?reference={CHECKOUT_SESSION_ID}",
		cancelURL:  base + "/payment/cancelled",
	}
}

func (g *StripeGateway) Initiate(ctx context.Context, in Initiation) (*Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(in.SubmissionID),
		CustomerEmail:     stripe.String(in.Email),
		SuccessURL:        stripe.String(g.successURL),
		CancelURL:         stripe.String(g.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(strings.ToLower(in.Currency)),
				UnitAmount: stripe.Int64(MinorUnits(in.Amount)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(in.Description),
				},
			},
		}},
		Metadata: map[string]string{"submission_id": in.SubmissionID},
	}
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", classifyStripe(err))
	}
	return &Session{Reference: sess.ID, RedirectURL: sess.URL}, nil
}

func (g *StripeGateway) Verify(ctx context.Context, reference string) (*Verification, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := g.api.CheckoutSessions.Get(reference, params)
	if err != nil {
		return nil, fmt.Errorf("retrieve checkout session: %w", classifyStripe(err))
	}
	return &Verification{
		Paid:     sess.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid,
		Amount:   sess.AmountTotal / 100,
		Currency: strings.ToUpper(string(sess.Currency)),
	}, nil
}

// classifyStripe folds provider errors into the sentinel taxonomy: a missing
// session is not-found, 5xx from Stripe is provider downtime.
func classifyStripe(err error) error {
	var sErr *stripe.Error
	if errors.As(err, &sErr) {
		if sErr.HTTPStatusCode == http.StatusNotFound {
			return fmt.Errorf("%s: %w", sErr.Code, sentinel.ErrNotFound)
		}
		if sErr.HTTPStatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("%s: %w", sErr.Code, sentinel.ErrUnavailable)
		}
	}
	return err
}
