package payment

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

var ErrInvalidAmount = errors.New("amount must be positive")

// IntentCreator creates a charge intent with an external processor and
// returns the client-facing secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount float64) (string, error)
}

// StripeClient is a thin call-through to Stripe's payment-intent API.
// Failures propagate to the caller as-is; no retry and no idempotency key,
// so a retried request creates a new, distinct intent.
type StripeClient struct{}

func NewStripeClient(secretKey string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{}
}

// CreateIntent converts the major-unit amount to minor units (x100,
// truncated) and creates a card-payable USD intent.
func (s *StripeClient) CreateIntent(ctx context.Context, amount float64) (string, error) {
	if amount <= 0 {
		return "", ErrInvalidAmount
	}
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(minorUnits(amount)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	pi, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return pi.ClientSecret, nil
}

// minorUnits truncates a major-unit amount to integer cents.
func minorUnits(amount float64) int64 {
	return int64(amount * 100)
}
