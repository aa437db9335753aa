// Package payment wraps the Stripe payment-intent issuer. The intent's
// client secret goes back to the caller, who completes payment out of band.
package payment

import (
	"fmt"
	"math"

	"medibook/config"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// IntentService creates payment intents for booking amounts.
type IntentService interface {
	CreateIntent(amount float64, currency string) (string, error)
}

// StripeIntentService is the production implementation.
type StripeIntentService struct{}

// NewStripeIntentService creates an IntentService backed by Stripe.
func NewStripeIntentService() *StripeIntentService {
	return &StripeIntentService{}
}

// CreateIntent converts the amount to minor units and asks Stripe for a
// payment intent, returning its client secret.
func (s *StripeIntentService) CreateIntent(amount float64, currency string) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("invalid payment amount: %v", amount)
	}
	if currency == "" {
		currency = config.AppConfig.DefaultCurrency
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(amount * 100))),
		Currency: stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
