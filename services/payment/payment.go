package payment

import (
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// DepositIntent is the client-facing result of creating a deposit.
type DepositIntent struct {
	PaymentIntentID string `json:"paymentIntentId"`
	ClientSecret    string `json:"clientSecret"`
}

// CreateDepositIntent creates a Stripe payment intent for a card deposit.
// The intent id is stored on the appointment; settlement and webhooks are
// handled outside this service.
func CreateDepositIntent(amount float64, description string) (*DepositIntent, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("deposit amount must be positive")
	}
	pence := int64(math.Round(amount * 100))

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(pence),
		Currency:    stripe.String(string(stripe.CurrencyGBP)),
		Description: stripe.String(description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &DepositIntent{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
	}, nil
}
