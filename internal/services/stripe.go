package services

import (
	"context"
	"errors"
	"log"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"
)

// Le produit est fixe : un canard, un prix.
const (
	duckProductName        = "Duck Model"
	duckProductDescription = "Custom 3D Duck Model"
	duckUnitAmount         = 2000 // 20.00 USD en centimes
	duckCurrency           = "usd"
)

// StripeCheckout crée des sessions Stripe Checkout hébergées.
// Pas idempotent : deux appels identiques donnent deux sessions distinctes.
type StripeCheckout struct {
	baseURL string
}

func NewStripeCheckout(baseURL string) *StripeCheckout {
	return &StripeCheckout{baseURL: baseURL}
}

// CreateSession crée la session pour un seul canard au prix fixe.
// Stripe fait la vraie validation de l'e-mail, on vérifie juste sa présence.
func (s *StripeCheckout) CreateSession(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", errors.New("e-mail client manquant")
	}

	params := &stripe.CheckoutSessionParams{
		Params:             stripe.Params{Context: ctx},
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(duckCurrency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(duckProductName),
						Description: stripe.String(duckProductDescription),
					},
					UnitAmount: stripe.Int64(duckUnitAmount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:    stripe.String(s.baseURL + "/success"),
		CancelURL:     stripe.String(s.baseURL + "/order"),
		CustomerEmail: stripe.String(email),
	}

	sess, err := session.New(params)
	if err != nil {
		log.Printf("❌ Erreur Stripe: %v", err)
		return "", err
	}

	return sess.ID, nil
}
