package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/cinema_tickets/internal/ports"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

var _ ports.PaymentProcessor = (*StripePaymentProcessor)(nil)

var minorUnitsPerUnit = decimal.NewFromInt(100)

// createIntentFunc — сигнатура paymentintent.New, подменяется в тестах.
type createIntentFunc func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)

// StripePaymentProcessor списывает сумму через Stripe PaymentIntent.
// Сумма приходит в целых единицах валюты, в Stripe уходит в минорных (пенсы/центы).
type StripePaymentProcessor struct {
	currency      string
	paymentMethod string
	log           ports.Logger
	createIntent  createIntentFunc
}

// NewStripePaymentProcessor — secretKey выставляется глобально в stripe.Key, как принято в stripe-go.
func NewStripePaymentProcessor(secretKey, currency, paymentMethod string, log ports.Logger) *StripePaymentProcessor {
	stripe.Key = secretKey
	return &StripePaymentProcessor{
		currency:      strings.ToLower(currency),
		paymentMethod: paymentMethod,
		log:           log,
		createIntent:  paymentintent.New,
	}
}

func (p *StripePaymentProcessor) Charge(ctx context.Context, accountID int64, amount int) error {
	minor := decimal.NewFromInt(int64(amount)).Mul(minorUnitsPerUnit).IntPart()
	if minor <= 0 {
		// Stripe не принимает нулевые платежи
		p.log.Infof(ctx, "stripe charge skipped: zero amount account_id=%d", accountID)
		return nil
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(minor),
		Currency:    stripe.String(p.currency),
		Description: stripe.String(fmt.Sprintf("Cinema tickets for account %d", accountID)),
	}
	if p.paymentMethod != "" {
		params.PaymentMethod = stripe.String(p.paymentMethod)
		params.Confirm = stripe.Bool(true)
	}
	params.Context = ctx
	params.AddMetadata("account_id", accountKey(accountID))
	if rid := requestID(ctx); rid != "" {
		params.AddMetadata("request_id", rid)
		params.SetIdempotencyKey("charge-" + rid)
	}

	intent, err := p.createIntent(params)
	if err != nil {
		return fmt.Errorf("stripe payment intent: %w", err)
	}
	p.log.Infof(ctx, "stripe payment intent created id=%s status=%s amount_minor=%d", intent.ID, intent.Status, minor)
	return nil
}
