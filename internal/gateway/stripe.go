// Package gateway wraps the payment provider. The rest of the system only
// ever sees a charge intent's client secret; the charge lifecycle itself is
// the provider's problem.
package gateway

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// ChargeIntenter creates a charge intent for the given minor-unit amount and
// returns the client secret the caller completes payment with out-of-band.
type ChargeIntenter interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (clientSecret string, err error)
}

// MinorUnits converts a major-unit decimal price to the gateway's integer
// minor units, truncating. Exact decimal math here: 19.99 must become 1999,
// not 1998.
func MinorUnits(price decimal.Decimal) int64 {
	return price.Mul(decimal.NewFromInt(100)).IntPart()
}

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, nil)}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
