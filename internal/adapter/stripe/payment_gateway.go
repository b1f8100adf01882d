package stripe

import (
	"context"
	"fmt"

	"github.com/sm8ta/bikes4u_marketplace/internal/core/ports"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type PaymentGateway struct {
	api    *client.API
	logger ports.LoggerPort
}

func NewPaymentGateway(secretKey string, logger ports.LoggerPort) *PaymentGateway {
	return newPaymentGateway(secretKey, nil, logger)
}

// newPaymentGateway uses backends instead of the default Stripe endpoints
// when it is non-nil.
func newPaymentGateway(secretKey string, backends *stripego.Backends, logger ports.LoggerPort) *PaymentGateway {
	return &PaymentGateway{
		api:    client.New(secretKey, backends),
		logger: logger,
	}
}

// CreatePaymentIntent opens a card payment intent. Failures are returned as
// is; there is no retry and no idempotency key.
func (g *PaymentGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripego.PaymentIntentParams{
		Amount:             stripego.Int64(amount),
		Currency:           stripego.String(currency),
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent: %w", err)
	}

	g.logger.Debug("Stripe payment intent created", map[string]interface{}{
		"intent_id": intent.ID,
		"amount":    amount,
	})

	return intent.ClientSecret, nil
}
