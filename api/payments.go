package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/refund"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"ticketing/entities"
)

// StripePaymentsClient issues refunds against the payment intent the
// order was charged with.
type StripePaymentsClient struct{}

func NewStripePaymentsClient(apiKey string) StripePaymentsClient {
	if apiKey == "" {
		panic("NewStripePaymentsClient: apiKey is empty")
	}

	stripe.Key = apiKey
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		HTTPClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   30 * time.Second,
		},
	}))

	return StripePaymentsClient{}
}

func (c StripePaymentsClient) RefundPayment(ctx context.Context, request entities.PaymentRefund) (string, error) {
	minorUnits, err := request.Amount.MinorUnits()
	if err != nil {
		return "", fmt.Errorf("refund for payment %s: %w", request.PaymentReference, err)
	}

	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(request.PaymentReference),
		Amount:        stripe.Int64(minorUnits),
		Reason:        stripe.String(string(stripe.RefundReasonRequestedByCustomer)),
	}
	params.Context = ctx
	params.SetIdempotencyKey(request.IdempotencyKey)
	params.AddMetadata("refund_reason", request.Reason)

	res, err := refund.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to refund payment %s: %w", request.PaymentReference, err)
	}

	return res.ID, nil
}
