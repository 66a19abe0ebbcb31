package services

import (
	"context"

	"github.com/carlosbackdev/moto-gear-avenue/api"
)

// CreateCheckoutSessionRequest asks the backend for a hosted payment
// session. Success and cancel URLs are built from the storefront origin.
type CreateCheckoutSessionRequest struct {
	OrderID    int64  `json:"orderId"`
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
}

// CheckoutSessionResponse carries the gateway redirect.
type CheckoutSessionResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

// PaymentService wraps the hosted payment-session endpoint. Payment
// capture itself happens entirely on the gateway; the storefront only
// redirects the customer there.
type PaymentService struct {
	client *api.Client
}

func NewPaymentService(client *api.Client) *PaymentService {
	return &PaymentService{client: client}
}

func (s *PaymentService) CreateCheckoutSession(ctx context.Context, token string, req CreateCheckoutSessionRequest) (*CheckoutSessionResponse, error) {
	var resp CheckoutSessionResponse
	if err := s.client.Post(ctx, "/payments/create-checkout-session", req, &resp, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &resp, nil
}
