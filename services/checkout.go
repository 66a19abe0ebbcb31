package services

import (
	"context"
	"fmt"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// CheckoutService wraps the /checkout shipping-profile resource.
type CheckoutService struct {
	client *api.Client
}

func NewCheckoutService(client *api.Client) *CheckoutService {
	return &CheckoutService{client: client}
}

func (s *CheckoutService) Create(ctx context.Context, token string, req models.CreateCheckoutRequest) (*models.Checkout, error) {
	var checkout models.Checkout
	if err := s.client.Post(ctx, "/checkout", req, &checkout, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &checkout, nil
}

func (s *CheckoutService) ByID(ctx context.Context, token string, id int64) (*models.Checkout, error) {
	var checkout models.Checkout
	if err := s.client.Get(ctx, fmt.Sprintf("/checkout/%d", id), &checkout, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &checkout, nil
}

func (s *CheckoutService) ListMine(ctx context.Context, token string) ([]models.Checkout, error) {
	var checkouts []models.Checkout
	if err := s.client.Get(ctx, "/checkout", &checkouts, api.WithToken(token)); err != nil {
		return nil, err
	}
	return checkouts, nil
}

func (s *CheckoutService) Update(ctx context.Context, token string, id int64, req models.CreateCheckoutRequest) (*models.Checkout, error) {
	var checkout models.Checkout
	if err := s.client.Put(ctx, fmt.Sprintf("/checkout/%d", id), req, &checkout, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &checkout, nil
}

func (s *CheckoutService) Delete(ctx context.Context, token string, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/checkout/%d", id), nil, api.WithToken(token))
}
