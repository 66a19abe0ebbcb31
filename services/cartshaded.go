package services

import (
	"context"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// CartShadedService wraps the shaded-cart resource: an immutable snapshot
// of cart lines taken at order creation, so later cart edits never
// retroactively change a placed order.
type CartShadedService struct {
	client *api.Client
}

func NewCartShadedService(client *api.Client) *CartShadedService {
	return &CartShadedService{client: client}
}

func (s *CartShadedService) Add(ctx context.Context, token string, req models.AddToCartRequest) (*models.BackendCartItem, error) {
	var item models.BackendCartItem
	if err := s.client.Post(ctx, "/cart-shaded", req, &item, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CartShadedService) List(ctx context.Context, token string) ([]models.BackendCartItem, error) {
	var items []models.BackendCartItem
	if err := s.client.Get(ctx, "/cart-shaded", &items, api.WithToken(token)); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CartShadedService) Clear(ctx context.Context, token string) error {
	return s.client.Delete(ctx, "/cart-shaded", nil, api.WithToken(token))
}

// CloneFromCart copies the live cart lines into the shaded cart one by
// one and returns the frozen lines in the same order. A failure partway
// aborts; the order is never created over a half-frozen snapshot.
func (s *CartShadedService) CloneFromCart(ctx context.Context, token string, items []models.CartItem) ([]models.BackendCartItem, error) {
	shaded := make([]models.BackendCartItem, 0, len(items))
	for _, item := range items {
		frozen, err := s.Add(ctx, token, models.AddToCartRequest{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Variant:   item.Variant,
		})
		if err != nil {
			return nil, err
		}
		shaded = append(shaded, *frozen)
	}
	return shaded, nil
}
