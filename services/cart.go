package services

import (
	"context"
	"fmt"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// CartService wraps the live /cart resource. Item-level updates address
// lines by their backend id; delete-by-product exists for lines the client
// never saw persisted.
type CartService struct {
	client *api.Client
}

func NewCartService(client *api.Client) *CartService {
	return &CartService{client: client}
}

func (s *CartService) List(ctx context.Context, token string) ([]models.BackendCartItem, error) {
	var items []models.BackendCartItem
	if err := s.client.Get(ctx, "/cart", &items, api.WithToken(token)); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CartService) Add(ctx context.Context, token string, req models.AddToCartRequest) (*models.BackendCartItem, error) {
	var item models.BackendCartItem
	if err := s.client.Post(ctx, "/cart", req, &item, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, token string, itemID int64, quantity int) (*models.BackendCartItem, error) {
	var item models.BackendCartItem
	body := map[string]int{"quantity": quantity}
	if err := s.client.Put(ctx, fmt.Sprintf("/cart/%d", itemID), body, &item, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *CartService) Remove(ctx context.Context, token string, itemID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/cart/%d", itemID), nil, api.WithToken(token))
}

func (s *CartService) RemoveByProduct(ctx context.Context, token string, productID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/cart/product/%d", productID), nil, api.WithToken(token))
}

func (s *CartService) Clear(ctx context.Context, token string) error {
	return s.client.Delete(ctx, "/cart/clear", nil, api.WithToken(token))
}
