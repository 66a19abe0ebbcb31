package services

import (
	"context"
	"fmt"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

type WishlistService struct {
	client *api.Client
}

func NewWishlistService(client *api.Client) *WishlistService {
	return &WishlistService{client: client}
}

func (s *WishlistService) List(ctx context.Context, token string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := s.client.Get(ctx, "/users/me/wishlist", &items, api.WithToken(token)); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Product.Normalize()
	}
	return items, nil
}

func (s *WishlistService) Add(ctx context.Context, token string, productID int64) (*models.WishlistItem, error) {
	var item models.WishlistItem
	body := map[string]int64{"productId": productID}
	if err := s.client.Post(ctx, "/users/me/wishlist", body, &item, api.WithToken(token)); err != nil {
		return nil, err
	}
	item.Product.Normalize()
	return &item, nil
}

func (s *WishlistService) Remove(ctx context.Context, token string, productID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/users/me/wishlist/%d", productID), nil, api.WithToken(token))
}
