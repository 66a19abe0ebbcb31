package services

import (
	"context"
	"fmt"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// OrderService wraps the /orders resource.
type OrderService struct {
	client *api.Client
}

func NewOrderService(client *api.Client) *OrderService {
	return &OrderService{client: client}
}

// Create places an order over a frozen shaded-cart snapshot. The total is
// client-computed with pricing.OrderTotal and persisted by the backend.
func (s *OrderService) Create(ctx context.Context, token string, req models.CreateOrderRequest) (*models.Order, error) {
	var order models.Order
	if err := s.client.Post(ctx, "/orders", req, &order, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) ByID(ctx context.Context, token string, id int64) (*models.Order, error) {
	var order models.Order
	if err := s.client.Get(ctx, fmt.Sprintf("/orders/%d", id), &order, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) ListMine(ctx context.Context, token string) ([]models.Order, error) {
	var orders []models.Order
	if err := s.client.Get(ctx, "/users/me/orders", &orders, api.WithToken(token)); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) ListMineByStatus(ctx context.Context, token string, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	path := fmt.Sprintf("/users/me/orders?status=%s", status)
	if err := s.client.Get(ctx, path, &orders, api.WithToken(token)); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, token string, id int64, req models.UpdateOrderStatusRequest) (*models.Order, error) {
	var order models.Order
	if err := s.client.Put(ctx, fmt.Sprintf("/orders/%d/status", id), req, &order, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) Cancel(ctx context.Context, token string, id int64) (*models.Order, error) {
	return s.UpdateStatus(ctx, token, id, models.UpdateOrderStatusRequest{Status: models.OrderStatusCancelled})
}

func (s *OrderService) Delete(ctx context.Context, token string, id int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/orders/%d", id), nil, api.WithToken(token))
}
