package services

import (
	"context"
	"fmt"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// ReviewService wraps product reviews and the purchase-gated eligibility
// check.
type ReviewService struct {
	client *api.Client
}

func NewReviewService(client *api.Client) *ReviewService {
	return &ReviewService{client: client}
}

func (s *ReviewService) ByProduct(ctx context.Context, productID int64) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.client.Get(ctx, fmt.Sprintf("/review/list/%d", productID), &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CanReview asks whether the user bought the product and has not reviewed
// it yet.
func (s *ReviewService) CanReview(ctx context.Context, token string, productID int64) (bool, error) {
	var can bool
	if err := s.client.Get(ctx, fmt.Sprintf("/review/can/%d", productID), &can, api.WithToken(token)); err != nil {
		return false, err
	}
	return can, nil
}

func (s *ReviewService) Create(ctx context.Context, token string, req models.CreateReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := s.client.Post(ctx, "/review/create", req, &review, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &review, nil
}
