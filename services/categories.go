package services

import (
	"context"
	"fmt"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

type CategoryService struct {
	client *api.Client
}

func NewCategoryService(client *api.Client) *CategoryService {
	return &CategoryService{client: client}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.client.Get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) ByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := s.client.Get(ctx, fmt.Sprintf("/categories/%d", id), &category); err != nil {
		return nil, err
	}
	return &category, nil
}
