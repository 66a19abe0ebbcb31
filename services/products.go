package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// ProductService wraps the /products resource. Every product leaving this
// service is normalized so view code only ever sees the derived aliases.
type ProductService struct {
	client *api.Client
}

func NewProductService(client *api.Client) *ProductService {
	return &ProductService{client: client}
}

// List returns one page of the catalog.
func (s *ProductService) List(ctx context.Context, page, size int) ([]models.Product, error) {
	if size <= 0 {
		size = 20
	}
	var resp models.Page[models.Product]
	path := fmt.Sprintf("/products/page?page=%d&size=%d", page, size)
	if err := s.client.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return normalizeAll(resp.Content), nil
}

func (s *ProductService) ByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := s.client.Get(ctx, fmt.Sprintf("/products/%d", id), &product); err != nil {
		return nil, err
	}
	product.Normalize()
	return &product, nil
}

func (s *ProductService) ByCategory(ctx context.Context, categoryID int64, page int) ([]models.Product, error) {
	var products []models.Product
	path := fmt.Sprintf("/products/category/%d?page=%d", categoryID, page)
	if err := s.client.Get(ctx, path, &products); err != nil {
		return nil, err
	}
	return normalizeAll(products), nil
}

// Search runs a keyword search over the catalog.
func (s *ProductService) Search(ctx context.Context, keyword string, page int) ([]models.Product, error) {
	var resp models.Page[models.Product]
	path := fmt.Sprintf("/products/search?keyword=%s&page=%d", url.QueryEscape(keyword), page)
	if err := s.client.Get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return normalizeAll(resp.Content), nil
}

func normalizeAll(products []models.Product) []models.Product {
	for i := range products {
		products[i].Normalize()
	}
	return products
}
