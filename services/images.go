package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// ImageService wraps the product-image endpoints and owns the one place
// that turns backend-relative image paths into full URLs.
type ImageService struct {
	client       *api.Client
	imageBaseURL string
}

func NewImageService(client *api.Client, imageBaseURL string) *ImageService {
	return &ImageService{client: client, imageBaseURL: strings.TrimSuffix(imageBaseURL, "/")}
}

func (s *ImageService) ProductImages(ctx context.Context, productID int64) ([]models.ImageProduct, error) {
	var images []models.ImageProduct
	path := fmt.Sprintf("/products-images/get-image/%d", productID)
	if err := s.client.Post(ctx, path, struct{}{}, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (s *ImageService) PrimaryImage(ctx context.Context, productID int64) (*models.ImageProduct, error) {
	var image models.ImageProduct
	path := fmt.Sprintf("/products-images/get-image/home/%d", productID)
	if err := s.client.Post(ctx, path, struct{}{}, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// FullURL resolves a possibly-relative image path against the configured
// asset host. Absolute URLs pass through untouched.
func (s *ImageService) FullURL(imageURL string) string {
	if imageURL == "" {
		return models.PlaceholderImage
	}
	if strings.HasPrefix(imageURL, "http://") || strings.HasPrefix(imageURL, "https://") {
		return imageURL
	}
	if !strings.HasPrefix(imageURL, "/") {
		imageURL = "/" + imageURL
	}
	return s.imageBaseURL + imageURL
}
