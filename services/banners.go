package services

import (
	"context"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

type BannerService struct {
	client *api.Client
}

func NewBannerService(client *api.Client) *BannerService {
	return &BannerService{client: client}
}

func (s *BannerService) HomeBanners(ctx context.Context) ([]models.HomeBanner, error) {
	var banners []models.HomeBanner
	if err := s.client.Get(ctx, "/home-banners/get", &banners); err != nil {
		return nil, err
	}
	return banners, nil
}
