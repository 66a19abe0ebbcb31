package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// TrackingService wraps the courier-tracking integration. Update triggers
// a refresh against the courier APIs and is rate-limited server-side to a
// couple of calls per day.
type TrackingService struct {
	client *api.Client
}

func NewTrackingService(client *api.Client) *TrackingService {
	return &TrackingService{client: client}
}

func (s *TrackingService) Update(ctx context.Context, token string, orderID int64) (*models.Tracking, error) {
	var tracking models.Tracking
	path := fmt.Sprintf("/track/track-udpate/%d", orderID) // sic, backend route
	if err := s.client.Post(ctx, path, struct{}{}, &tracking, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &tracking, nil
}

func (s *TrackingService) ByOrderID(ctx context.Context, token string, orderID int64) (*models.Tracking, error) {
	var tracking models.Tracking
	path := fmt.Sprintf("/track/track-order/%d", orderID)
	if err := s.client.Get(ctx, path, &tracking, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &tracking, nil
}

func (s *TrackingService) ByTrackingNumber(ctx context.Context, token, number string) (*models.Tracking, error) {
	var tracking models.Tracking
	path := "/track/number/" + url.PathEscape(number)
	if err := s.client.Get(ctx, path, &tracking, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &tracking, nil
}

// UpdateAndGet refreshes the tracking and then reads the updated record.
// A failed refresh (usually the daily rate limit) is tolerated: the stale
// record still renders.
func (s *TrackingService) UpdateAndGet(ctx context.Context, token string, orderID int64) (*models.Tracking, error) {
	if _, err := s.Update(ctx, token, orderID); err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
	}
	return s.ByOrderID(ctx, token, orderID)
}
