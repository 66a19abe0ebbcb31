package services

import (
	"context"
	"fmt"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// UsersService wraps user lookups plus the backend's password change.
type UsersService struct {
	client *api.Client
}

func NewUsersService(client *api.Client) *UsersService {
	return &UsersService{client: client}
}

// DisplayName resolves a user id to their public display name, e.g. for
// review authorship.
func (s *UsersService) DisplayName(ctx context.Context, userID int64) (string, error) {
	var name string
	if err := s.client.Get(ctx, fmt.Sprintf("/users/name/%d", userID), &name); err != nil {
		return "", err
	}
	return name, nil
}

// ChangePassword hits the backend's email-only password change. The
// endpoint carries no possession proof (no reset token or code); the
// controller keeps it disabled unless explicitly switched on.
func (s *UsersService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	var resp struct {
		Message string `json:"message"`
	}
	return s.client.Post(ctx, "/users/change-password", req, &resp)
}
