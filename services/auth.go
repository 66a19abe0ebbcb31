// Package services holds one typed client per backend resource family.
// Every method takes a context wired from the incoming request so that a
// user navigating away aborts the call, and a token for authenticated
// endpoints. No service keeps state; sessions live in the store package.
package services

import (
	"context"

	"github.com/carlosbackdev/moto-gear-avenue/api"
	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// AuthService wraps /auth and the "who am I" endpoint.
type AuthService struct {
	client *api.Client
}

func NewAuthService(client *api.Client) *AuthService {
	return &AuthService{client: client}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.client.Post(ctx, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.client.Post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GoogleLogin exchanges an identity-provider token for a backend session.
func (s *AuthService) GoogleLogin(ctx context.Context, req models.GoogleLoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := s.client.Post(ctx, "/auth/firebase", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, "/users/me", &user, api.WithToken(token)); err != nil {
		return nil, err
	}
	return &user, nil
}
