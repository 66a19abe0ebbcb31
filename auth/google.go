// Package auth handles the Google sign-in handshake: the browser sends
// the identity provider's ID token, we validate it against our configured
// client id, then exchange it with the backend for a session token.
package auth

import (
	"context"
	"fmt"

	"google.golang.org/api/idtoken"

	"github.com/carlosbackdev/moto-gear-avenue/models"
)

// GoogleVerifier validates Google ID tokens for one OAuth client.
type GoogleVerifier struct {
	clientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

// Verify checks the token's signature and audience and returns the login
// payload to forward to the backend.
func (v *GoogleVerifier) Verify(ctx context.Context, rawToken string) (*models.GoogleLoginRequest, error) {
	if v.clientID == "" {
		return nil, fmt.Errorf("google sign-in is not configured")
	}

	payload, err := idtoken.Validate(ctx, rawToken, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google id token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, fmt.Errorf("google token carries no email")
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	return &models.GoogleLoginRequest{
		Email:         email,
		FullName:      name,
		FirebaseToken: rawToken,
		FirebaseUID:   payload.Subject,
		PhotoURL:      picture,
	}, nil
}
