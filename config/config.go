package config

import (
	"fmt"
	"os"
)

// Config holds everything the storefront gateway reads from the
// environment. The backend owns all data; we only need to know where it
// lives and which Google client our sign-in buttons belong to.
type Config struct {
	Port           string
	APIBaseURL     string // e.g. https://backend.example.com/api
	ImageBaseURL   string // e.g. https://backend.example.com
	GoogleClientID string

	// PaymentsSimulated keeps the old "confirm payment" button working in
	// environments without a hosted gateway.
	PaymentsSimulated bool

	// AllowInsecurePasswordReset gates the backend's email-only password
	// change endpoint, which has no possession proof.
	AllowInsecurePasswordReset bool
}

// Load reads the configuration from environment variables. API_BASE_URL is
// the only hard requirement.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                       os.Getenv("PORT"),
		APIBaseURL:                 os.Getenv("API_BASE_URL"),
		ImageBaseURL:               os.Getenv("IMAGE_BASE_URL"),
		GoogleClientID:             os.Getenv("GOOGLE_CLIENT_ID"),
		PaymentsSimulated:          os.Getenv("PAYMENTS_SIMULATED") == "1",
		AllowInsecurePasswordReset: os.Getenv("ALLOW_INSECURE_PASSWORD_RESET") == "1",
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = cfg.APIBaseURL
	}

	return cfg, nil
}
