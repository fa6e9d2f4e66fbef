package services

import (
	"context"
	"time"

	"github.com/wandermart/onboarding_backend/internal/core/domain"
)

// TokenSvcFacade issues and validates session tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the employee.
	GenerateAccessToken(ctx context.Context, employee *domain.Employee) (string, time.Time, error)

	// GenerateRefreshToken creates a new opaque refresh token and its expiry.
	// Only the SHA-256 hash is persisted.
	GenerateRefreshToken(ctx context.Context, employee *domain.Employee) (string, time.Time, error)

	// ValidateAndParseRefreshToken checks a presented refresh token against
	// the stored hash and expiry, returning the employee on success.
	ValidateAndParseRefreshToken(ctx context.Context, profileID, refreshToken string) (*domain.Employee, error)
}

// GoogleOAuthHandlerSvcFacade drives the Google sign-in web flow.
type GoogleOAuthHandlerSvcFacade interface {
	// GetLoginURL builds the consent-screen redirect URL for a state nonce.
	GetLoginURL(state string) string

	// ExchangeCodeAndGetEmployee exchanges the authorization code, validates
	// the ID token and maps the identity to a profile.
	ExchangeCodeAndGetEmployee(ctx context.Context, code string) (*domain.Employee, error)
}
