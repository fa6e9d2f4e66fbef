package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wandermart/onboarding_backend/internal/apperrors"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
	"github.com/wandermart/onboarding_backend/internal/platform/config"
	"github.com/wandermart/onboarding_backend/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// tokenService implements TokenSvcFacade for JWT and refresh tokens.
type tokenService struct {
	cfg         *config.Config
	employeeSvc portssvc.EmployeeSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, employeeSvc portssvc.EmployeeSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		employeeSvc: employeeSvc,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given employee.
func (s *tokenService) GenerateAccessToken(ctx context.Context, employee *domain.Employee) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(employee.ProfileID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new opaque refresh token for the given
// employee. The caller persists only its hash.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, employee *domain.Employee) (string, time.Time, error) {
	rawRefreshToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	return rawRefreshToken, expiryTime, nil
}

// ValidateAndParseRefreshToken validates a presented refresh token against
// the stored hash and expiry, returning the employee on success.
func (s *tokenService) ValidateAndParseRefreshToken(ctx context.Context, profileID string, refreshToken string) (*domain.Employee, error) {
	employee, err := s.employeeSvc.GetEmployeeByProfileID(ctx, profileID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to retrieve profile for refresh token validation: %w", err)
	}

	if employee.RefreshTokenHash == nil || employee.RefreshTokenExpiryTime == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*employee.RefreshTokenExpiryTime) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	if !utils.CompareRefreshTokenHash(refreshToken, *employee.RefreshTokenHash) {
		return nil, apperrors.ErrUnauthorized
	}

	return employee, nil
}

// --- GoogleOAuthHandlerSvcFacade implementation ---

type googleOAuthHandlerService struct {
	cfg          *config.Config
	employeeSvc  portssvc.EmployeeSvcFacade
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthHandlerService creates the Google sign-in flow handler.
func NewGoogleOAuthHandlerService(cfg *config.Config, employeeSvc portssvc.EmployeeSvcFacade) portssvc.GoogleOAuthHandlerSvcFacade {
	return &googleOAuthHandlerService{
		cfg:         cfg,
		employeeSvc: employeeSvc,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*googleOAuthHandlerService)(nil)

// GetLoginURL returns the consent-screen URL for the given CSRF state nonce.
func (s *googleOAuthHandlerService) GetLoginURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCodeAndGetEmployee exchanges the authorization code, validates the
// ID token and maps the verified identity to a profile.
func (s *googleOAuthHandlerService) ExchangeCodeAndGetEmployee(ctx context.Context, code string) (*domain.Employee, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("google token response did not include an id_token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	firstName, _ := payload.Claims["given_name"].(string)
	lastName, _ := payload.Claims["family_name"].(string)
	if email == "" {
		return nil, errors.New("google ID token missing email claim")
	}

	return s.employeeSvc.FindOrCreateGoogleEmployee(ctx, payload.Subject, email, firstName, lastName)
}
