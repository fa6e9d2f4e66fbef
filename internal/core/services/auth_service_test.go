package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/wandermart/onboarding_backend/internal/apperrors"
	"github.com/wandermart/onboarding_backend/internal/core/domain"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
	"github.com/wandermart/onboarding_backend/internal/core/services"
	"github.com/wandermart/onboarding_backend/internal/platform/config"
	"github.com/wandermart/onboarding_backend/internal/utils"
)

type TokenServiceTestSuite struct {
	suite.Suite
	cfg              *config.Config
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.TokenSvcFacade
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.cfg = &config.Config{
		JWTSecret:                  "test-secret-key",
		JWTExpiryDuration:          time.Hour,
		JWTIssuer:                  "onboarding-backend-test",
		RefreshTokenExpiryDuration: 168 * time.Hour,
	}
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	employeeSvc := services.NewEmployeeService(suite.mockEmployeeRepo)
	suite.service = services.NewTokenService(suite.cfg, employeeSvc)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_ParsesBack() {
	ctx := context.Background()
	employee := &domain.Employee{ProfileID: "profile-1", EmployeeID: 7}

	token, expiresAt, err := suite.service.GenerateAccessToken(ctx, employee)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.True(expiresAt.After(time.Now()))

	claims, err := utils.ParseAndValidateJWT(token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal("profile-1", claims.Subject)
	suite.Equal(suite.cfg.JWTIssuer, claims.Issuer)
}

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_RejectsWrongSecret() {
	ctx := context.Background()
	employee := &domain.Employee{ProfileID: "profile-1"}

	token, _, err := suite.service.GenerateAccessToken(ctx, employee)
	suite.Require().NoError(err)

	_, err = utils.ParseAndValidateJWT(token, "some-other-secret")
	suite.Require().Error(err)
}

func (suite *TokenServiceTestSuite) TestGenerateRefreshToken_OpaqueWithExpiry() {
	ctx := context.Background()
	employee := &domain.Employee{ProfileID: "profile-1"}

	token, expiresAt, err := suite.service.GenerateRefreshToken(ctx, employee)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.True(expiresAt.After(time.Now().Add(167 * time.Hour)))

	other, _, err := suite.service.GenerateRefreshToken(ctx, employee)
	suite.Require().NoError(err)
	suite.NotEqual(token, other)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Success() {
	ctx := context.Background()
	rawToken := "opaque-refresh-token"
	hash := utils.HashRefreshToken(rawToken)
	expiry := time.Now().Add(time.Hour)
	employee := &domain.Employee{
		ProfileID:              "profile-1",
		RefreshTokenHash:       &hash,
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockEmployeeRepo.On("FindEmployeeByProfileID", ctx, "profile-1").Return(employee, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, "profile-1", rawToken)

	suite.Require().NoError(err)
	suite.Equal(employee, got)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Expired() {
	ctx := context.Background()
	rawToken := "opaque-refresh-token"
	hash := utils.HashRefreshToken(rawToken)
	expiry := time.Now().Add(-time.Minute)
	employee := &domain.Employee{
		ProfileID:              "profile-1",
		RefreshTokenHash:       &hash,
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockEmployeeRepo.On("FindEmployeeByProfileID", ctx, "profile-1").Return(employee, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, "profile-1", rawToken)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrRefreshTokenExpired)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_HashMismatch() {
	ctx := context.Background()
	hash := utils.HashRefreshToken("the-real-token")
	expiry := time.Now().Add(time.Hour)
	employee := &domain.Employee{
		ProfileID:              "profile-1",
		RefreshTokenHash:       &hash,
		RefreshTokenExpiryTime: &expiry,
	}

	suite.mockEmployeeRepo.On("FindEmployeeByProfileID", ctx, "profile-1").Return(employee, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, "profile-1", "a-forged-token")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_NoStoredToken() {
	ctx := context.Background()
	employee := &domain.Employee{ProfileID: "profile-1"}

	suite.mockEmployeeRepo.On("FindEmployeeByProfileID", ctx, "profile-1").Return(employee, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, "profile-1", "anything")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_UnknownProfile() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByProfileID", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, "ghost", "anything")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenService(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
