package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	portssvc "github.com/wandermart/onboarding_backend/internal/core/ports/services"
	"github.com/wandermart/onboarding_backend/internal/middleware"
	"github.com/wandermart/onboarding_backend/internal/utils"
)

// GoogleOAuthHandler handles Google sign-in requests.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	authHandler        *AuthHandler
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade, authHandler *AuthHandler) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		authHandler:        authHandler,
	}
}

// ExchangeCodeRequest defines the JSON body for the exchange-code endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// LoginURLResponse carries the consent-screen URL and its CSRF state nonce.
type LoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// registerGoogleOAuthRoutes registers the Google sign-in routes on the public
// auth group.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(
		services.GoogleOAuthHandler,
		NewAuthHandler(services.Employee, services.TokenService),
	)
	googleRoutes := rg.Group("/google")
	{
		googleRoutes.GET("/login-url", h.LoginURL)
		googleRoutes.POST("/exchange-code", h.ExchangeCodeGoogle)
	}
}

// LoginURL godoc
// @Summary Get Google consent-screen URL
// @Description Returns the Google OAuth URL with a fresh CSRF state nonce. The client must echo the state back after the redirect.
// @Tags oauth
// @Produce json
// @Success 200 {object} LoginURLResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login-url [get]
func (h *GoogleOAuthHandler) LoginURL(c *gin.Context) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate state"})
		return
	}
	c.JSON(http.StatusOK, LoginURLResponse{
		URL:   h.googleOAuthService.GetLoginURL(state),
		State: state,
	})
}

// ExchangeCodeGoogle godoc
// @Summary Exchange Google authorization code for session tokens
// @Description Exchanges the authorization code, validates the ID token, maps the identity to a profile (creating a trainee profile on first sign-in) and returns session tokens.
// @Tags oauth
// @Accept json
// @Produce json
// @Param code body ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request payload: " + err.Error()})
		return
	}

	employee, err := h.googleOAuthService.ExchangeCodeAndGetEmployee(ctx, req.Code)
	if err != nil {
		logger.Error("Google code exchange failed", slog.String("error", err.Error()))
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid or expired authorization code"})
			return
		}
		respondWithError(c, err)
		return
	}

	resp, err := h.authHandler.issueSession(c, employee)
	if err != nil {
		logger.Error("Failed to issue session after Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	logger.Info("Google sign-in completed", slog.String("profile_id", employee.ProfileID))
	c.JSON(http.StatusOK, resp)
}
