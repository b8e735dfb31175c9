package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"dev-quizz/internal/config"
	"dev-quizz/internal/domain"
	"dev-quizz/internal/dto"
	"dev-quizz/internal/logger"
	"dev-quizz/internal/middleware"
	"dev-quizz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const oauthStateCookieName = "oauthstate"

type AuthHandler struct {
	authService service.AuthService
	appConfig   *config.Config
}

func NewAuthHandler(authService service.AuthService, appConfig *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		appConfig:   appConfig,
	}
}

func (h *AuthHandler) setStateCookie(c *fiber.Ctx, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     oauthStateCookieName,
		Value:    value,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   c.Secure(),
		SameSite: "Lax",
		Path:     "/",
	})
}

// GoogleLogin initiates the Google OAuth2 login flow.
// @Summary Initiate Google Login
// @Description Redirects the user to Google's OAuth2 consent page.
// @Tags auth
// @Success 307 {string} string "Redirects to Google"
// @Router /auth/google/login [get]
func (h *AuthHandler) GoogleLogin(c *fiber.Ctx) error {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return domain.NewInternalError("Could not generate state for OAuth flow", err)
	}
	state := base64.URLEncoding.EncodeToString(b)
	h.setStateCookie(c, state, time.Now().Add(10*time.Minute))

	return c.Redirect(h.authService.GetGoogleLoginURL(state), fiber.StatusTemporaryRedirect)
}

// GoogleCallback handles the callback from Google OAuth2.
// @Summary Google OAuth2 Callback
// @Description Handles user authentication after Google login, issues JWTs.
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code from Google"
// @Param state query string true "State string for CSRF protection"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid state or code"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *fiber.Ctx) error {
	appLogger := logger.Get()
	code := c.Query("code")
	receivedState := c.Query("state")
	expectedState := c.Cookies(oauthStateCookieName)

	h.setStateCookie(c, "", time.Now().Add(-time.Hour))

	if code == "" {
		return domain.NewInvalidInputError("Authorization code is missing")
	}
	if receivedState == "" || expectedState == "" || receivedState != expectedState {
		appLogger.Warn("OAuth state mismatch", zap.Bool("cookie_present", expectedState != ""))
		return domain.NewInvalidInputError("OAuth state mismatch or missing")
	}

	accessToken, refreshToken, user, err := h.authService.HandleGoogleCallback(c.UserContext(), code, receivedState, expectedState)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAuthState) || errors.Is(err, service.ErrFailedToExchangeToken) {
			appLogger.Warn("Google callback rejected", zap.Error(err))
			return domain.NewInvalidInputError("Google login could not be completed")
		}
		return domain.NewInternalError("Error processing Google login", err)
	}

	appLogger.Info("Google OAuth callback successful, tokens issued", zap.String("userID", user.ID))
	return c.JSON(dto.TokenResponse{AccessToken: accessToken, RefreshToken: refreshToken})
}

// RefreshToken generates new access and refresh tokens using a valid refresh token.
// @Summary Refresh JWT tokens
// @Description Provides a new access token and refresh token if the provided refresh token is valid.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse "Refresh token missing or invalid format"
// @Failure 401 {object} dto.ErrorResponse "Refresh token invalid or expired"
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req dto.RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if req.RefreshToken == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("refresh_token")}
	}

	newAccessToken, newRefreshToken, err := h.authService.RefreshToken(c.UserContext(), req.RefreshToken)
	if err != nil {
		logger.Get().Warn("AuthService failed to refresh token", zap.Error(err))
		return domain.NewUnauthorizedError("Refresh token is invalid or expired")
	}

	return c.JSON(dto.TokenResponse{AccessToken: newAccessToken, RefreshToken: newRefreshToken})
}

// Logout handles user logout.
// @Summary Logout user
// @Description JWTs are stateless; the client discards its tokens.
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if session := middleware.GetSession(c); session.IsAuthenticated() {
		logger.Get().Info("User logout request", zap.String("userID", session.UserID))
	}
	return c.JSON(dto.MessageResponse{Message: "Logout successful. Please discard your tokens."})
}
