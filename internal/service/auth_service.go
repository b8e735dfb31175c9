package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"dev-quizz/internal/config"
	"dev-quizz/internal/domain"
	"dev-quizz/internal/dto"
	"dev-quizz/internal/logger"
	"dev-quizz/internal/util"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	TokenTypeAccess   = "access"
	TokenTypeRefresh  = "refresh"
)

var (
	ErrInvalidAuthState      = errors.New("invalid oauth state")
	ErrFailedToExchangeToken = errors.New("failed to exchange oauth token")
	ErrFailedToGetUserInfo   = errors.New("failed to get user info from google")
	ErrInvalidJWTToken       = errors.New("invalid jwt token")
	ErrNotRefreshToken       = errors.New("not a refresh token")
)

// AuthService signs users in with Google and issues the JWTs sessions are built from.
type AuthService interface {
	GetGoogleLoginURL(state string) string
	HandleGoogleCallback(ctx context.Context, code, receivedState, expectedState string) (accessToken string, refreshToken string, user *domain.User, err error)
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	CreateJWT(ctx context.Context, user *domain.User, ttl time.Duration, tokenType string) (string, error)
	RefreshToken(ctx context.Context, refreshTokenString string) (newAccessToken string, newRefreshToken string, err error)
}

type authServiceImpl struct {
	userRepo     domain.UserRepository
	oauth2Config *oauth2.Config
	appConfig    *config.Config
	userInfoURL  string
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(userRepo domain.UserRepository, appConfig *config.Config) (AuthService, error) {
	if appConfig == nil || appConfig.JWT.SecretKey == "" {
		return nil, errors.New("jwt secret key is not configured")
	}

	return &authServiceImpl{
		userRepo: userRepo,
		oauth2Config: &oauth2.Config{
			ClientID:     appConfig.GoogleOAuth.ClientID,
			ClientSecret: appConfig.GoogleOAuth.ClientSecret,
			RedirectURL:  appConfig.GoogleOAuth.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		appConfig:   appConfig,
		userInfoURL: googleUserInfoURL,
	}, nil
}

func (s *authServiceImpl) GetGoogleLoginURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *authServiceImpl) HandleGoogleCallback(ctx context.Context, code, receivedState, expectedState string) (string, string, *domain.User, error) {
	appLogger := logger.Get()
	if receivedState == "" || receivedState != expectedState {
		return "", "", nil, ErrInvalidAuthState
	}

	googleToken, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: %v", ErrFailedToExchangeToken, err)
	}

	userInfo, err := s.fetchUserInfo(ctx, googleToken)
	if err != nil {
		return "", "", nil, err
	}

	user, err := s.userRepo.GetUserByGoogleID(ctx, userInfo.ID)
	if err != nil {
		return "", "", nil, fmt.Errorf("error fetching user by google_id: %w", err)
	}

	if user == nil {
		user = domain.NewUser(userInfo.ID, userInfo.Email)
		user.ID = util.NewULID()
		user.Name = userInfo.Name
		user.Image = userInfo.Picture
		if err := s.userRepo.CreateUser(ctx, user); err != nil {
			return "", "", nil, fmt.Errorf("failed to create user: %w", err)
		}
		appLogger.Info("New user created via Google OAuth", zap.String("userID", user.ID), zap.String("email", user.Email))
	} else {
		// Google is the source of truth for profile fields
		user.Email = userInfo.Email
		user.Name = userInfo.Name
		user.Image = userInfo.Picture
		if err := s.userRepo.UpdateUser(ctx, user); err != nil {
			return "", "", nil, fmt.Errorf("failed to update user: %w", err)
		}
		appLogger.Info("User logged in via Google OAuth", zap.String("userID", user.ID), zap.String("email", user.Email))
	}

	accessToken, err := s.CreateJWT(ctx, user, s.appConfig.JWT.AccessTokenTTL, TokenTypeAccess)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to create access token: %w", err)
	}
	refreshToken, err := s.CreateJWT(ctx, user, s.appConfig.JWT.RefreshTokenTTL, TokenTypeRefresh)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

func (s *authServiceImpl) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*dto.GoogleUserInfo, error) {
	client := s.oauth2Config.Client(ctx, token)
	resp, err := client.Get(s.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToGetUserInfo, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFailedToGetUserInfo, resp.StatusCode)
	}

	var userInfo dto.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	if userInfo.ID == "" || userInfo.Email == "" {
		return nil, errors.New("google user info is incomplete")
	}
	return &userInfo, nil
}

func (s *authServiceImpl) CreateJWT(ctx context.Context, user *domain.User, ttl time.Duration, tokenType string) (string, error) {
	if user == nil || user.ID == "" {
		return "", errors.New("cannot create token without a user")
	}
	now := time.Now()
	claims := dto.AuthClaims{
		UserID:    user.ID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.appConfig.JWT.SecretKey))
}

func tokenSnippet(token string) string {
	return token[:min(len(token), 20)] + "..."
}

func (s *authServiceImpl) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	appLogger := logger.Get()
	token, err := jwt.ParseWithClaims(tokenString, &dto.AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.appConfig.JWT.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			appLogger.Warn("JWT token expired", zap.Error(err), zap.String("token_snippet", tokenSnippet(tokenString)))
		} else {
			appLogger.Warn("JWT validation failed", zap.Error(err), zap.String("token_snippet", tokenSnippet(tokenString)))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJWTToken, err)
	}

	if claims, ok := token.Claims.(*dto.AuthClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidJWTToken
}

func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	appLogger := logger.Get()
	claims, err := s.ValidateJWT(ctx, refreshTokenString)
	if err != nil {
		return "", "", fmt.Errorf("invalid refresh token: %w", err)
	}
	if claims.TokenType != TokenTypeRefresh {
		return "", "", ErrNotRefreshToken
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil || user == nil {
		appLogger.Error("User not found for refresh token", zap.String("userID", claims.UserID), zap.Error(err))
		return "", "", domain.NewNotFoundError(fmt.Sprintf("User %s not found for refresh token", claims.UserID))
	}

	newAccessToken, err := s.CreateJWT(ctx, user, s.appConfig.JWT.AccessTokenTTL, TokenTypeAccess)
	if err != nil {
		return "", "", fmt.Errorf("failed to create new access token: %w", err)
	}
	newRefreshToken, err := s.CreateJWT(ctx, user, s.appConfig.JWT.RefreshTokenTTL, TokenTypeRefresh)
	if err != nil {
		return "", "", fmt.Errorf("failed to create new refresh token: %w", err)
	}

	appLogger.Info("JWT token refreshed", zap.String("userID", user.ID))
	return newAccessToken, newRefreshToken, nil
}
