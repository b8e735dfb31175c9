package handler_test

import (
	"context"
	"errors"
	"time"

	"dev-quizz/internal/domain"
	"dev-quizz/internal/dto"
)

// --- Manual Mocks ---

// MockGameService
type MockGameService struct {
	CreateGameFunc    func(ctx context.Context, session *domain.Session, req *dto.CreateGameRequest) (*dto.CreateGameResponse, error)
	GetGameFunc       func(ctx context.Context, gameID string) (*dto.GameResponse, error)
	GetPlayViewFunc   func(ctx context.Context, session *domain.Session, gameType, gameID string) (*dto.PlayView, error)
	GetStatisticsFunc func(ctx context.Context, session *domain.Session, gameID string) (*dto.StatisticsResponse, error)
	ListUserGamesFunc func(ctx context.Context, session *domain.Session, limit, offset int) (*dto.GameHistoryResponse, error)
}

func (m *MockGameService) CreateGame(ctx context.Context, session *domain.Session, req *dto.CreateGameRequest) (*dto.CreateGameResponse, error) {
	if m.CreateGameFunc != nil {
		return m.CreateGameFunc(ctx, session, req)
	}
	panic("MockGameService.CreateGameFunc not implemented")
}

func (m *MockGameService) GetGame(ctx context.Context, gameID string) (*dto.GameResponse, error) {
	if m.GetGameFunc != nil {
		return m.GetGameFunc(ctx, gameID)
	}
	panic("MockGameService.GetGameFunc not implemented")
}

func (m *MockGameService) GetPlayView(ctx context.Context, session *domain.Session, gameType, gameID string) (*dto.PlayView, error) {
	if m.GetPlayViewFunc != nil {
		return m.GetPlayViewFunc(ctx, session, gameType, gameID)
	}
	panic("MockGameService.GetPlayViewFunc not implemented")
}

func (m *MockGameService) GetStatistics(ctx context.Context, session *domain.Session, gameID string) (*dto.StatisticsResponse, error) {
	if m.GetStatisticsFunc != nil {
		return m.GetStatisticsFunc(ctx, session, gameID)
	}
	panic("MockGameService.GetStatisticsFunc not implemented")
}

func (m *MockGameService) ListUserGames(ctx context.Context, session *domain.Session, limit, offset int) (*dto.GameHistoryResponse, error) {
	if m.ListUserGamesFunc != nil {
		return m.ListUserGamesFunc(ctx, session, limit, offset)
	}
	panic("MockGameService.ListUserGamesFunc not implemented")
}

// MockAnswerService
type MockAnswerService struct {
	EvaluateFunc func(ctx context.Context, questionID, userInput string) (*domain.EvaluationResult, error)
}

func (m *MockAnswerService) Evaluate(ctx context.Context, questionID, userInput string) (*domain.EvaluationResult, error) {
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, questionID, userInput)
	}
	panic("MockAnswerService.EvaluateFunc not implemented")
}

// MockUserService
type MockUserService struct {
	GetUserProfileFunc func(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
}

func (m *MockUserService) GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	if m.GetUserProfileFunc != nil {
		return m.GetUserProfileFunc(ctx, userID)
	}
	panic("MockUserService.GetUserProfileFunc not implemented")
}

// MockAuthService accepts the bearer token "good" as user "user-1" unless ValidateJWTFunc is set.
type MockAuthService struct {
	GetGoogleLoginURLFunc    func(state string) string
	HandleGoogleCallbackFunc func(ctx context.Context, code, receivedState, expectedState string) (string, string, *domain.User, error)
	ValidateJWTFunc          func(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
	RefreshTokenFunc         func(ctx context.Context, refreshTokenString string) (string, string, error)
}

func (m *MockAuthService) GetGoogleLoginURL(state string) string {
	if m.GetGoogleLoginURLFunc != nil {
		return m.GetGoogleLoginURLFunc(state)
	}
	return "https://accounts.google.com/o/oauth2/auth?state=" + state
}

func (m *MockAuthService) HandleGoogleCallback(ctx context.Context, code, receivedState, expectedState string) (string, string, *domain.User, error) {
	if m.HandleGoogleCallbackFunc != nil {
		return m.HandleGoogleCallbackFunc(ctx, code, receivedState, expectedState)
	}
	panic("MockAuthService.HandleGoogleCallbackFunc not implemented")
}

func (m *MockAuthService) ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error) {
	if m.ValidateJWTFunc != nil {
		return m.ValidateJWTFunc(ctx, tokenString)
	}
	if tokenString == "good" {
		return &dto.AuthClaims{UserID: "user-1", TokenType: "access"}, nil
	}
	return nil, errors.New("invalid jwt token")
}

func (m *MockAuthService) CreateJWT(ctx context.Context, user *domain.User, ttl time.Duration, tokenType string) (string, error) {
	panic("MockAuthService.CreateJWT not implemented")
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshTokenString string) (string, string, error) {
	if m.RefreshTokenFunc != nil {
		return m.RefreshTokenFunc(ctx, refreshTokenString)
	}
	panic("MockAuthService.RefreshTokenFunc not implemented")
}

// stubCache only answers Ping.
type stubCache struct {
	pingErr error
}

func (s stubCache) Get(ctx context.Context, key string) (string, error) {
	return "", domain.ErrCacheMiss
}

func (s stubCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return nil
}

func (s stubCache) Delete(ctx context.Context, key string) error { return nil }

func (s stubCache) Ping(ctx context.Context) error { return s.pingErr }
