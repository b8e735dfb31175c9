package service

import (
	"context"
	"time"

	"dev-quizz/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockGameRepository ---
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) CreateGame(ctx context.Context, game *domain.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) CreateQuestions(ctx context.Context, questions []*domain.Question) error {
	args := m.Called(ctx, questions)
	return args.Error(0)
}

func (m *MockGameRepository) GetGameByID(ctx context.Context, gameID string) (*domain.Game, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Game), args.Error(1)
}

func (m *MockGameRepository) GetQuestionKey(ctx context.Context, questionID string) (*domain.QuestionKey, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuestionKey), args.Error(1)
}

func (m *MockGameRepository) SaveUserAnswer(ctx context.Context, questionID, userAnswer string) error {
	args := m.Called(ctx, questionID, userAnswer)
	return args.Error(0)
}

func (m *MockGameRepository) SaveMCQResult(ctx context.Context, questionID string, isCorrect bool) error {
	args := m.Called(ctx, questionID, isCorrect)
	return args.Error(0)
}

func (m *MockGameRepository) SaveOpenEndedResult(ctx context.Context, questionID string, percentage int) error {
	args := m.Called(ctx, questionID, percentage)
	return args.Error(0)
}

func (m *MockGameRepository) ListGamesByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Game, int, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*domain.Game), args.Int(1), args.Error(2)
}

// --- MockUserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- MockTransactionManager ---
// Runs fn directly unless an error is configured.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}

// --- MockQuestionGenerator ---
type MockQuestionGenerator struct {
	mock.Mock
}

func (m *MockQuestionGenerator) Generate(ctx context.Context, req domain.GenerationRequest) ([]domain.GeneratedQuestion, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneratedQuestion), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
