package service

import (
	"context"
	"errors"
	"testing"

	"dev-quizz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetUserProfile_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)

	expectedUser := &domain.User{ID: "user1", Name: "Test User", Email: "test@example.com", Image: "http://img"}
	mockUserRepo.On("GetUserByID", mock.Anything, "user1").Return(expectedUser, nil)

	profile, err := userService.GetUserProfile(context.Background(), "user1")

	require.NoError(t, err)
	assert.Equal(t, expectedUser.ID, profile.ID)
	assert.Equal(t, expectedUser.Name, profile.Name)
	assert.Equal(t, expectedUser.Image, profile.Image)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_GetUserProfile_NotFound(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)
	mockUserRepo.On("GetUserByID", mock.Anything, "unknownUser").Return(nil, nil)

	profile, err := userService.GetUserProfile(context.Background(), "unknownUser")

	assert.Nil(t, profile)
	assert.True(t, domain.HasCode(err, domain.CodeNotFound))
}

func TestUserService_GetUserProfile_RepoError(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	userService := NewUserService(mockUserRepo)
	repoErr := errors.New("connection reset")
	mockUserRepo.On("GetUserByID", mock.Anything, "user1").Return(nil, repoErr)

	_, err := userService.GetUserProfile(context.Background(), "user1")

	assert.True(t, domain.HasCode(err, domain.CodeInternal))
	assert.ErrorIs(t, err, repoErr)
}

func TestUserService_GetUserProfile_RequiresUser(t *testing.T) {
	userService := NewUserService(new(MockUserRepository))

	_, err := userService.GetUserProfile(context.Background(), "")

	assert.True(t, domain.HasCode(err, domain.CodeUnauthorized))
}
