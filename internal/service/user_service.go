package service

import (
	"context"

	"dev-quizz/internal/domain"
	"dev-quizz/internal/dto"
)

// UserService defines the interface for user-related operations.
type UserService interface {
	GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error)
}

type userServiceImpl struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo domain.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// GetUserProfile retrieves a user's profile information.
func (s *userServiceImpl) GetUserProfile(ctx context.Context, userID string) (*dto.UserProfileResponse, error) {
	if userID == "" {
		return nil, domain.NewUnauthorizedError("You must be logged in")
	}
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError("User not found")
	}

	return &dto.UserProfileResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Image: user.Image,
	}, nil
}
