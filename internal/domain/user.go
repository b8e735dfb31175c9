package domain

import (
	"context"
	"time"
)

// User represents a domain user object
type User struct {
	ID        string
	GoogleID  string
	Email     string
	Name      string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new User instance
func NewUser(googleID, email string) *User {
	now := time.Now()
	return &User{
		GoogleID:  googleID,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the user
func (u *User) Validate() error {
	if u.GoogleID == "" {
		return NewInvalidInputError("google_id is required")
	}
	if u.Email == "" {
		return NewInvalidInputError("email is required")
	}
	return nil
}

// UserRepository defines the interface for user data persistence.
// Lookups return nil, nil when the user does not exist.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)
	GetUserByID(ctx context.Context, userID string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
}
