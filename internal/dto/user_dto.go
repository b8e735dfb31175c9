package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// GoogleUserInfo holds user information obtained from Google.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// UserProfileResponse defines the structure for a user's profile information.
type UserProfileResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}

// TokenResponse represents the response containing access and refresh tokens.
// @Description Response body for authentication tokens
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenRequest represents the request body for refreshing a token.
// @Description Request body for refreshing JWT tokens
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}

// Pagination defines parameters for paginated requests.
type Pagination struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// PaginationInfo defines pagination details for responses.
type PaginationInfo struct {
	TotalItems  int64 `json:"total_items"`
	Limit       int   `json:"limit"`
	Offset      int   `json:"offset"`
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
}

// NewPaginationInfo computes page numbers for limit/offset pagination.
func NewPaginationInfo(total int64, limit, offset int) PaginationInfo {
	info := PaginationInfo{TotalItems: total, Limit: limit, Offset: offset}
	if limit > 0 {
		info.CurrentPage = offset/limit + 1
		info.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return info
}

// AuthenticatedUser represents the user data returned upon successful authentication
// by the AuthService, intended for internal use before constructing the final HTTP response.
type AuthenticatedUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}
