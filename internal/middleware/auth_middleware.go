package middleware

import (
	"context"
	"strings"

	"dev-quizz/internal/domain"
	"dev-quizz/internal/dto"
	"dev-quizz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	BearerSchema        = "Bearer "
	SessionKey          = "session" // Key for storing the domain.Session in fiber.Ctx locals

	accessTokenType = "access"
)

// TokenValidator is the part of the auth service the middleware needs.
type TokenValidator interface {
	ValidateJWT(ctx context.Context, tokenString string) (*dto.AuthClaims, error)
}

// Protected requires a valid access token and stores the caller's
// domain.Session in the request locals.
func Protected(validator TokenValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(AuthorizationHeader)
		if authHeader == "" {
			return domain.NewUnauthorizedError("Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			return domain.NewUnauthorizedError("Authorization scheme is not Bearer")
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, BearerSchema))
		if tokenString == "" {
			return domain.NewUnauthorizedError("Token is empty")
		}

		claims, err := validator.ValidateJWT(c.UserContext(), tokenString)
		if err != nil {
			logger.Get().Debug("Rejected bearer token", zap.String("path", c.Path()), zap.Error(err))
			return domain.NewUnauthorizedError("Invalid or expired token")
		}
		if claims.TokenType != accessTokenType {
			return domain.NewUnauthorizedError("Invalid token type: expected access token")
		}

		c.Locals(SessionKey, &domain.Session{
			UserID: claims.UserID,
			Cookie: c.Get(fiber.HeaderCookie),
		})
		return c.Next()
	}
}

// GetSession returns the session stored by Protected, or nil for anonymous requests.
func GetSession(c *fiber.Ctx) *domain.Session {
	session, _ := c.Locals(SessionKey).(*domain.Session)
	return session
}
