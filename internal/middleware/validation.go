package middleware

import (
	"dev-quizz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	PaginationLimitKey  = "validated_limit"
	PaginationOffsetKey = "validated_offset"
	GameIDKey           = "validated_game_id"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidatePagination validates the limit and offset query parameters
func (vm *ValidationMiddleware) ValidatePagination() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, offset, errs := vm.validator.ParsePagination(c.Query("limit"), c.Query("offset"))
		if len(errs) > 0 {
			return errs // This will be handled by ErrorHandler middleware
		}

		c.Locals(PaginationLimitKey, limit)
		c.Locals(PaginationOffsetKey, offset)
		return c.Next()
	}
}

// ValidateGameID validates the gameId path parameter, falling back to the query string
func (vm *ValidationMiddleware) ValidateGameID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		gameID := c.Params("gameId")
		if gameID == "" {
			gameID = c.Query("gameId")
		}

		if err := vm.validator.ValidateGameID("gameId", gameID); err != nil {
			return err
		}

		c.Locals(GameIDKey, gameID)
		return c.Next()
	}
}

// GetPagination returns the values stored by ValidatePagination.
func GetPagination(c *fiber.Ctx) (limit, offset int) {
	limit, ok := c.Locals(PaginationLimitKey).(int)
	if !ok {
		limit = validation.DefaultPageLimit
	}
	offset, _ = c.Locals(PaginationOffsetKey).(int)
	return limit, offset
}

// GetGameID returns the id stored by ValidateGameID.
func GetGameID(c *fiber.Ctx) string {
	id, _ := c.Locals(GameIDKey).(string)
	return id
}
