package handler

import (
	"dev-quizz/internal/domain"
	"dev-quizz/internal/logger"
	"dev-quizz/internal/middleware"
	"dev-quizz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService service.UserService
	gameService service.GameService
}

func NewUserHandler(userService service.UserService, gameService service.GameService) *UserHandler {
	return &UserHandler{userService: userService, gameService: gameService}
}

// GetMyProfile retrieves the profile of the currently authenticated user.
// @Summary Get My Profile
// @Description Retrieves the profile information of the logged-in user.
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/me [get]
func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	session := middleware.GetSession(c)
	if !session.IsAuthenticated() {
		logger.Get().Warn("Session not found in context for GetMyProfile", zap.String("path", c.Path()))
		return domain.NewUnauthorizedError("You must be logged in")
	}

	profile, err := h.userService.GetUserProfile(c.UserContext(), session.UserID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// GetMyGames lists the games of the currently authenticated user.
// @Summary Get My Games
// @Description Lists the logged-in user's games, most recent first.
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Param limit query int false "Page size (1-50)" default(10)
// @Param offset query int false "Number of games to skip" default(0)
// @Success 200 {object} dto.GameHistoryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/me/games [get]
func (h *UserHandler) GetMyGames(c *fiber.Ctx) error {
	limit, offset := middleware.GetPagination(c)
	history, err := h.gameService.ListUserGames(c.UserContext(), middleware.GetSession(c), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(history)
}
