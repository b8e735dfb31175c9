package handler

import (
	"dev-quizz/internal/domain"
	"dev-quizz/internal/dto"
	"dev-quizz/internal/logger"
	"dev-quizz/internal/middleware"
	"dev-quizz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type GameHandler struct {
	gameService service.GameService
}

func NewGameHandler(gameService service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// CreateGame generates a new game for the caller.
// @Summary Create a game
// @Description Generates questions for a topic and stores them as a new game. Blocks until the generator answers.
// @Tags game
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateGameRequest true "Quiz creation form"
// @Success 200 {object} dto.CreateGameResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /game [post]
func (h *GameHandler) CreateGame(c *fiber.Ctx) error {
	var req dto.CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	resp, err := h.gameService.CreateGame(c.UserContext(), middleware.GetSession(c), &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetGame returns a game with its questions.
// @Summary Get game status
// @Description Returns the game and the questions stored so far. Clients poll this until ready is true.
// @Tags game
// @Produce json
// @Param gameId query string true "Game ID"
// @Success 200 {object} dto.GameEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /game [get]
func (h *GameHandler) GetGame(c *fiber.Ctx) error {
	game, err := h.gameService.GetGame(c.UserContext(), middleware.GetGameID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.GameEnvelope{Game: *game})
}

// GetPlayView returns a game ready to be played.
// @Summary Play a game
// @Description Returns the questions of a game without their answers.
// @Tags game
// @Security ApiKeyAuth
// @Produce json
// @Param type path string true "Game type" Enums(mcq, open_ended)
// @Param gameId path string true "Game ID"
// @Success 200 {object} dto.PlayEnvelope
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /play/{type}/{gameId} [get]
func (h *GameHandler) GetPlayView(c *fiber.Ctx) error {
	view, err := h.gameService.GetPlayView(c.UserContext(), middleware.GetSession(c), c.Params("type"), middleware.GetGameID(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.PlayEnvelope{Game: *view})
}

// GetStatistics returns the results of a game.
// @Summary Game statistics
// @Description Returns per-question results, accuracy and tier of a game owned by the caller.
// @Tags game
// @Security ApiKeyAuth
// @Produce json
// @Param gameId path string true "Game ID"
// @Success 200 {object} dto.StatisticsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /game/{gameId}/statistics [get]
func (h *GameHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.gameService.GetStatistics(c.UserContext(), middleware.GetSession(c), middleware.GetGameID(c))
	if err != nil {
		return err
	}
	logger.Get().Debug("Statistics served",
		zap.String("gameID", stats.GameID),
		zap.Float64("accuracy", stats.Accuracy))
	return c.JSON(stats)
}
