package handler

import (
	"dev-quizz/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Auth   *AuthHandler
	User   *UserHandler
	Game   *GameHandler
	Answer *AnswerHandler
	Health *HealthHandler
}

// RegisterRoutes mounts the API on app. auth guards every route that needs a session.
func RegisterRoutes(app *fiber.App, h Handlers, auth middleware.TokenValidator) {
	protected := middleware.Protected(auth)
	vm := middleware.NewValidationMiddleware()

	app.Get("/healthz", h.Health.Health)

	apiGroup := app.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.Get("/google/login", h.Auth.GoogleLogin)
	authGroup.Get("/google/callback", h.Auth.GoogleCallback)
	authGroup.Post("/refresh", h.Auth.RefreshToken)
	authGroup.Post("/logout", protected, h.Auth.Logout)

	userGroup := apiGroup.Group("/users", protected)
	userGroup.Get("/me", h.User.GetMyProfile)
	userGroup.Get("/me/games", vm.ValidatePagination(), h.User.GetMyGames)

	apiGroup.Post("/game", protected, h.Game.CreateGame)
	apiGroup.Get("/game", vm.ValidateGameID(), h.Game.GetGame)
	apiGroup.Get("/game/:gameId/statistics", protected, vm.ValidateGameID(), h.Game.GetStatistics)
	apiGroup.Get("/play/:type/:gameId", protected, vm.ValidateGameID(), h.Game.GetPlayView)

	apiGroup.Post("/answer", h.Answer.CheckAnswer)
}
