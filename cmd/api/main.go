// @title Dev Quizz API
// @version 1.0
// @description API for generating and playing AI quiz games on developer topics.
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "dev-quizz/cmd/api/docs"
	"dev-quizz/internal/adapter"
	"dev-quizz/internal/adapter/quizgen"
	"dev-quizz/internal/cache"
	"dev-quizz/internal/config"
	"dev-quizz/internal/database"
	"dev-quizz/internal/domain"
	"dev-quizz/internal/handler"
	"dev-quizz/internal/logger"
	"dev-quizz/internal/middleware"
	"dev-quizz/internal/repository"
	"dev-quizz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func newQuestionGenerator(cfg config.GeneratorConfig) (domain.QuestionGenerator, error) {
	switch cfg.Source {
	case "http":
		return quizgen.NewHTTPQuestionGenerator(cfg.APIURL, cfg.Timeout, cfg.ForwardCookies)
	case "llm":
		return quizgen.NewLLMQuestionGenerator(cfg.LLMServer, cfg.LLMModel, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unsupported generator source %q", cfg.Source)
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	gameRepository := repository.NewSQLXGameRepository(db)
	userRepository := repository.NewSQLXUserRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Redis is optional; without it every read goes to the database.
	var appCache domain.Cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, running without cache", zap.Error(err))
	} else {
		defer redisClient.Close()
		appCache = adapter.NewRedisCacheAdapter(redisClient)
		appLogger.Info("Successfully connected to Redis")
	}

	generator, err := newQuestionGenerator(cfg.Generator)
	if err != nil {
		appLogger.Fatal("Failed to create question generator", zap.Error(err))
	}
	appLogger.Info("Question generator initialized", zap.String("source", cfg.Generator.Source))

	gameService := service.NewGameService(gameRepository, txManager, generator, appCache, cfg)
	answerService := service.NewAnswerService(gameRepository, appCache, cfg)
	userService := service.NewUserService(userRepository)
	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	handlers := handler.Handlers{
		Auth:   handler.NewAuthHandler(authService, cfg),
		User:   handler.NewUserHandler(userService, gameService),
		Game:   handler.NewGameHandler(gameService),
		Answer: handler.NewAnswerHandler(answerService),
		Health: handler.NewHealthHandler(appCache),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.FrontendURL,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		MaxAge:           300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, handlers, authService)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
