package main

import (
	"context"
	"log"
	"time"

	"dev-quizz/internal/config"
	"dev-quizz/internal/database"
	"dev-quizz/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	applied, err := database.RunMigrations(ctx, db, database.EmbeddedMigrations(), database.MigrationsDir)
	if err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations complete", zap.Int("applied", applied))
}
