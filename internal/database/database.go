package database

import (
	"context"
	"fmt"
	"time"

	"dev-quizz/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver
)

// DriverName is the database/sql name go-ora registers itself under.
const DriverName = "oracle"

// NewSQLXOracleDB opens a connection pool and pings it.
func NewSQLXOracleDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open Oracle database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	logger.Get().Info("Successfully connected to Oracle database")
	return db, nil
}
