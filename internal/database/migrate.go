package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"dev-quizz/internal/logger"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrationsDir is the directory of migrationFiles holding the SQL files.
const MigrationsDir = "migrations"

// Execer is the subset of *sqlx.DB the migrator needs.
type Execer interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// EmbeddedMigrations returns the migrations compiled into the binary.
func EmbeddedMigrations() fs.FS {
	return migrationFiles
}

// RunMigrations applies every up migration of dir in fsys that is not yet
// recorded in SCHEMA_MIGRATIONS, in version order. It returns the number applied.
func RunMigrations(ctx context.Context, db Execer, fsys fs.FS, dir string) (int, error) {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return 0, fmt.Errorf("could not open migrations: %w", err)
	}
	defer src.Close()

	if err := ensureVersionTable(ctx, db); err != nil {
		return 0, err
	}

	var appliedVersions []int64
	if err := db.SelectContext(ctx, &appliedVersions, `SELECT VERSION FROM SCHEMA_MIGRATIONS`); err != nil {
		return 0, fmt.Errorf("could not read applied migrations: %w", err)
	}
	applied := make(map[uint]bool, len(appliedVersions))
	for _, v := range appliedVersions {
		applied[uint(v)] = true
	}

	l := logger.Get()
	count := 0
	version, err := src.First()
	for err == nil {
		if !applied[version] {
			if applyErr := applyVersion(ctx, db, src, version); applyErr != nil {
				return count, applyErr
			}
			count++
		} else {
			l.Debug("Skipping applied migration", zap.Uint("version", version))
		}
		version, err = src.Next(version)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return count, fmt.Errorf("could not iterate migrations: %w", err)
	}

	l.Info("Migrations completed successfully", zap.Int("applied", count))
	return count, nil
}

func ensureVersionTable(ctx context.Context, db Execer) error {
	var exists int
	if err := db.GetContext(ctx, &exists,
		`SELECT COUNT(*) FROM USER_TABLES WHERE TABLE_NAME = 'SCHEMA_MIGRATIONS'`); err != nil {
		return fmt.Errorf("could not check migrations table: %w", err)
	}
	if exists > 0 {
		return nil
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE SCHEMA_MIGRATIONS (
		VERSION NUMBER(19) NOT NULL PRIMARY KEY,
		APPLIED_AT TIMESTAMP DEFAULT SYSTIMESTAMP NOT NULL
	)`); err != nil {
		return fmt.Errorf("could not create migrations table: %w", err)
	}
	return nil
}

func applyVersion(ctx context.Context, db Execer, src source.Driver, version uint) error {
	r, identifier, err := src.ReadUp(version)
	if err != nil {
		return fmt.Errorf("could not read migration %d: %w", version, err)
	}
	content, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		return fmt.Errorf("could not read migration %d: %w", version, err)
	}

	for i, stmt := range SplitStatements(string(content)) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not execute statement %d of migration %d_%s: %w", i+1, version, identifier, err)
		}
	}

	if _, err := db.ExecContext(ctx, `INSERT INTO SCHEMA_MIGRATIONS (VERSION) VALUES (:1)`, int64(version)); err != nil {
		return fmt.Errorf("could not record migration %d: %w", version, err)
	}

	logger.Get().Info("Executed migration", zap.Uint("version", version), zap.String("name", identifier))
	return nil
}

// SplitStatements splits a migration file into statements without their
// trailing semicolons, which Oracle rejects. Line comments are dropped.
func SplitStatements(content string) []string {
	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	var stmts []string
	for _, part := range strings.Split(b.String(), ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
