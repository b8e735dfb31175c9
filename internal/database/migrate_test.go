package database

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func testMigrations() fstest.MapFS {
	return fstest.MapFS{
		"migrations/000001_create_a.up.sql": {Data: []byte("CREATE TABLE A (X NUMBER);\n")},
		"migrations/000002_create_b.up.sql": {Data: []byte(
			"-- table b\nCREATE TABLE B (Y NUMBER);\n\nCREATE INDEX IDX_B ON B (Y);\n")},
	}
}

func TestSplitStatements(t *testing.T) {
	stmts := SplitStatements("-- header\nCREATE TABLE T (\n  A NUMBER\n);\n\nCREATE INDEX I ON T (A);\n   \n")
	require.Len(t, stmts, 2)
	assert.Equal(t, "CREATE TABLE T (\n  A NUMBER\n)", stmts[0])
	assert.Equal(t, "CREATE INDEX I ON T (A)", stmts[1])

	assert.Empty(t, SplitStatements("-- nothing\n\n"))
}

func TestRunMigrations_AppliesPendingOnly(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM USER_TABLES`).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1))
	mock.ExpectQuery(`SELECT VERSION FROM SCHEMA_MIGRATIONS`).
		WillReturnRows(sqlmock.NewRows([]string{"VERSION"}).AddRow(int64(1)))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE B (Y NUMBER)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX IDX_B ON B (Y)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO SCHEMA_MIGRATIONS (VERSION) VALUES (:1)")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := RunMigrations(context.Background(), db, testMigrations(), "migrations")
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_CreatesVersionTable(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	fsys := fstest.MapFS{
		"migrations/000001_create_a.up.sql": {Data: []byte("CREATE TABLE A (X NUMBER);")},
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM USER_TABLES`).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(0))
	mock.ExpectExec(`CREATE TABLE SCHEMA_MIGRATIONS`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT VERSION FROM SCHEMA_MIGRATIONS`).
		WillReturnRows(sqlmock.NewRows([]string{"VERSION"}))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE A (X NUMBER)")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO SCHEMA_MIGRATIONS`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := RunMigrations(context.Background(), db, fsys, "migrations")
	require.NoError(t, err)
	assert.Equal(t, 1, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_StopsOnFailure(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM USER_TABLES`).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(1))
	mock.ExpectQuery(`SELECT VERSION FROM SCHEMA_MIGRATIONS`).
		WillReturnRows(sqlmock.NewRows([]string{"VERSION"}))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE A (X NUMBER)")).
		WillReturnError(errors.New("ORA-00955: name is already used by an existing object"))

	applied, err := RunMigrations(context.Background(), db, testMigrations(), "migrations")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migration 1_create_a")
	assert.Equal(t, 0, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmbeddedMigrations_AreOrdered(t *testing.T) {
	stmts := 0
	for _, name := range []string{
		"migrations/000001_create_users.up.sql",
		"migrations/000002_create_games.up.sql",
		"migrations/000003_create_questions.up.sql",
	} {
		data, err := migrationFiles.ReadFile(name)
		require.NoError(t, err, name)
		stmts += len(SplitStatements(string(data)))
	}
	assert.Equal(t, 5, stmts)
}
