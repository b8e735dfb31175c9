package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"dev-quizz/internal/domain"
	"dev-quizz/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	gameRowColumns     = []string{"ID", "USER_ID", "GAME_TYPE", "TOPIC", "AMOUNT", "TIME_STARTED", "TIME_ENDED"}
	questionRowColumns = []string{"ID", "GAME_ID", "POSITION", "QUESTION", "ANSWER", "QUESTION_TYPE", "OPTIONS",
		"USER_ANSWER", "IS_CORRECT", "PERCENTAGE_CORRECT", "CREATED_AT"}
)

func TestToDomainQuestion(t *testing.T) {
	m := &models.Question{
		ID:           "q1",
		GameID:       "g1",
		QuestionType: "mcq",
		Options:      models.StringSlice{"a", "b", "c", "d"},
		UserAnswer:   sql.NullString{String: "a", Valid: true},
		IsCorrect:    sql.NullInt64{Int64: 0, Valid: true},
	}
	q := toDomainQuestion(m)
	assert.Equal(t, domain.GameTypeMCQ, q.QuestionType)
	assert.Equal(t, []string{"a", "b", "c", "d"}, q.Options)
	require.NotNil(t, q.UserAnswer)
	assert.Equal(t, "a", *q.UserAnswer)
	require.NotNil(t, q.IsCorrect)
	assert.False(t, *q.IsCorrect)
	assert.Nil(t, q.PercentageCorrect)

	open := toDomainQuestion(&models.Question{ID: "q2", QuestionType: "open_ended", Options: models.StringSlice{}})
	assert.Nil(t, open.Options)
	assert.Nil(t, open.UserAnswer)
	assert.Nil(t, open.IsCorrect)
}

func TestFromDomainQuestion(t *testing.T) {
	correct := true
	score := 17
	m := fromDomainQuestion(&domain.Question{ID: "q1", IsCorrect: &correct, PercentageCorrect: &score}, 3)
	assert.Equal(t, 3, m.Position)
	assert.Equal(t, sql.NullInt64{Int64: 1, Valid: true}, m.IsCorrect)
	assert.Equal(t, sql.NullInt64{Int64: 17, Valid: true}, m.PercentageCorrect)
	assert.False(t, m.UserAnswer.Valid)
}

func TestSQLXGameRepository_CreateGameAndQuestionsInTransaction(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXGameRepository(db)
	tm := NewTransactionManagerAdapter(db)

	game := domain.NewGame("user-1", domain.GameTypeMCQ, "go", 2)
	questions := []*domain.Question{
		{Question: "q1?", Answer: "a1", QuestionType: domain.GameTypeMCQ, Options: []string{"x", "a1", "y", "z"}},
		{Question: "q2?", Answer: "a2", QuestionType: domain.GameTypeMCQ, Options: []string{"a2", "x", "y", "z"}},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO GAMES`)).
		WithArgs(sqlmock.AnyArg(), "user-1", "mcq", "go", 2, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO QUESTIONS`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 0, "q1?", "a1", "mcq", `["x","a1","y","z"]`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO QUESTIONS`)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 1, "q2?", "a2", "mcq", `["a2","x","y","z"]`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		if err := repo.CreateGame(ctx, game); err != nil {
			return err
		}
		for _, q := range questions {
			q.GameID = game.ID
		}
		return repo.CreateQuestions(ctx, questions)
	})

	require.NoError(t, err)
	assert.Len(t, game.ID, 26)
	assert.NotEmpty(t, questions[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXGameRepository(db)
	tm := NewTransactionManagerAdapter(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO QUESTIONS`)).
		WillReturnError(errors.New("ORA-01400"))
	mock.ExpectRollback()

	err := tm.WithTransaction(context.Background(), func(ctx context.Context) error {
		return repo.CreateQuestions(ctx, []*domain.Question{{GameID: "g1", Question: "q", Answer: "a", QuestionType: domain.GameTypeOpenEnded}})
	})

	assert.ErrorContains(t, err, "ORA-01400")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXGameRepository_CreateQuestions_OpenEndedHasNullOptions(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXGameRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO QUESTIONS`)).
		WithArgs(sqlmock.AnyArg(), "g1", 0, "q", "a", "open_ended", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateQuestions(context.Background(), []*domain.Question{
		{GameID: "g1", Question: "q", Answer: "a", QuestionType: domain.GameTypeOpenEnded},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXGameRepository_GetGameByID(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXGameRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM GAMES WHERE ID = :1`).
		WithArgs("g1").
		WillReturnRows(sqlmock.NewRows(gameRowColumns).AddRow("g1", "user-1", "mcq", "go", 2, now, nil))
	mock.ExpectQuery(`(?s)SELECT .+ FROM QUESTIONS WHERE GAME_ID = :1 ORDER BY POSITION`).
		WithArgs("g1").
		WillReturnRows(sqlmock.NewRows(questionRowColumns).
			AddRow("q1", "g1", 0, "first?", "a", "mcq", `["b","a","c","d"]`, "a", int64(1), nil, now).
			AddRow("q2", "g1", 1, "second?", "b", "mcq", `["b","a","c","d"]`, nil, nil, nil, now))

	game, err := repo.GetGameByID(context.Background(), "g1")
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, domain.GameTypeMCQ, game.GameType)
	assert.Nil(t, game.TimeEnded)
	require.Len(t, game.Questions, 2)
	assert.Equal(t, "q1", game.Questions[0].ID)
	assert.True(t, *game.Questions[0].IsCorrect)
	assert.Nil(t, game.Questions[1].UserAnswer)
	assert.True(t, game.IsReady())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXGameRepository_GetGameByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXGameRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM GAMES WHERE ID = :1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	game, err := repo.GetGameByID(context.Background(), "missing")
	assert.NoError(t, err)
	assert.Nil(t, game)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXGameRepository_GetQuestionKey(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXGameRepository(db)

	mock.ExpectQuery(`SELECT ID, QUESTION_TYPE, ANSWER FROM QUESTIONS WHERE ID = :1`).
		WithArgs("q1").
		WillReturnRows(sqlmock.NewRows([]string{"ID", "QUESTION_TYPE", "ANSWER"}).AddRow("q1", "open_ended", "Paris"))
	mock.ExpectQuery(`SELECT ID, QUESTION_TYPE, ANSWER FROM QUESTIONS WHERE ID = :1`).
		WithArgs("q2").
		WillReturnError(sql.ErrNoRows)

	key, err := repo.GetQuestionKey(context.Background(), "q1")
	require.NoError(t, err)
	assert.Equal(t, &domain.QuestionKey{ID: "q1", QuestionType: domain.GameTypeOpenEnded, Answer: "Paris"}, key)

	key, err = repo.GetQuestionKey(context.Background(), "q2")
	assert.NoError(t, err)
	assert.Nil(t, key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXGameRepository_SaveResults(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXGameRepository(db)
	ctx := context.Background()

	mock.ExpectExec(`UPDATE QUESTIONS SET USER_ANSWER = :1 WHERE ID = :2`).
		WithArgs(" Paris ", "q1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE QUESTIONS SET IS_CORRECT = :1 WHERE ID = :2`).
		WithArgs(1, "q1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE QUESTIONS SET PERCENTAGE_CORRECT = :1 WHERE ID = :2`).
		WithArgs(23, "q2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE QUESTIONS SET USER_ANSWER = :1 WHERE ID = :2`).
		WithArgs("x", "gone").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.SaveUserAnswer(ctx, "q1", " Paris "))
	assert.NoError(t, repo.SaveMCQResult(ctx, "q1", true))
	assert.NoError(t, repo.SaveOpenEndedResult(ctx, "q2", 23))

	err := repo.SaveUserAnswer(ctx, "gone", "x")
	assert.True(t, domain.HasCode(err, domain.CodeQuestionNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXGameRepository_ListGamesByUser(t *testing.T) {
	db, mock := setupTestDB(t)
	defer db.Close()
	repo := NewSQLXGameRepository(db)

	now := time.Now()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM GAMES WHERE USER_ID = :1`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(3))
	mock.ExpectQuery(`(?s)SELECT .+ FROM GAMES WHERE USER_ID = :1.+ORDER BY TIME_STARTED DESC OFFSET :2 ROWS FETCH NEXT :3 ROWS ONLY`).
		WithArgs("user-1", 2, 2).
		WillReturnRows(sqlmock.NewRows(gameRowColumns).
			AddRow("g3", "user-1", "open_ended", "rust", 5, now, nil))

	games, total, err := repo.ListGamesByUser(context.Background(), "user-1", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, games, 1)
	assert.Equal(t, "g3", games[0].ID)
	assert.Equal(t, domain.GameTypeOpenEnded, games[0].GameType)
	assert.NoError(t, mock.ExpectationsWereMet())
}
