package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dev-quizz/internal/domain"
	"dev-quizz/internal/repository/models"
	"dev-quizz/internal/util"
)

const (
	gameColumns = `ID, USER_ID, GAME_TYPE, TOPIC, AMOUNT, TIME_STARTED, TIME_ENDED`

	questionColumns = `ID, GAME_ID, POSITION, QUESTION, ANSWER, QUESTION_TYPE, OPTIONS,
		USER_ANSWER, IS_CORRECT, PERCENTAGE_CORRECT, CREATED_AT`
)

// sqlxGameRepository implements domain.GameRepository using sqlx.
// Every method runs on the transaction carried by ctx when there is one.
type sqlxGameRepository struct {
	db DBTX
}

// NewSQLXGameRepository creates a new instance of sqlxGameRepository.
func NewSQLXGameRepository(db DBTX) domain.GameRepository {
	return &sqlxGameRepository{db: db}
}

func toDomainGame(m *models.Game) *domain.Game {
	if m == nil {
		return nil
	}
	g := &domain.Game{
		ID:          m.ID,
		UserID:      m.UserID,
		GameType:    domain.GameType(m.GameType),
		Topic:       m.Topic,
		Amount:      m.Amount,
		TimeStarted: m.TimeStarted,
	}
	if m.TimeEnded.Valid {
		ended := m.TimeEnded.Time
		g.TimeEnded = &ended
	}
	return g
}

func toDomainQuestion(m *models.Question) *domain.Question {
	if m == nil {
		return nil
	}
	q := &domain.Question{
		ID:                m.ID,
		GameID:            m.GameID,
		Question:          m.Question,
		Answer:            m.Answer,
		QuestionType:      domain.GameType(m.QuestionType),
		UserAnswer:        util.NullStringToPtr(m.UserAnswer),
		PercentageCorrect: util.NullInt64ToIntPtr(m.PercentageCorrect),
		CreatedAt:         m.CreatedAt,
	}
	if len(m.Options) > 0 {
		q.Options = []string(m.Options)
	}
	if m.IsCorrect.Valid {
		correct := m.IsCorrect.Int64 == 1
		q.IsCorrect = &correct
	}
	return q
}

func fromDomainQuestion(q *domain.Question, position int) *models.Question {
	if q == nil {
		return nil
	}
	m := &models.Question{
		ID:           q.ID,
		GameID:       q.GameID,
		Position:     position,
		Question:     q.Question,
		Answer:       q.Answer,
		QuestionType: string(q.QuestionType),
		Options:      models.StringSlice(q.Options),
		CreatedAt:    q.CreatedAt,
	}
	if q.UserAnswer != nil {
		m.UserAnswer = sql.NullString{String: *q.UserAnswer, Valid: true}
	}
	if q.IsCorrect != nil {
		m.IsCorrect = sql.NullInt64{Int64: int64(util.BoolToNumber(*q.IsCorrect)), Valid: true}
	}
	if q.PercentageCorrect != nil {
		m.PercentageCorrect = sql.NullInt64{Int64: int64(*q.PercentageCorrect), Valid: true}
	}
	return m
}

// CreateGame inserts a game row. The ID is generated when empty.
func (r *sqlxGameRepository) CreateGame(ctx context.Context, game *domain.Game) error {
	if game == nil {
		return fmt.Errorf("cannot create nil game")
	}
	if game.ID == "" {
		game.ID = util.NewULID()
	}
	if game.TimeStarted.IsZero() {
		game.TimeStarted = time.Now()
	}

	query := `INSERT INTO GAMES (ID, USER_ID, GAME_TYPE, TOPIC, AMOUNT, TIME_STARTED)
		VALUES (:1, :2, :3, :4, :5, :6)`

	_, err := GetExecutor(ctx, r.db).ExecContext(ctx, query,
		game.ID,
		game.UserID,
		string(game.GameType),
		game.Topic,
		game.Amount,
		game.TimeStarted,
	)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	return nil
}

// CreateQuestions inserts questions, recording their slice order as POSITION.
func (r *sqlxGameRepository) CreateQuestions(ctx context.Context, questions []*domain.Question) error {
	query := `INSERT INTO QUESTIONS (ID, GAME_ID, POSITION, QUESTION, ANSWER, QUESTION_TYPE, OPTIONS, CREATED_AT)
		VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`

	exec := GetExecutor(ctx, r.db)
	now := time.Now()
	for i, q := range questions {
		if q.ID == "" {
			q.ID = util.NewULID()
		}
		if q.CreatedAt.IsZero() {
			q.CreatedAt = now
		}
		m := fromDomainQuestion(q, i)

		var options interface{}
		if len(m.Options) > 0 {
			v, err := m.Options.Value()
			if err != nil {
				return fmt.Errorf("failed to encode options of question %d: %w", i, err)
			}
			options = v
		}

		if _, err := exec.ExecContext(ctx, query,
			m.ID,
			m.GameID,
			m.Position,
			m.Question,
			m.Answer,
			m.QuestionType,
			options,
			m.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to create question %d: %w", i, err)
		}
	}
	return nil
}

// GetGameByID returns the game with its questions, or nil when absent.
func (r *sqlxGameRepository) GetGameByID(ctx context.Context, gameID string) (*domain.Game, error) {
	exec := GetExecutor(ctx, r.db)

	var modelGame models.Game
	query := `SELECT ` + gameColumns + ` FROM GAMES WHERE ID = :1`
	if err := exec.GetContext(ctx, &modelGame, query, gameID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get game by id %s: %w", gameID, err)
	}

	var modelQuestions []models.Question
	qQuery := `SELECT ` + questionColumns + ` FROM QUESTIONS WHERE GAME_ID = :1 ORDER BY POSITION, CREATED_AT`
	if err := exec.SelectContext(ctx, &modelQuestions, qQuery, gameID); err != nil {
		return nil, fmt.Errorf("failed to get questions of game %s: %w", gameID, err)
	}

	game := toDomainGame(&modelGame)
	game.Questions = make([]*domain.Question, 0, len(modelQuestions))
	for i := range modelQuestions {
		game.Questions = append(game.Questions, toDomainQuestion(&modelQuestions[i]))
	}
	return game, nil
}

// GetQuestionKey returns the type and answer of a question, or nil when absent.
func (r *sqlxGameRepository) GetQuestionKey(ctx context.Context, questionID string) (*domain.QuestionKey, error) {
	var key models.QuestionKey
	query := `SELECT ID, QUESTION_TYPE, ANSWER FROM QUESTIONS WHERE ID = :1`
	if err := GetExecutor(ctx, r.db).GetContext(ctx, &key, query, questionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get question %s: %w", questionID, err)
	}
	return &domain.QuestionKey{
		ID:           key.ID,
		QuestionType: domain.GameType(key.QuestionType),
		Answer:       key.Answer,
	}, nil
}

// SaveUserAnswer records the raw answer of a question.
func (r *sqlxGameRepository) SaveUserAnswer(ctx context.Context, questionID, userAnswer string) error {
	query := `UPDATE QUESTIONS SET USER_ANSWER = :1 WHERE ID = :2`
	return r.updateQuestion(ctx, "user answer", query, userAnswer, questionID)
}

// SaveMCQResult records whether an mcq answer was correct.
func (r *sqlxGameRepository) SaveMCQResult(ctx context.Context, questionID string, isCorrect bool) error {
	query := `UPDATE QUESTIONS SET IS_CORRECT = :1 WHERE ID = :2`
	return r.updateQuestion(ctx, "mcq result", query, util.BoolToNumber(isCorrect), questionID)
}

// SaveOpenEndedResult records the score of an open-ended answer.
func (r *sqlxGameRepository) SaveOpenEndedResult(ctx context.Context, questionID string, percentage int) error {
	query := `UPDATE QUESTIONS SET PERCENTAGE_CORRECT = :1 WHERE ID = :2`
	return r.updateQuestion(ctx, "open-ended result", query, percentage, questionID)
}

func (r *sqlxGameRepository) updateQuestion(ctx context.Context, what, query string, value interface{}, questionID string) error {
	result, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, value, questionID)
	if err != nil {
		return fmt.Errorf("failed to save %s for question %s: %w", what, questionID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return domain.NewQuestionNotFoundError(questionID)
	}
	return nil
}

// ListGamesByUser returns a page of a user's games, most recent first, and the total count.
func (r *sqlxGameRepository) ListGamesByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Game, int, error) {
	exec := GetExecutor(ctx, r.db)

	var total int
	countQuery := `SELECT COUNT(*) FROM GAMES WHERE USER_ID = :1`
	if err := exec.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, fmt.Errorf("failed to count games of user %s: %w", userID, err)
	}

	var modelGames []models.Game
	query := `SELECT ` + gameColumns + ` FROM GAMES WHERE USER_ID = :1
		ORDER BY TIME_STARTED DESC OFFSET :2 ROWS FETCH NEXT :3 ROWS ONLY`
	if err := exec.SelectContext(ctx, &modelGames, query, userID, offset, limit); err != nil {
		return nil, 0, fmt.Errorf("failed to list games of user %s: %w", userID, err)
	}

	games := make([]*domain.Game, 0, len(modelGames))
	for i := range modelGames {
		games = append(games, toDomainGame(&modelGames[i]))
	}
	return games, total, nil
}
