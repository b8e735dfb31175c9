package domain

import "context"

// GameRepository defines the interface for game and question persistence
type GameRepository interface {
	// CreateGame persists a game without its questions.
	CreateGame(ctx context.Context, game *Game) error

	// CreateQuestions persists questions in the given order.
	CreateQuestions(ctx context.Context, questions []*Question) error

	// GetGameByID returns the game with its questions in creation order, or nil when absent.
	GetGameByID(ctx context.Context, gameID string) (*Game, error)

	// GetQuestionKey returns the type and answer of a question, or nil when absent.
	GetQuestionKey(ctx context.Context, questionID string) (*QuestionKey, error)

	// SaveUserAnswer records the raw user answer of a question.
	SaveUserAnswer(ctx context.Context, questionID, userAnswer string) error

	// SaveMCQResult records whether an mcq answer was correct.
	SaveMCQResult(ctx context.Context, questionID string, isCorrect bool) error

	// SaveOpenEndedResult records the 0-30 score of an open-ended answer.
	SaveOpenEndedResult(ctx context.Context, questionID string, percentage int) error

	// ListGamesByUser returns a user's games, most recent first, without questions.
	ListGamesByUser(ctx context.Context, userID string, limit, offset int) ([]*Game, int, error)
}

// TransactionManager runs fn inside a transaction carried by the context.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
