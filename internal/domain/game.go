package domain

import (
	"strings"
	"time"
)

// GameType identifies how the questions of a game are answered and scored.
type GameType string

const (
	GameTypeMCQ       GameType = "mcq"
	GameTypeOpenEnded GameType = "open_ended"
)

// ParseGameType returns the GameType for s, or false when s is not a known type.
func ParseGameType(s string) (GameType, bool) {
	switch GameType(s) {
	case GameTypeMCQ, GameTypeOpenEnded:
		return GameType(s), true
	default:
		return "", false
	}
}

// MaxOpenEndedScore is the point value a perfect open-ended answer is scaled to.
const MaxOpenEndedScore = 30

// Game is one quiz request: a topic, a type and the questions generated for it.
type Game struct {
	ID          string
	UserID      string
	GameType    GameType
	Topic       string
	Amount      int
	TimeStarted time.Time
	TimeEnded   *time.Time
	Questions   []*Question
}

// NewGame creates a Game without questions. The ID is assigned by the caller.
func NewGame(userID string, gameType GameType, topic string, amount int) *Game {
	return &Game{
		UserID:      userID,
		GameType:    gameType,
		Topic:       strings.TrimSpace(topic),
		Amount:      amount,
		TimeStarted: time.Now(),
	}
}

// Validate validates the game
func (g *Game) Validate() error {
	if g.UserID == "" {
		return NewInvalidInputError("user ID is required")
	}
	if _, ok := ParseGameType(string(g.GameType)); !ok {
		return NewInvalidInputError("game type must be mcq or open_ended")
	}
	if g.Topic == "" {
		return NewInvalidInputError("topic is required")
	}
	if g.Amount <= 0 {
		return NewInvalidInputError("amount must be positive")
	}
	return nil
}

// IsReady reports whether at least Amount questions have been stored.
func (g *Game) IsReady() bool {
	return g.Amount > 0 && len(g.Questions) >= g.Amount
}

// Question is a single generated question and, once answered, its result.
type Question struct {
	ID                string
	GameID            string
	Question          string
	Answer            string
	QuestionType      GameType
	Options           []string
	UserAnswer        *string
	IsCorrect         *bool
	PercentageCorrect *int
	CreatedAt         time.Time
}

// IsAnswered reports whether a user answer has been recorded.
func (q *Question) IsAnswered() bool {
	return q.UserAnswer != nil
}

// QuestionKey is the immutable part of a question the evaluator needs.
type QuestionKey struct {
	ID           string   `json:"id"`
	QuestionType GameType `json:"questionType"`
	Answer       string   `json:"answer"`
}

// GeneratedQuestion is one item returned by a QuestionGenerator.
// Options holds the three distractors for mcq and is empty otherwise.
type GeneratedQuestion struct {
	Question string
	Answer   string
	Options  []string
}

// Validate checks a generated question against the shape required for gameType.
func (g GeneratedQuestion) Validate(gameType GameType) error {
	if strings.TrimSpace(g.Question) == "" {
		return NewInvalidInputError("generated question has no text")
	}
	if strings.TrimSpace(g.Answer) == "" {
		return NewInvalidInputError("generated question has no answer")
	}
	if gameType == GameTypeMCQ && len(g.Options) != 3 {
		return NewInvalidInputError("generated mcq question must have exactly 3 distractors")
	}
	return nil
}

// Accuracy tiers shown on the statistics page.
const (
	TierImpressive = "impressive"
	TierGood       = "good"
	TierNiceTry    = "nice_try"
)

// AccuracyTier maps an accuracy percentage to its tier.
func AccuracyTier(accuracy float64) string {
	switch {
	case accuracy > 75:
		return TierImpressive
	case accuracy > 25:
		return TierGood
	default:
		return TierNiceTry
	}
}
