package models

import (
	"database/sql"
	"time"
)

// Game represents a row of the GAMES table.
type Game struct {
	ID          string       `db:"ID"`
	UserID      string       `db:"USER_ID"`
	GameType    string       `db:"GAME_TYPE"`
	Topic       string       `db:"TOPIC"`
	Amount      int          `db:"AMOUNT"`
	TimeStarted time.Time    `db:"TIME_STARTED"`
	TimeEnded   sql.NullTime `db:"TIME_ENDED"`
}

// Question represents a row of the QUESTIONS table.
// IS_CORRECT is a NUMBER(1) flag; Oracle has no boolean column type.
type Question struct {
	ID                string         `db:"ID"`
	GameID            string         `db:"GAME_ID"`
	Position          int            `db:"POSITION"`
	Question          string         `db:"QUESTION"`
	Answer            string         `db:"ANSWER"`
	QuestionType      string         `db:"QUESTION_TYPE"`
	Options           StringSlice    `db:"OPTIONS"`
	UserAnswer        sql.NullString `db:"USER_ANSWER"`
	IsCorrect         sql.NullInt64  `db:"IS_CORRECT"`
	PercentageCorrect sql.NullInt64  `db:"PERCENTAGE_CORRECT"`
	CreatedAt         time.Time      `db:"CREATED_AT"`
}

// QuestionKey is the projection the answer evaluator reads.
type QuestionKey struct {
	ID           string `db:"ID"`
	QuestionType string `db:"QUESTION_TYPE"`
	Answer       string `db:"ANSWER"`
}
