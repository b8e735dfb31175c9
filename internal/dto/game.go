package dto

import "time"

// CreateGameRequest represents the quiz creation form
// @Description Request body for creating a game
type CreateGameRequest struct {
	Topic  string `json:"topic" example:"golang"`
	Amount int    `json:"amount" example:"5"`
	Type   string `json:"type" example:"mcq" enums:"mcq,open_ended"`
}

// CreateGameResponse carries the id clients poll with
type CreateGameResponse struct {
	GameID string `json:"gameId"`
}

// QuestionResponse represents a question with its answer state
type QuestionResponse struct {
	ID                string   `json:"id"`
	Question          string   `json:"question"`
	Answer            string   `json:"answer"`
	QuestionType      string   `json:"questionType"`
	Options           []string `json:"options,omitempty"`
	UserAnswer        *string  `json:"userAnswer"`
	IsCorrect         *bool    `json:"isCorrect"`
	PercentageCorrect *int     `json:"percentageCorrect"`
}

// GameResponse represents a game and its questions in creation order
// @Description Game status used for readiness polling
type GameResponse struct {
	ID          string             `json:"id"`
	UserID      string             `json:"userId"`
	GameType    string             `json:"gameType"`
	Topic       string             `json:"topic"`
	Amount      int                `json:"amount"`
	TimeStarted time.Time          `json:"timeStarted"`
	Ready       bool               `json:"ready"`
	Questions   []QuestionResponse `json:"questions"`
}

// GameEnvelope wraps a GameResponse the way clients expect it
type GameEnvelope struct {
	Game GameResponse `json:"game"`
}

// PlayQuestion is a question as shown while playing; answers are never included.
type PlayQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
}

// PlayView represents a game prepared for play
// @Description Game with answers hidden
type PlayView struct {
	ID          string         `json:"id"`
	GameType    string         `json:"gameType"`
	Topic       string         `json:"topic"`
	TimeStarted time.Time      `json:"timeStarted"`
	Questions   []PlayQuestion `json:"questions"`
}

// PlayEnvelope wraps a PlayView
type PlayEnvelope struct {
	Game PlayView `json:"game"`
}

// CheckAnswerRequest represents a submitted answer
// @Description Request body for checking an answer
type CheckAnswerRequest struct {
	QuestionID string `json:"questionId" example:"01HZX3Y7T0Q6Z9P8B4J5K2M1N0"`
	UserInput  string `json:"userInput" example:"Paris"`
}

// MCQResultResponse is returned for multiple-choice answers
type MCQResultResponse struct {
	IsCorrect bool `json:"isCorrect"`
}

// OpenEndedResultResponse is returned for open-ended answers (0-30)
type OpenEndedResultResponse struct {
	PercentageSimilar int `json:"percentageSimilar"`
}

// StatisticsQuestion is one row of the results table
type StatisticsQuestion struct {
	ID                string  `json:"id"`
	Question          string  `json:"question"`
	Answer            string  `json:"answer"`
	UserAnswer        *string `json:"userAnswer"`
	IsCorrect         *bool   `json:"isCorrect,omitempty"`
	PercentageCorrect *int    `json:"percentageCorrect,omitempty"`
}

// StatisticsResponse represents the results page of a finished game
// @Description Accuracy and per-question results of a game
type StatisticsResponse struct {
	GameID      string               `json:"gameId"`
	GameType    string               `json:"gameType"`
	Topic       string               `json:"topic"`
	TimeStarted time.Time            `json:"timeStarted"`
	Accuracy    float64              `json:"accuracy"`
	Tier        string               `json:"tier"`
	Correct     int                  `json:"correct,omitempty"`
	Wrong       int                  `json:"wrong,omitempty"`
	Questions   []StatisticsQuestion `json:"questions"`
}

// GameSummary is one entry of a user's game history
type GameSummary struct {
	ID          string    `json:"id"`
	GameType    string    `json:"gameType"`
	Topic       string    `json:"topic"`
	Amount      int       `json:"amount"`
	TimeStarted time.Time `json:"timeStarted"`
}

// GameHistoryResponse is the response for listing a user's games
type GameHistoryResponse struct {
	Games          []GameSummary  `json:"games"`
	PaginationInfo PaginationInfo `json:"pagination_info"`
}

// FieldError describes one invalid request field
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"error"`
	Fields  []FieldError `json:"fields,omitempty"`
}
