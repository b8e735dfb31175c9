package domain

import "context"

// GenerationRequest is what the orchestrator asks a generator for.
type GenerationRequest struct {
	Topic  string
	Amount int
	Type   GameType
	// Cookie is forwarded to HTTP generators when configured; other generators ignore it.
	Cookie string
}

// QuestionGenerator produces questions for a topic.
type QuestionGenerator interface {
	Generate(ctx context.Context, req GenerationRequest) ([]GeneratedQuestion, error)
}
