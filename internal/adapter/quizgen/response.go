package quizgen

import (
	"encoding/json"
	"fmt"

	"dev-quizz/internal/domain"
)

// generatorRequest is the body sent to the generation API.
type generatorRequest struct {
	Topic  string `json:"topic"`
	Amount int    `json:"amount"`
	Type   string `json:"type"`
}

// generatorQuestion covers both response shapes; option fields are only set for mcq.
type generatorQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Option1  string `json:"option1,omitempty"`
	Option2  string `json:"option2,omitempty"`
	Option3  string `json:"option3,omitempty"`
}

type generatorResponse struct {
	Questions []generatorQuestion `json:"questions"`
}

// decodeQuestions parses a generation response and checks every question
// has the shape gameType requires.
func decodeQuestions(data []byte, gameType domain.GameType) ([]domain.GeneratedQuestion, error) {
	var resp generatorResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("malformed generator response: %w", err)
	}
	if len(resp.Questions) == 0 {
		return nil, fmt.Errorf("generator returned no questions")
	}

	out := make([]domain.GeneratedQuestion, 0, len(resp.Questions))
	for i, q := range resp.Questions {
		gq := domain.GeneratedQuestion{Question: q.Question, Answer: q.Answer}
		if gameType == domain.GameTypeMCQ {
			for _, opt := range []string{q.Option1, q.Option2, q.Option3} {
				if opt != "" {
					gq.Options = append(gq.Options, opt)
				}
			}
		}
		if err := gq.Validate(gameType); err != nil {
			return nil, fmt.Errorf("generated question %d: %w", i, err)
		}
		out = append(out, gq)
	}
	return out, nil
}
