package quizgen

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"dev-quizz/internal/domain"
	"dev-quizz/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

const questionPrompt = `You are a quiz generator. Create exactly %d %s questions about "%s".
Respond with ONLY a JSON object in the following format:
%s

Rules:
1. Answers must be at most 15 words
2. Questions must be self-contained
3. Do not number the questions`

const mcqShape = `{"questions": [{"question": "...", "answer": "...", "option1": "...", "option2": "...", "option3": "..."}]}
option1, option2 and option3 are plausible but wrong answers, each different from the answer.`

const openEndedShape = `{"questions": [{"question": "...", "answer": "..."}]}`

// LLMQuestionGenerator asks a language model for questions in the same JSON
// shape the HTTP generation API returns.
type LLMQuestionGenerator struct {
	llm llms.Model
}

// NewLLMQuestionGenerator creates a generator backed by an Ollama server.
func NewLLMQuestionGenerator(serverURL, model string, timeout time.Duration) (domain.QuestionGenerator, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("LLM server URL cannot be empty")
	}
	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
	llm, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
		ollama.WithHTTPClient(httpClient),
		ollama.WithFormat("json"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return NewLLMQuestionGeneratorWithModel(llm), nil
}

// NewLLMQuestionGeneratorWithModel wraps an existing model.
func NewLLMQuestionGeneratorWithModel(llm llms.Model) *LLMQuestionGenerator {
	return &LLMQuestionGenerator{llm: llm}
}

// Generate implements domain.QuestionGenerator
func (g *LLMQuestionGenerator) Generate(ctx context.Context, req domain.GenerationRequest) ([]domain.GeneratedQuestion, error) {
	l := logger.Get()

	shape, kind := openEndedShape, "open-ended"
	if req.Type == domain.GameTypeMCQ {
		shape, kind = mcqShape, "multiple-choice"
	}
	prompt := fmt.Sprintf(questionPrompt, req.Amount, kind, req.Topic, shape)

	raw, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(0.7))
	if err != nil {
		l.Error("LLM question generation failed", zap.Error(err), zap.String("topic", req.Topic))
		return nil, fmt.Errorf("LLM call failed: %w", err)
	}
	l.Debug("Raw LLM response received", zap.String("raw_response", raw))

	extracted, ok := extractJSONObject(raw)
	if !ok {
		return nil, fmt.Errorf("no JSON object found in LLM response")
	}
	return decodeQuestions([]byte(extracted), req.Type)
}

// extractJSONObject drops a leading <think> block and returns the text
// between the first '{' and the last '}'.
func extractJSONObject(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if start := strings.Index(s, "<think>"); start != -1 {
		if end := strings.Index(s, "</think>"); end > start {
			s = strings.TrimSpace(s[:start] + s[end+len("</think>"):])
		}
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
