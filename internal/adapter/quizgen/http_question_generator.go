package quizgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dev-quizz/internal/domain"
	"dev-quizz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HTTPQuestionGenerator calls an external generation API:
// POST {baseURL}/api/questions {topic, amount, type} -> {questions: [...]}.
type HTTPQuestionGenerator struct {
	baseURL        string
	timeout        time.Duration
	forwardCookies bool
}

// NewHTTPQuestionGenerator creates a generator for the API at baseURL.
func NewHTTPQuestionGenerator(baseURL string, timeout time.Duration, forwardCookies bool) (domain.QuestionGenerator, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("generator API URL cannot be empty")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPQuestionGenerator{
		baseURL:        strings.TrimRight(baseURL, "/"),
		timeout:        timeout,
		forwardCookies: forwardCookies,
	}, nil
}

// Generate implements domain.QuestionGenerator
func (g *HTTPQuestionGenerator) Generate(ctx context.Context, req domain.GenerationRequest) ([]domain.GeneratedQuestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := g.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	agent := fiber.Post(g.baseURL + "/api/questions")
	agent.JSON(generatorRequest{Topic: req.Topic, Amount: req.Amount, Type: string(req.Type)})
	agent.Timeout(timeout)
	if g.forwardCookies && req.Cookie != "" {
		agent.Set(fiber.HeaderCookie, req.Cookie)
	}

	if err := agent.Parse(); err != nil {
		return nil, fmt.Errorf("failed to build generator request: %w", err)
	}

	start := time.Now()
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("generator request failed: %w", errors.Join(errs...))
	}

	logger.Get().Debug("Generator responded",
		zap.Int("status", code),
		zap.Duration("took", time.Since(start)),
		zap.String("topic", req.Topic))

	if code != fiber.StatusOK {
		return nil, fmt.Errorf("generator returned status %d", code)
	}

	return decodeQuestions(body, req.Type)
}
