package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"dev-quizz/internal/cache"
	"dev-quizz/internal/config"
	"dev-quizz/internal/domain"
	"dev-quizz/internal/logger"
	"dev-quizz/internal/util"
	"dev-quizz/internal/validation"

	"go.uber.org/zap"
)

const defaultQuestionKeyTTL = 100 * time.Second

// AnswerService scores submitted answers.
type AnswerService interface {
	Evaluate(ctx context.Context, questionID, userInput string) (*domain.EvaluationResult, error)
}

type answerService struct {
	repo           domain.GameRepository
	cache          domain.Cache
	validator      *validation.Validator
	questionKeyTTL time.Duration
}

// NewAnswerService creates an AnswerService. cache may be nil.
func NewAnswerService(repo domain.GameRepository, cache domain.Cache, cfg *config.Config) AnswerService {
	ttl := defaultQuestionKeyTTL
	if cfg != nil {
		ttl = cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.QuestionKey, defaultQuestionKeyTTL)
	}
	return &answerService{
		repo:           repo,
		cache:          cache,
		validator:      validation.NewValidator(),
		questionKeyTTL: ttl,
	}
}

// Evaluate records userInput on the question and then scores it. The raw
// answer is always persisted before any result is.
func (s *answerService) Evaluate(ctx context.Context, questionID, userInput string) (*domain.EvaluationResult, error) {
	if errs := s.validator.ValidateCheckAnswerRequest(questionID, userInput); len(errs) > 0 {
		return nil, errs
	}
	if !util.IsULID(questionID) {
		return nil, domain.NewQuestionNotFoundError(questionID)
	}

	key, err := s.questionKey(ctx, questionID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveUserAnswer(ctx, questionID, userInput); err != nil {
		return nil, wrapRepoError("Failed to save answer", err)
	}

	result := &domain.EvaluationResult{QuestionID: questionID, QuestionType: key.QuestionType}

	switch key.QuestionType {
	case domain.GameTypeMCQ:
		isCorrect := strings.ToLower(strings.TrimSpace(key.Answer)) == strings.ToLower(strings.TrimSpace(userInput))
		if err := s.repo.SaveMCQResult(ctx, questionID, isCorrect); err != nil {
			return nil, wrapRepoError("Failed to save result", err)
		}
		result.IsCorrect = &isCorrect

	case domain.GameTypeOpenEnded:
		// Only the submission is normalized; the stored answer is compared as is.
		ratio := util.DiceCoefficient(strings.ToLower(strings.TrimSpace(userInput)), key.Answer)
		score := util.ScaleScore(ratio, domain.MaxOpenEndedScore)
		if err := s.repo.SaveOpenEndedResult(ctx, questionID, score); err != nil {
			return nil, wrapRepoError("Failed to save result", err)
		}
		result.PercentageSimilar = &score

	default:
		logger.Get().Debug("Answer recorded for unscored question type",
			zap.String("questionID", questionID),
			zap.String("questionType", string(key.QuestionType)))
	}

	return result, nil
}

// questionKey reads the type and answer of a question through the cache.
// Cache failures are logged and fall back to the repository.
func (s *answerService) questionKey(ctx context.Context, questionID string) (*domain.QuestionKey, error) {
	l := logger.Get()
	cacheKey := cache.QuestionKeyCacheKey(questionID)

	if s.cache != nil {
		var cached domain.QuestionKey
		err := cache.GetJSON(ctx, s.cache, cacheKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			l.Warn("Question key cache read failed", zap.String("questionID", questionID), zap.Error(err))
		}
	}

	key, err := s.repo.GetQuestionKey(ctx, questionID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get question", err)
	}
	if key == nil {
		return nil, domain.NewQuestionNotFoundError(questionID)
	}

	if s.cache != nil {
		if err := cache.SetJSON(ctx, s.cache, cacheKey, key, s.questionKeyTTL); err != nil {
			l.Warn("Question key cache write failed", zap.String("questionID", questionID), zap.Error(err))
		}
	}
	return key, nil
}

// wrapRepoError passes domain errors through and hides everything else.
func wrapRepoError(message string, err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de
	}
	return domain.NewInternalError(message, err)
}
