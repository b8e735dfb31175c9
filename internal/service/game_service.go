package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"dev-quizz/internal/cache"
	"dev-quizz/internal/config"
	"dev-quizz/internal/domain"
	"dev-quizz/internal/dto"
	"dev-quizz/internal/logger"
	"dev-quizz/internal/util"
	"dev-quizz/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	defaultGenerationTimeout = 60 * time.Second
	defaultPlayViewTTL       = 10 * time.Minute
)

// Shuffler reorders options in place.
type Shuffler func(options []string)

// RandomShuffler shuffles with math/rand/v2.
func RandomShuffler(options []string) {
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
}

// GameService creates games and serves their read views.
type GameService interface {
	CreateGame(ctx context.Context, session *domain.Session, req *dto.CreateGameRequest) (*dto.CreateGameResponse, error)
	GetGame(ctx context.Context, gameID string) (*dto.GameResponse, error)
	GetPlayView(ctx context.Context, session *domain.Session, gameType, gameID string) (*dto.PlayView, error)
	GetStatistics(ctx context.Context, session *domain.Session, gameID string) (*dto.StatisticsResponse, error)
	ListUserGames(ctx context.Context, session *domain.Session, limit, offset int) (*dto.GameHistoryResponse, error)
}

// GameServiceOption customizes a GameService.
type GameServiceOption func(*gameService)

// WithShuffler replaces the mcq option shuffler.
func WithShuffler(shuffle Shuffler) GameServiceOption {
	return func(s *gameService) {
		s.shuffle = shuffle
	}
}

type gameService struct {
	repo              domain.GameRepository
	txManager         domain.TransactionManager
	generator         domain.QuestionGenerator
	cache             domain.Cache
	validator         *validation.Validator
	shuffle           Shuffler
	generationTimeout time.Duration
	playViewTTL       time.Duration
	sfGroup           singleflight.Group
}

// NewGameService creates a GameService. cache may be nil.
func NewGameService(
	repo domain.GameRepository,
	txManager domain.TransactionManager,
	generator domain.QuestionGenerator,
	cache domain.Cache,
	cfg *config.Config,
	opts ...GameServiceOption,
) GameService {
	s := &gameService{
		repo:              repo,
		txManager:         txManager,
		generator:         generator,
		cache:             cache,
		validator:         validation.NewValidator(),
		shuffle:           RandomShuffler,
		generationTimeout: defaultGenerationTimeout,
		playViewTTL:       defaultPlayViewTTL,
	}
	if cfg != nil {
		if cfg.Generator.Timeout > 0 {
			s.generationTimeout = cfg.Generator.Timeout
		}
		s.playViewTTL = cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.PlayView, defaultPlayViewTTL)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateGame validates the request, stores the game, asks the generator for
// questions and stores them. The generator call is not cancelled when the
// caller goes away.
func (s *gameService) CreateGame(ctx context.Context, session *domain.Session, req *dto.CreateGameRequest) (*dto.CreateGameResponse, error) {
	if !session.IsAuthenticated() {
		return nil, domain.NewUnauthorizedError("You must be logged in")
	}
	if req == nil {
		return nil, domain.NewInvalidInputError("request body is required")
	}
	if errs := s.validator.ValidateCreateGameRequest(req.Topic, req.Amount, req.Type); len(errs) > 0 {
		return nil, errs
	}
	gameType, _ := domain.ParseGameType(req.Type)

	l := logger.Get()
	detached := context.WithoutCancel(ctx)

	game := domain.NewGame(session.UserID, gameType, req.Topic, req.Amount)
	game.ID = util.NewULID()
	if err := game.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.CreateGame(detached, game); err != nil {
		return nil, domain.NewInternalError("Failed to create game", err)
	}

	genCtx, cancel := context.WithTimeout(detached, s.generationTimeout)
	defer cancel()

	start := time.Now()
	generated, err := s.generator.Generate(genCtx, domain.GenerationRequest{
		Topic:  game.Topic,
		Amount: game.Amount,
		Type:   game.GameType,
		Cookie: session.Cookie,
	})
	if err != nil {
		l.Error("Question generation failed",
			zap.String("gameID", game.ID),
			zap.String("topic", game.Topic),
			zap.Duration("took", time.Since(start)),
			zap.Error(err))
		return nil, domain.NewUpstreamError(err)
	}

	questions, err := s.buildQuestions(game, generated)
	if err != nil {
		l.Error("Generator returned malformed questions", zap.String("gameID", game.ID), zap.Error(err))
		return nil, domain.NewUpstreamError(err)
	}
	if len(questions) < game.Amount {
		l.Warn("Generator returned fewer questions than requested",
			zap.String("gameID", game.ID),
			zap.Int("requested", game.Amount),
			zap.Int("received", len(questions)))
	}

	err = s.txManager.WithTransaction(detached, func(txCtx context.Context) error {
		return s.repo.CreateQuestions(txCtx, questions)
	})
	if err != nil {
		return nil, domain.NewInternalError("Failed to save questions", err)
	}

	l.Info("Game created",
		zap.String("gameID", game.ID),
		zap.String("type", string(game.GameType)),
		zap.Int("questions", len(questions)),
		zap.Duration("took", time.Since(start)))

	return &dto.CreateGameResponse{GameID: game.ID}, nil
}

// buildQuestions validates generated items, drops any beyond game.Amount and
// assembles the shuffled mcq options.
func (s *gameService) buildQuestions(game *domain.Game, generated []domain.GeneratedQuestion) ([]*domain.Question, error) {
	if len(generated) == 0 {
		return nil, fmt.Errorf("generator returned no questions")
	}
	if len(generated) > game.Amount {
		generated = generated[:game.Amount]
	}

	questions := make([]*domain.Question, 0, len(generated))
	for i, g := range generated {
		if err := g.Validate(game.GameType); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		q := &domain.Question{
			ID:           util.NewULID(),
			GameID:       game.ID,
			Question:     g.Question,
			Answer:       g.Answer,
			QuestionType: game.GameType,
		}
		if game.GameType == domain.GameTypeMCQ {
			options := make([]string, 0, len(g.Options)+1)
			options = append(options, g.Options...)
			options = append(options, g.Answer)
			s.shuffle(options)
			q.Options = options
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// GetGame returns a game with its questions, used for readiness polling.
func (s *gameService) GetGame(ctx context.Context, gameID string) (*dto.GameResponse, error) {
	if err := s.validator.ValidateGameID("gameId", gameID); err != nil {
		return nil, err
	}
	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return toGameResponse(game), nil
}

type playViewEntry struct {
	UserID string       `json:"userId"`
	View   dto.PlayView `json:"view"`
}

// GetPlayView returns the game without answers. Only the owner can play a
// game, and only under its own type; both mismatches look like a missing game.
func (s *gameService) GetPlayView(ctx context.Context, session *domain.Session, gameType, gameID string) (*dto.PlayView, error) {
	if !session.IsAuthenticated() {
		return nil, domain.NewUnauthorizedError("You must be logged in")
	}
	if _, ok := domain.ParseGameType(gameType); !ok {
		return nil, domain.NewGameNotFoundError(gameID)
	}
	if err := s.validator.ValidateGameID("gameId", gameID); err != nil {
		return nil, err
	}

	// The load is shared by every waiting caller, so it outlives the first one.
	loadCtx := context.WithoutCancel(ctx)
	res, err, shared := s.sfGroup.Do(gameID, func() (interface{}, error) {
		return s.loadPlayView(loadCtx, gameID)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		logger.Get().Debug("Play view load shared", zap.String("gameID", gameID))
	}

	entry, ok := res.(*playViewEntry)
	if !ok {
		return nil, domain.NewInternalError(fmt.Sprintf("unexpected play view type %T", res), nil)
	}
	if entry.UserID != session.UserID || entry.View.GameType != gameType {
		return nil, domain.NewGameNotFoundError(gameID)
	}
	view := entry.View
	return &view, nil
}

func (s *gameService) loadPlayView(ctx context.Context, gameID string) (*playViewEntry, error) {
	l := logger.Get()
	cacheKey := cache.PlayViewCacheKey(gameID)

	if s.cache != nil {
		var cached playViewEntry
		err := cache.GetJSON(ctx, s.cache, cacheKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			l.Warn("Play view cache read failed", zap.String("gameID", gameID), zap.Error(err))
		}
	}

	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	entry := &playViewEntry{UserID: game.UserID, View: toPlayView(game)}

	// Questions of a ready game no longer change, so its view can be cached.
	if s.cache != nil && game.IsReady() {
		if err := cache.SetJSON(ctx, s.cache, cacheKey, entry, s.playViewTTL); err != nil {
			l.Warn("Play view cache write failed", zap.String("gameID", gameID), zap.Error(err))
		}
	}
	return entry, nil
}

// GetStatistics summarizes how the owner did on a game.
func (s *gameService) GetStatistics(ctx context.Context, session *domain.Session, gameID string) (*dto.StatisticsResponse, error) {
	if !session.IsAuthenticated() {
		return nil, domain.NewUnauthorizedError("You must be logged in")
	}
	if err := s.validator.ValidateGameID("gameId", gameID); err != nil {
		return nil, err
	}
	game, err := s.loadGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.UserID != session.UserID {
		return nil, domain.NewGameNotFoundError(gameID)
	}
	return buildStatistics(game), nil
}

func buildStatistics(game *domain.Game) *dto.StatisticsResponse {
	resp := &dto.StatisticsResponse{
		GameID:      game.ID,
		GameType:    string(game.GameType),
		Topic:       game.Topic,
		TimeStarted: game.TimeStarted,
		Questions:   make([]dto.StatisticsQuestion, 0, len(game.Questions)),
	}

	total := len(game.Questions)
	scoreSum := 0
	for _, q := range game.Questions {
		row := dto.StatisticsQuestion{
			ID:         q.ID,
			Question:   q.Question,
			Answer:     q.Answer,
			UserAnswer: q.UserAnswer,
		}
		switch game.GameType {
		case domain.GameTypeMCQ:
			row.IsCorrect = q.IsCorrect
			if q.IsCorrect != nil {
				if *q.IsCorrect {
					resp.Correct++
				} else {
					resp.Wrong++
				}
			}
		case domain.GameTypeOpenEnded:
			row.PercentageCorrect = q.PercentageCorrect
			if q.PercentageCorrect != nil {
				scoreSum += *q.PercentageCorrect
			}
		}
		resp.Questions = append(resp.Questions, row)
	}

	var accuracy float64
	if total > 0 {
		switch game.GameType {
		case domain.GameTypeMCQ:
			accuracy = float64(resp.Correct) / float64(total) * 100
		case domain.GameTypeOpenEnded:
			accuracy = float64(scoreSum) / float64(total*domain.MaxOpenEndedScore) * 100
		}
	}
	resp.Accuracy = math.Round(accuracy*100) / 100
	resp.Tier = domain.AccuracyTier(resp.Accuracy)
	return resp
}

// ListUserGames returns the caller's most recent games.
func (s *gameService) ListUserGames(ctx context.Context, session *domain.Session, limit, offset int) (*dto.GameHistoryResponse, error) {
	if !session.IsAuthenticated() {
		return nil, domain.NewUnauthorizedError("You must be logged in")
	}
	games, total, err := s.repo.ListGamesByUser(ctx, session.UserID, limit, offset)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list games", err)
	}

	resp := &dto.GameHistoryResponse{
		Games:          make([]dto.GameSummary, 0, len(games)),
		PaginationInfo: dto.NewPaginationInfo(int64(total), limit, offset),
	}
	for _, g := range games {
		resp.Games = append(resp.Games, dto.GameSummary{
			ID:          g.ID,
			GameType:    string(g.GameType),
			Topic:       g.Topic,
			Amount:      g.Amount,
			TimeStarted: g.TimeStarted,
		})
	}
	return resp, nil
}

func (s *gameService) loadGame(ctx context.Context, gameID string) (*domain.Game, error) {
	game, err := s.repo.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to get game", err)
	}
	if game == nil {
		return nil, domain.NewGameNotFoundError(gameID)
	}
	return game, nil
}

func toGameResponse(game *domain.Game) *dto.GameResponse {
	resp := &dto.GameResponse{
		ID:          game.ID,
		UserID:      game.UserID,
		GameType:    string(game.GameType),
		Topic:       game.Topic,
		Amount:      game.Amount,
		TimeStarted: game.TimeStarted,
		Ready:       game.IsReady(),
		Questions:   make([]dto.QuestionResponse, 0, len(game.Questions)),
	}
	for _, q := range game.Questions {
		resp.Questions = append(resp.Questions, dto.QuestionResponse{
			ID:                q.ID,
			Question:          q.Question,
			Answer:            q.Answer,
			QuestionType:      string(q.QuestionType),
			Options:           q.Options,
			UserAnswer:        q.UserAnswer,
			IsCorrect:         q.IsCorrect,
			PercentageCorrect: q.PercentageCorrect,
		})
	}
	return resp
}

func toPlayView(game *domain.Game) dto.PlayView {
	view := dto.PlayView{
		ID:          game.ID,
		GameType:    string(game.GameType),
		Topic:       game.Topic,
		TimeStarted: game.TimeStarted,
		Questions:   make([]dto.PlayQuestion, 0, len(game.Questions)),
	}
	for _, q := range game.Questions {
		view.Questions = append(view.Questions, dto.PlayQuestion{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return view
}
