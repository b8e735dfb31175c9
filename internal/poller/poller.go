package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dev-quizz/internal/logger"

	"go.uber.org/zap"
)

const (
	DefaultTimeout  = 20 * time.Second
	DefaultInterval = 20 * time.Second
)

// State is the lifecycle of one Run.
type State int

const (
	StateCreated State = iota
	StatePolling
	StateReady
	StateTimedOut
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StatePolling:
		return "polling"
	case StateReady:
		return "ready"
	case StateTimedOut:
		return "timed_out"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Fetcher reports how many questions a game has so far.
type Fetcher interface {
	QuestionCount(ctx context.Context, gameID string) (int, error)
}

// Target identifies the game being waited for.
type Target struct {
	GameID   string
	GameType string
	Amount   int
}

// PlayPath is where a ready game is played.
func (t Target) PlayPath() string {
	return fmt.Sprintf("/play/%s/%s", t.GameType, t.GameID)
}

// Result is the terminal outcome of Run. Navigate is false when the deadline
// passed first; the game can still be started by hand.
type Result struct {
	State    State
	Navigate bool
	Path     string
}

// Poller waits until a game has all of its questions.
type Poller struct {
	Fetcher       Fetcher
	Clock         Clock
	Timeout       time.Duration
	Interval      time.Duration
	OnStateChange func(State)
}

var ErrInvalidTarget = errors.New("poller: target needs a game id and a positive amount")

// stopToken stops the deadline timer and the ticker exactly once. Only the
// caller that wins the stop may make a terminal transition.
type stopToken struct {
	once     sync.Once
	deadline Timer
	ticker   Ticker
}

func (s *stopToken) stop() bool {
	won := false
	s.once.Do(func() {
		s.deadline.Stop()
		s.ticker.Stop()
		won = true
	})
	return won
}

type fetchResult struct {
	count int
	err   error
}

// Run polls the fetcher every Interval until the game is ready, Timeout
// passes or ctx is done. The first fetch happens one Interval after start.
// At most one fetch is in flight; ticks arriving meanwhile are skipped, and
// the deadline cancels a pending fetch instead of waiting for it.
func (p *Poller) Run(ctx context.Context, target Target) (Result, error) {
	if target.GameID == "" || target.Amount <= 0 {
		return Result{}, ErrInvalidTarget
	}
	if p.Fetcher == nil {
		return Result{}, errors.New("poller: fetcher is required")
	}

	clock := p.Clock
	if clock == nil {
		clock = RealClock{}
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	l := logger.Get().With(zap.String("gameID", target.GameID))
	state := StateCreated
	transition := func(next State) {
		l.Debug("Poller state change", zap.Stringer("from", state), zap.Stringer("to", next))
		state = next
		if p.OnStateChange != nil {
			p.OnStateChange(next)
		}
	}
	transition(StateCreated)

	token := &stopToken{
		deadline: clock.NewTimer(timeout),
		ticker:   clock.NewTicker(interval),
	}
	defer token.stop()

	fetchCtx, cancelFetch := context.WithCancel(ctx)
	defer cancelFetch()

	transition(StatePolling)

	ticks := token.ticker.C()
	var results chan fetchResult

	for {
		select {
		case <-ctx.Done():
			token.stop()
			return Result{State: state}, ctx.Err()

		case <-token.deadline.C():
			cancelFetch()
			if token.stop() {
				transition(StateTimedOut)
			}
			return Result{State: state}, nil

		case <-ticks:
			ticks = nil
			results = make(chan fetchResult, 1)
			go func(out chan<- fetchResult) {
				count, err := p.Fetcher.QuestionCount(fetchCtx, target.GameID)
				out <- fetchResult{count: count, err: err}
			}(results)

		case res := <-results:
			results = nil
			ticks = token.ticker.C()
			if res.err != nil {
				l.Warn("Failed to fetch game status", zap.Error(res.err))
				continue
			}
			if res.count < target.Amount {
				l.Debug("Game not ready", zap.Int("questions", res.count), zap.Int("amount", target.Amount))
				continue
			}
			if !token.stop() {
				return Result{State: state}, nil
			}
			transition(StateReady)
			return Result{State: state, Navigate: true, Path: target.PlayPath()}, nil
		}
	}
}
