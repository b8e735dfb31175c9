// Package client talks to the game API over HTTP. It backs the readiness
// poller and the quizctl command.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"dev-quizz/internal/dto"

	"github.com/gofiber/fiber/v2"
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status int
	Code   string
	Msg    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api returned %d %s: %s", e.Status, e.Code, e.Msg)
	}
	return fmt.Sprintf("api returned %d", e.Status)
}

// GameClient calls the game endpoints with an optional bearer token.
type GameClient struct {
	baseURL string
	token   string
	timeout time.Duration
}

// NewGameClient creates a client for the API at baseURL.
func NewGameClient(baseURL, token string, timeout time.Duration) (*GameClient, error) {
	if baseURL == "" {
		return nil, errors.New("api base URL cannot be empty")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &GameClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		timeout: timeout,
	}, nil
}

func (c *GameClient) requestTimeout(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}

type reply struct {
	code int
	body []byte
	errs []error
}

// send runs the request and decodes a 2xx body into out. It returns as soon
// as ctx is done; the abandoned request still ends at the agent timeout,
// which never outlasts the ctx deadline.
func (c *GameClient) send(ctx context.Context, agent *fiber.Agent, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	agent.Timeout(c.requestTimeout(ctx))
	if c.token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	if err := agent.Parse(); err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	replies := make(chan reply, 1)
	go func() {
		code, body, errs := agent.Bytes()
		replies <- reply{code: code, body: body, errs: errs}
	}()

	var r reply
	select {
	case <-ctx.Done():
		return ctx.Err()
	case r = <-replies:
	}
	code, body := r.code, r.body
	if len(r.errs) > 0 {
		return fmt.Errorf("request failed: %w", errors.Join(r.errs...))
	}
	if code < 200 || code >= 300 {
		apiErr := &APIError{Status: code}
		var payload dto.ErrorResponse
		if json.Unmarshal(body, &payload) == nil {
			apiErr.Code = payload.Code
			apiErr.Msg = payload.Message
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// CreateGame asks the API to generate a game and returns its id.
func (c *GameClient) CreateGame(ctx context.Context, req dto.CreateGameRequest) (string, error) {
	agent := fiber.Post(c.baseURL + "/api/game")
	agent.JSON(req)

	var resp dto.CreateGameResponse
	if err := c.send(ctx, agent, &resp); err != nil {
		return "", err
	}
	if resp.GameID == "" {
		return "", errors.New("api returned an empty game id")
	}
	return resp.GameID, nil
}

// GetGame fetches a game and the questions stored so far.
func (c *GameClient) GetGame(ctx context.Context, gameID string) (*dto.GameResponse, error) {
	agent := fiber.Get(c.baseURL + "/api/game?gameId=" + url.QueryEscape(gameID))

	var envelope dto.GameEnvelope
	if err := c.send(ctx, agent, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Game, nil
}

// QuestionCount implements poller.Fetcher.
func (c *GameClient) QuestionCount(ctx context.Context, gameID string) (int, error) {
	game, err := c.GetGame(ctx, gameID)
	if err != nil {
		return 0, err
	}
	return len(game.Questions), nil
}
