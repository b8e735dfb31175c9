package handler

import (
	"context"
	"time"

	"dev-quizz/internal/domain"
	"dev-quizz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthResponse reports liveness and the state of the cache.
type HealthResponse struct {
	Status string `json:"status"`
	Redis  string `json:"redis"`
}

type HealthHandler struct {
	cache domain.Cache
}

func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health reports whether the server is up. A cache outage degrades but does not fail the check.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handler.HealthResponse
// @Router /healthz [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	resp := HealthResponse{Status: "ok", Redis: "disabled"}
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
		defer cancel()
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Cache ping failed", zap.Error(err))
			resp.Redis = "down"
		} else {
			resp.Redis = "up"
		}
	}
	return c.JSON(resp)
}
