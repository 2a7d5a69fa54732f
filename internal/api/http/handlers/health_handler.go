package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clubhub/club-service/internal/persistence"
)

// HealthHandler exposes liveness and readiness probes.
type HealthHandler struct {
	pg    *persistence.Postgres
	redis *persistence.Redis
}

// NewHealthHandler constructs handler.
func NewHealthHandler(pg *persistence.Postgres, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{pg: pg, redis: redis}
}

// Live handles GET /health/live.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready, pinging the backing stores.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	status := fiber.Map{"postgres": "ok", "redis": "ok"}
	healthy := true

	if err := h.pg.Ping(c.UserContext()); err != nil {
		status["postgres"] = err.Error()
		healthy = false
	}
	if err := h.redis.Ping(c.UserContext()); err != nil {
		status["redis"] = err.Error()
		healthy = false
	}

	if !healthy {
		return c.Status(fiber.StatusServiceUnavailable).JSON(status)
	}
	return c.JSON(status)
}
