package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"pingpong/internal/model"
	"pingpong/internal/service"
)

// HealthCheck returns the handler for GET /health, answered unconditionally:
// the service has no downstream dependencies whose state could change the
// verdict.
// @Summary Health probe
// @Tags system
// @Produce json
// @Success 200 {object} model.Health
// @Router /health [get]
func HealthCheck(appName, appVersion string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(model.Health{
			Status:    "healthy",
			Timestamp: service.FormatTimestamp(time.Now()),
			App:       appName,
			Version:   appVersion,
		})
	}
}

// LivenessProbe returns the handler for GET /healthz, a bare liveness probe
// for the orchestrator.
// @Summary Liveness probe
// @Tags system
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
