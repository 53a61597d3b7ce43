package handler

import "github.com/gofiber/fiber/v2"

// Ping returns the handler for GET /ping. The one-word plain-text reply is
// what the pipeline's smoke test curls right after a rollout.
// @Summary Connectivity smoke test
// @Tags demo
// @Produce plain
// @Success 200 {string} string "pong"
// @Router /ping [get]
func Ping() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString("pong")
	}
}
