package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pingpong/internal/model"
	"pingpong/internal/service"
)

// Hello returns the handler for POST /hello. The body must be a JSON object
// with a "name" string; the reply greets that name with the current UTC
// wall clock.
// @Summary Personalized greeting
// @Tags demo
// @Accept json
// @Produce json
// @Param request body model.HelloRequest true "name to greet"
// @Success 200 {object} model.Greeting
// @Failure 400 {object} errorPayload "missing name or malformed JSON"
// @Router /hello [post]
func Hello(svc service.GreetingService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.HelloRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON")
		}
		if req.Name == nil {
			return writeError(c, fiber.StatusBadRequest, "MISSING_NAME", "missing 'name' field in JSON payload")
		}

		greeting, err := svc.Greet(c.UserContext(), *req.Name)
		if err != nil {
			if errors.Is(err, service.ErrNameRequired) {
				return writeError(c, fiber.StatusBadRequest, "MISSING_NAME", "missing 'name' field in JSON payload")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(greeting)
	}
}
