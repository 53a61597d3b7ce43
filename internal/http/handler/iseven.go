package handler

import (
	"github.com/gofiber/fiber/v2"

	"pingpong/internal/model"
)

// IsEven returns the handler for POST /iseven. The parity verdict travels
// both in the body and in the status code (200 even, 400 odd) so shell
// scripts can branch on the curl exit status without parsing JSON.
// @Summary Parity check
// @Tags demo
// @Accept json
// @Produce json
// @Param request body model.ParityRequest true "number to test"
// @Success 200 {object} model.Parity "number is even"
// @Failure 400 {object} model.Parity "number is odd"
// @Router /iseven [post]
func IsEven() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.ParityRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "request body must be valid JSON")
		}
		if req.Number == nil {
			return writeError(c, fiber.StatusBadRequest, "MISSING_NUMBER", "missing 'number' field in JSON payload")
		}

		n := *req.Number
		res := model.Parity{Number: n, Even: n%2 == 0}

		status := fiber.StatusOK
		if !res.Even {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(res)
	}
}
