package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclesense/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func acceptsJSON(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get("Accept")), "application/json")
}

// parseAndValidate decodes the body into target and runs the struct tags. It
// writes the 400 response itself and reports whether the handler may continue.
func (handler *Handler) parseAndValidate(c *fiber.Ctx, target any) (bool, error) {
	if err := c.BodyParser(target); err != nil {
		return false, apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(target); err != nil {
		return false, apiError(c, fiber.StatusBadRequest, validationMessage(err))
	}
	return true, nil
}

func respondEngineError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidCycleHistory),
		errors.Is(err, services.ErrInvalidThyroidLog),
		errors.Is(err, services.ErrInvalidThyroidRange):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrThyroidLogNotFound):
		return apiError(c, fiber.StatusNotFound, "log not found")
	case errors.Is(err, services.ErrComputationFailed):
		return apiError(c, fiber.StatusInternalServerError, "computation failed")
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}
