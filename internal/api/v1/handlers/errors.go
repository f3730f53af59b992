package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skyforge/skyforge/internal/types"
)

// statusFor maps a service error to the HTTP status it should surface as
func statusFor(err error) int {
	switch {
	case types.IsValidationError(err):
		return fiber.StatusBadRequest
	case types.IsNotFoundError(err):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// errorJSON writes the error as a JSON envelope with the mapped status
func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(types.ErrorResponse{Error: err.Error()})
}
