package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/skarut/landing-api/internal/auth"
)

// writeError maps a rich error onto an HTTP response. Internal failures keep
// their detail in the logs and return a generic message to the client.
func writeError(c *fiber.Ctx, logger auth.Logger, err error) error {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		richErr = errors.Wrap(err, errors.CategoryInternal, "an unexpected server error occurred")
	}

	status := statusFor(richErr)

	if status >= fiber.StatusInternalServerError {
		logger.Error("request failed", "error", richErr, "category", richErr.Category)
		return c.Status(status).JSON(fiber.Map{
			"message": "internal server error",
		})
	}

	body := fiber.Map{"message": richErr.Message}
	if richErr.Category == errors.CategoryValidation {
		if vm := richErr.ValidationMap(); len(vm) > 0 {
			body["validation"] = vm
		}
	}

	return c.Status(status).JSON(body)
}

func statusFor(e *errors.Error) int {
	if e.Code >= fiber.StatusBadRequest {
		return e.Code
	}

	switch e.Category {
	case errors.CategoryValidation, errors.CategoryBadInput:
		return fiber.StatusBadRequest
	case errors.CategoryAuth:
		return fiber.StatusUnauthorized
	case errors.CategoryAuthz:
		return fiber.StatusForbidden
	case errors.CategoryNotFound:
		return fiber.StatusNotFound
	case errors.CategoryConflict:
		return fiber.StatusConflict
	case errors.CategoryRateLimit:
		return fiber.StatusTooManyRequests
	default:
		return fiber.StatusInternalServerError
	}
}
