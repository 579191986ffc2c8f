package middleware

import (
	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse answers 400 with a field -> message map.
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", errors)
}

// ServerErrorResponse is the generic 500; the cause is logged by the caller.
func ServerErrorResponse(c *fiber.Ctx) error {
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error. Please try again later.", nil)
}
