package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the last-resort handler for errors returned (or panics
// recovered) from handlers that did not already write a response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return JsonResponse(c, fiberErr.Code, false, fiberErr.Message, nil)
	}

	log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}
