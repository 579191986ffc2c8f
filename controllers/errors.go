package controllers

import (
	"errors"
	"log"

	"matrimony/middleware"
	"matrimony/services"
	"matrimony/utils"

	"github.com/gofiber/fiber/v2"
)

// ServiceError maps service and upload errors to the response envelope.
// Anything unrecognised is logged with action and answered 500.
func ServiceError(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, services.ErrDuplicate):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email or mobile number already exists!", nil)
	case errors.Is(err, services.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Record not found!", nil)
	case errors.Is(err, services.ErrInvalidCredential):
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid password!", nil)
	case errors.Is(err, utils.ErrTooManyFiles):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Too many documents uploaded!", nil)
	}

	log.Printf("Error %s: %v", action, err)
	return middleware.ServerErrorResponse(c)
}
