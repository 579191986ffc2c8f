package adminRoutes

import (
	adminController "matrimony/controllers/admin"
	authValidator "matrimony/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(api fiber.Router, h *adminController.AdminController) {
	adminGroup := api.Group("/admin")

	adminGroup.Post("/login", authValidator.Login(), h.Login)
	adminGroup.Get("/", h.List)
	adminGroup.Get("/:id", h.Get)
}
