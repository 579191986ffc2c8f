package distributorRoutes

import (
	distributorController "matrimony/controllers/distributor"
	authValidator "matrimony/validators/auth"
	distributorValidator "matrimony/validators/distributor"

	"github.com/gofiber/fiber/v2"
)

func SetupDistributorRoutes(api fiber.Router, h *distributorController.DistributorController) {
	distributorGroup := api.Group("/distributor")

	distributorGroup.Post("/create", distributorValidator.Create(), h.Create)
	distributorGroup.Post("/login", authValidator.Login(), h.Login)

	api.Get("/distributors", h.List)
}
