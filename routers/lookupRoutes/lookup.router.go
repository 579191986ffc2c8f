package lookupRoutes

import (
	lookupController "matrimony/controllers/lookup"
	"matrimony/models"

	"github.com/gofiber/fiber/v2"
)

func SetupLookupRoutes(api fiber.Router, h *lookupController.LookupController) {
	for _, table := range models.LookupTables {
		api.Get("/"+table, h.Table(table))
	}
}
