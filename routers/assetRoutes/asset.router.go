package assetRoutes

import (
	assetController "matrimony/controllers/asset"

	"github.com/gofiber/fiber/v2"
)

// SetupAssetRoutes must run after every other /api route; the two-segment
// wildcard would otherwise catch paths like /admin/:id.
func SetupAssetRoutes(api fiber.Router, h *assetController.AssetController) {
	api.Get("/:folder/:imageName", h.Serve)
}
