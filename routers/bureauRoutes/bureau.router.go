package bureauRoutes

import (
	bureauController "matrimony/controllers/bureau"
	authValidator "matrimony/validators/auth"
	bureauValidator "matrimony/validators/bureau"

	"github.com/gofiber/fiber/v2"
)

func SetupBureauRoutes(api fiber.Router, h *bureauController.BureauController) {
	bureauGroup := api.Group("/bureau")

	bureauGroup.Post("/create", bureauValidator.Create(), h.Create)
	bureauGroup.Put("/update", bureauValidator.Update(), h.Update)
	bureauGroup.Put("/uploadBanner", bureauValidator.ImageUpload(), h.UploadBanner)
	bureauGroup.Post("/slider", bureauValidator.ImageUpload(), h.AddSliderImage)
	bureauGroup.Get("/getBannerimages/:bureauId", h.SliderImages)
	bureauGroup.Get("/getGalleryImages/:bureauId", h.GalleryImages)

	api.Post("/bureaulogin", authValidator.Login(), h.Login)

	api.Get("/bureau_profiles", h.Profiles)
	api.Get("/bureau_profiles_distributer", bureauValidator.ProfilesByDistributor(), h.ProfilesByDistributor)
	api.Get("/bureau_profiles_bureauId", bureauValidator.ProfileByBureauID(), h.ProfileByBureauID)
}

// SetupImageRoutes registers the gallery upload and the image deletes, which
// live outside the /bureau group.
func SetupImageRoutes(api fiber.Router, h *bureauController.BureauController) {
	api.Post("/gallery/upload", bureauValidator.ImageUpload(), h.AddGalleryImage)
	api.Delete("/deleteBannerImage/:imageId", bureauValidator.ImageID(), h.DeleteSliderImage)
	api.Delete("/deleteGalleryImage/:imageId", bureauValidator.ImageID(), h.DeleteGalleryImage)
}
