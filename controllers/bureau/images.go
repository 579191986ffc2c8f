package bureauController

import (
	"matrimony/controllers"
	"matrimony/middleware"
	bureauValidator "matrimony/validators/bureau"

	"github.com/gofiber/fiber/v2"
)

func uploadRequest(c *fiber.Ctx) (*bureauValidator.ImageUploadRequest, bool) {
	reqData, ok := c.Locals("validatedImageUpload").(*bureauValidator.ImageUploadRequest)
	return reqData, ok
}

func (h *BureauController) UploadBanner(c *fiber.Ctx) error {
	reqData, ok := uploadRequest(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide bureauId and an image to upload.", nil)
	}

	url, err := h.Attacher.SetBanner(reqData.BureauID, reqData.Image)
	if err != nil {
		return controllers.ServiceError(c, "uploading banner", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Banner uploaded successfully", fiber.Map{"imageUrl": url})
}

func (h *BureauController) AddSliderImage(c *fiber.Ctx) error {
	reqData, ok := uploadRequest(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide bureauId and an image to upload.", nil)
	}

	img, err := h.Attacher.AddSliderImage(reqData.BureauID, reqData.Image)
	if err != nil {
		return controllers.ServiceError(c, "adding slider image", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image uploaded successfully", fiber.Map{"id": img.ID, "imageUrl": img.ImageURL})
}

func (h *BureauController) AddGalleryImage(c *fiber.Ctx) error {
	reqData, ok := uploadRequest(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide bureauId and an image to upload.", nil)
	}

	img, err := h.Attacher.AddGalleryImage(reqData.BureauID, reqData.Image)
	if err != nil {
		return controllers.ServiceError(c, "adding gallery image", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image uploaded successfully", fiber.Map{"id": img.ID, "imageUrl": img.ImageURL})
}

// SliderImages lists the slider images of :bureauId; none at all is a 404.
func (h *BureauController) SliderImages(c *fiber.Ctx) error {
	bureauID := c.Params("bureauId")
	images, err := h.Attacher.SliderImages(bureauID)
	if err != nil {
		return controllers.ServiceError(c, "fetching slider images", err)
	}
	if len(images) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No images found for this bureau", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Slider images.", fiber.Map{"bureauId": bureauID, "images": images})
}

func (h *BureauController) GalleryImages(c *fiber.Ctx) error {
	bureauID := c.Params("bureauId")
	images, err := h.Attacher.GalleryImages(bureauID)
	if err != nil {
		return controllers.ServiceError(c, "fetching gallery images", err)
	}
	if len(images) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No images found for this bureau", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Gallery images.", fiber.Map{"bureauId": bureauID, "images": images})
}

func (h *BureauController) DeleteSliderImage(c *fiber.Ctx) error {
	id, _ := c.Locals("validatedImageId").(uint)
	if err := h.Attacher.DeleteSliderImage(id); err != nil {
		return controllers.ServiceError(c, "deleting slider image", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image deleted successfully", nil)
}

func (h *BureauController) DeleteGalleryImage(c *fiber.Ctx) error {
	id, _ := c.Locals("validatedImageId").(uint)
	if err := h.Attacher.DeleteGalleryImage(id); err != nil {
		return controllers.ServiceError(c, "deleting gallery image", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image deleted successfully", nil)
}
