package adminController

import (
	"errors"
	"log"

	"matrimony/controllers"
	"matrimony/middleware"
	"matrimony/models"
	"matrimony/services"
	authValidator "matrimony/validators/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AdminController struct {
	Db *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{Db: db}
}

func (h *AdminController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := services.VerifyCredential(h.Db, &models.Admin{}, reqData.Email, reqData.Password)
	if err != nil {
		return controllers.ServiceError(c, "during admin login", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", fiber.Map{"id": id})
}

func (h *AdminController) List(c *fiber.Ctx) error {
	admins := []models.Admin{}
	if err := h.Db.Order("id").Find(&admins).Error; err != nil {
		log.Printf("Error fetching admins: %v", err)
		return middleware.ServerErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin list.", admins)
}

func (h *AdminController) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid admin id!", nil)
	}

	var admin models.Admin
	if err := h.Db.Take(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Admin not found", nil)
		}
		log.Printf("Error fetching admin %d: %v", id, err)
		return middleware.ServerErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin details.", admin)
}
