package distributorController

import (
	"log"
	"time"

	"matrimony/controllers"
	"matrimony/middleware"
	"matrimony/models"
	"matrimony/services"
	"matrimony/utils"
	authValidator "matrimony/validators/auth"
	distributorValidator "matrimony/validators/distributor"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DistributorController struct {
	Db           *gorm.DB
	Store        *utils.FileStore
	Registrar    *services.Registrar
	MaxDocuments int
}

func NewDistributorController(db *gorm.DB, store *utils.FileStore, registrar *services.Registrar, maxDocuments int) *DistributorController {
	return &DistributorController{Db: db, Store: store, Registrar: registrar, MaxDocuments: maxDocuments}
}

// Create registers a distributor with the files posted under "documents".
func (h *DistributorController) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedDistributor").(*distributorValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var createdAt time.Time
	if reqData.CreatedAt != "" {
		parsed, err := time.Parse(time.RFC3339, reqData.CreatedAt)
		if err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"createdAt": "createdAt must be an RFC 3339 timestamp!"})
		}
		createdAt = parsed
	}

	files, err := utils.FormFiles(c, "documents", h.MaxDocuments)
	if err != nil {
		return controllers.ServiceError(c, "reading distributor documents", err)
	}

	stored, err := h.Store.SaveAll(files, utils.FolderDocuments)
	if err != nil {
		log.Printf("Error saving distributor documents: %v", err)
		return middleware.ServerErrorResponse(c)
	}

	distributor := models.Distributor{
		FullName:      reqData.FullName,
		Email:         reqData.Email,
		MobileNumber:  reqData.MobileNumber,
		Location:      reqData.Location,
		PaymentStatus: reqData.PaymentStatus,
		CompanyName:   reqData.CompanyName,
		CreatedAt:     createdAt,
	}

	if err := h.Registrar.RegisterDistributor(&distributor, reqData.Password, stored); err != nil {
		return controllers.ServiceError(c, "creating distributor", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Distributor created successfully", fiber.Map{"id": distributor.ID})
}

func (h *DistributorController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := services.VerifyCredential(h.Db, &models.Distributor{}, reqData.Email, reqData.Password)
	if err != nil {
		return controllers.ServiceError(c, "during distributor login", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", fiber.Map{"id": id})
}

func (h *DistributorController) List(c *fiber.Ctx) error {
	distributors := []models.Distributor{}
	if err := h.Db.Order("id").Find(&distributors).Error; err != nil {
		log.Printf("Error fetching distributors: %v", err)
		return middleware.ServerErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Distributor list.", fiber.Map{"distributors": distributors})
}
