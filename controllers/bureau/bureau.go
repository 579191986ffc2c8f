package bureauController

import (
	"errors"
	"log"

	"matrimony/controllers"
	"matrimony/middleware"
	"matrimony/models"
	"matrimony/services"
	"matrimony/utils"
	authValidator "matrimony/validators/auth"
	bureauValidator "matrimony/validators/bureau"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BureauController struct {
	Db           *gorm.DB
	Store        *utils.FileStore
	Registrar    *services.Registrar
	Attacher     *services.Attacher
	MaxDocuments int
}

func NewBureauController(db *gorm.DB, store *utils.FileStore, registrar *services.Registrar, attacher *services.Attacher, maxDocuments int) *BureauController {
	return &BureauController{Db: db, Store: store, Registrar: registrar, Attacher: attacher, MaxDocuments: maxDocuments}
}

// Create registers a bureau under a distributor and answers with its new bureauId.
func (h *BureauController) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBureau").(*bureauValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	files, err := utils.FormFiles(c, "documents", h.MaxDocuments)
	if err != nil {
		return controllers.ServiceError(c, "reading bureau documents", err)
	}

	stored, err := h.Store.SaveAll(files, utils.FolderDocuments)
	if err != nil {
		log.Printf("Error saving bureau documents: %v", err)
		return middleware.ServerErrorResponse(c)
	}

	bureau := models.Bureau{
		BureauName:    reqData.BureauName,
		MobileNumber:  reqData.MobileNumber,
		About:         reqData.About,
		Location:      reqData.Location,
		Email:         reqData.Email,
		OwnerName:     reqData.OwnerName,
		PaymentStatus: reqData.PaymentStatus,
		DistributorID: reqData.DistributorID,
	}

	if err := h.Registrar.RegisterBureau(&bureau, reqData.Password, stored); err != nil {
		return controllers.ServiceError(c, "creating bureau", err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Bureau created successfully", fiber.Map{"bureauId": bureau.BureauID})
}

// Update changes the profile fields present in the request.
func (h *BureauController) Update(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBureauUpdate").(*bureauValidator.UpdateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var bureau models.Bureau
	if err := h.Db.Select("id").Where(&models.Bureau{BureauID: reqData.BureauID}).Take(&bureau).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Bureau not found", nil)
		}
		log.Printf("Error loading bureau %s: %v", reqData.BureauID, err)
		return middleware.ServerErrorResponse(c)
	}

	// MySQL reports unchanged rows as unaffected, so existence is checked above.
	if err := h.Db.Model(&models.Bureau{}).Where("id = ?", bureau.ID).Updates(reqData.Changes()).Error; err != nil {
		log.Printf("Error updating bureau %s: %v", reqData.BureauID, err)
		return middleware.ServerErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bureau updated successfully", nil)
}

func (h *BureauController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	bureauID, err := services.VerifyCredential(h.Db, &models.Bureau{}, reqData.Email, reqData.Password)
	if err != nil {
		return controllers.ServiceError(c, "during bureau login", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", fiber.Map{"id": bureauID})
}

func (h *BureauController) Profiles(c *fiber.Ctx) error {
	return h.profiles(c, &models.Bureau{})
}

func (h *BureauController) ProfilesByDistributor(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedDistributorQuery").(*bureauValidator.DistributorQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "distributorId is required", nil)
	}
	return h.profiles(c, &models.Bureau{DistributorID: query.DistributorID})
}

func (h *BureauController) ProfileByBureauID(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedBureauIdQuery").(*bureauValidator.BureauIDQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "bureauId is required", nil)
	}
	return h.profiles(c, &models.Bureau{BureauID: query.BureauID})
}

func (h *BureauController) profiles(c *fiber.Ctx, filter *models.Bureau) error {
	profiles := []models.Bureau{}
	if err := h.Db.Where(filter).Order("id").Find(&profiles).Error; err != nil {
		log.Printf("Error fetching bureau profiles: %v", err)
		return middleware.ServerErrorResponse(c)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bureau profiles.", fiber.Map{"bureauProfiles": profiles})
}
