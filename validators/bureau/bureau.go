package bureauValidator

import (
	"mime/multipart"
	"strings"

	"matrimony/middleware"
	"matrimony/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest is the multipart (or JSON) body of POST /bureau/create.
type CreateRequest struct {
	BureauName    string `json:"bureauName" form:"bureauName" validate:"required"`
	MobileNumber  string `json:"mobileNumber" form:"mobileNumber" validate:"required"`
	About         string `json:"about" form:"about"`
	Location      string `json:"location" form:"location"`
	Email         string `json:"email" form:"email" validate:"required"`
	OwnerName     string `json:"ownerName" form:"ownerName" validate:"required"`
	PaymentStatus string `json:"paymentStatus" form:"paymentStatus"`
	DistributorID uint   `json:"distributorId" form:"distributorId" validate:"required"`
	Password      string `json:"password" form:"password" validate:"required,max=72"`
}

// UpdateRequest carries the bureauId plus the profile fields to change.
// Empty fields are left untouched.
type UpdateRequest struct {
	BureauID     string `json:"bureauId" validate:"required"`
	BureauName   string `json:"bureauName"`
	MobileNumber string `json:"mobileNumber"`
	About        string `json:"about"`
	Location     string `json:"location"`
}

// Changes maps column names to the values present in the request.
func (r *UpdateRequest) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if r.BureauName != "" {
		changes["bureauName"] = r.BureauName
	}
	if r.MobileNumber != "" {
		changes["mobileNumber"] = r.MobileNumber
	}
	if r.About != "" {
		changes["about"] = r.About
	}
	if r.Location != "" {
		changes["location"] = r.Location
	}
	return changes
}

// ImageUploadRequest is a bureauId form field plus the "image" file.
type ImageUploadRequest struct {
	BureauID string                `form:"bureauId" validate:"required"`
	Image    *multipart.FileHeader `form:"-"`
}

type DistributorQuery struct {
	DistributorID uint `query:"distributorId" validate:"required"`
}

type BureauIDQuery struct {
	BureauID string `query:"bureauId" validate:"required"`
}

// Create validator middleware
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBureau", reqData)
		return c.Next()
	}
}

// Update validator middleware
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := validators.Check(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}
		if len(reqData.Changes()) == 0 {
			errors["fields"] = "Provide at least one field to update!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBureauUpdate", reqData)
		return c.Next()
	}
}

// ImageUpload validates the bureauId + image multipart form used by the
// banner, slider and gallery uploads. Nothing is written on failure.
func ImageUpload() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &ImageUploadRequest{BureauID: strings.TrimSpace(c.FormValue("bureauId"))}

		errors := validators.Check(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}
		file, err := c.FormFile("image")
		if err != nil {
			errors["image"] = "image is required!"
		} else {
			reqData.Image = file
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedImageUpload", reqData)
		return c.Next()
	}
}

// ProfilesByDistributor validates ?distributorId=
func ProfilesByDistributor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(DistributorQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"distributorId": "distributorId must be numeric!"})
		}

		if errors := validators.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDistributorQuery", reqData)
		return c.Next()
	}
}

// ProfileByBureauID validates ?bureauId=
func ProfileByBureauID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(BureauIDQuery)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query!", nil)
		}

		if errors := validators.Check(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBureauIdQuery", reqData)
		return c.Next()
	}
}

// ImageID validates the :imageId path parameter.
func ImageID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("imageId")
		if err != nil || id <= 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{"imageId": "imageId must be a positive number!"})
		}

		c.Locals("validatedImageId", uint(id))
		return c.Next()
	}
}
