package distributorValidator

import (
	"matrimony/middleware"
	"matrimony/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateRequest is the multipart (or JSON) body of POST /distributor/create.
type CreateRequest struct {
	FullName      string `json:"fullName" form:"fullName" validate:"required"`
	Email         string `json:"email" form:"email" validate:"required"`
	MobileNumber  string `json:"mobileNumber" form:"mobileNumber" validate:"required"`
	Password      string `json:"password" form:"password" validate:"required,max=72"`
	CompanyName   string `json:"companyName" form:"companyName" validate:"required"`
	Location      string `json:"location" form:"location"`
	PaymentStatus string `json:"paymentStatus" form:"paymentStatus"`
	CreatedAt     string `json:"createdAt" form:"createdAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
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

		c.Locals("validatedDistributor", reqData)
		return c.Next()
	}
}
