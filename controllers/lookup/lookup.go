package lookupController

import (
	"log"

	"matrimony/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LookupController struct {
	Db *gorm.DB
}

func NewLookupController(db *gorm.DB) *LookupController {
	return &LookupController{Db: db}
}

// Table returns a handler that reads every row of table. The name is bound
// when routes are registered and never comes from the request.
func (h *LookupController) Table(table string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var rows []map[string]interface{}
		if err := h.Db.Table(table).Find(&rows).Error; err != nil {
			log.Printf("Error reading %s: %v", table, err)
			return middleware.ServerErrorResponse(c)
		}
		if rows == nil {
			rows = []map[string]interface{}{}
		}
		return c.Status(fiber.StatusOK).JSON(rows)
	}
}
