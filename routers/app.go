package routers

import (
	"matrimony/config"
	adminController "matrimony/controllers/admin"
	assetController "matrimony/controllers/asset"
	bureauController "matrimony/controllers/bureau"
	distributorController "matrimony/controllers/distributor"
	lookupController "matrimony/controllers/lookup"
	"matrimony/middleware"
	"matrimony/routers/adminRoutes"
	"matrimony/routers/assetRoutes"
	"matrimony/routers/bureauRoutes"
	"matrimony/routers/distributorRoutes"
	"matrimony/routers/lookupRoutes"
	"matrimony/services"
	"matrimony/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Dependencies are built once in main and shared by every controller.
type Dependencies struct {
	Db     *gorm.DB
	Config *config.Config
	Store  *utils.FileStore
}

func NewApp(deps Dependencies) *fiber.App {
	cfg := deps.Config

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    cfg.BodyLimitMB * 1024 * 1024,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	registrar := services.NewRegistrar(deps.Db, deps.Store, cfg.SaltRound, cfg.BureauIDAttempts)
	attacher := services.NewAttacher(deps.Db, deps.Store)

	api := app.Group("/api")

	adminRoutes.SetupAdminRoutes(api, adminController.NewAdminController(deps.Db))
	distributorRoutes.SetupDistributorRoutes(api, distributorController.NewDistributorController(deps.Db, deps.Store, registrar, cfg.MaxDocuments))

	bureauHandler := bureauController.NewBureauController(deps.Db, deps.Store, registrar, attacher, cfg.MaxDocuments)
	bureauRoutes.SetupBureauRoutes(api, bureauHandler)
	bureauRoutes.SetupImageRoutes(api, bureauHandler)

	lookupRoutes.SetupLookupRoutes(api, lookupController.NewLookupController(deps.Db))

	// last: catches any remaining /api/<a>/<b>
	assetRoutes.SetupAssetRoutes(api, assetController.NewAssetController(deps.Store))

	return app
}
