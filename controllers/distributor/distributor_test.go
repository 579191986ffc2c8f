package distributorController_test

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	distributorController "matrimony/controllers/distributor"
	"matrimony/middleware"
	"matrimony/models"
	"matrimony/services"
	"matrimony/testutil"
	"matrimony/utils"
	distributorValidator "matrimony/validators/distributor"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newApp mounts Create behind a stub that hands it reqData as if validated.
func newApp(t *testing.T, reqData *distributorValidator.CreateRequest) (*fiber.App, *gorm.DB, *utils.FileStore) {
	cfg := testutil.Config(t)
	db := testutil.SetupTestDB(t, cfg)
	store := testutil.SetupStore(t, cfg)
	registrar := services.NewRegistrar(db, store, 4, cfg.BureauIDAttempts)
	h := distributorController.NewDistributorController(db, store, registrar, cfg.MaxDocuments)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	app.Post("/create", func(c *fiber.Ctx) error {
		c.Locals("validatedDistributor", reqData)
		return c.Next()
	}, h.Create)
	return app, db, store
}

func request(fullName, createdAt string) *distributorValidator.CreateRequest {
	return &distributorValidator.CreateRequest{
		FullName:     fullName,
		Email:        "a@x.com",
		MobileNumber: "123",
		Password:     "p",
		CompanyName:  "C",
		CreatedAt:    createdAt,
	}
}

func TestCreateRejectsUnparsableCreatedAt(t *testing.T) {
	app, db, store := newApp(t, request("A", "yesterday"))

	reader, contentType := testutil.MultipartBody(t, nil, testutil.File{Field: "documents", Name: "d.pdf", Content: []byte("x")})
	req := httptest.NewRequest("POST", "/create", reader)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var count int64
	db.Model(&models.Distributor{}).Count(&count)
	assert.Zero(t, count)
	entries, err := os.ReadDir(filepath.Join(store.Root, utils.FolderDocuments))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateKeepsExplicitCreatedAt(t *testing.T) {
	app, db, _ := newApp(t, request("A", "2024-03-01T10:00:00Z"))

	resp, err := app.Test(httptest.NewRequest("POST", "/create", nil), -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var saved models.Distributor
	require.NoError(t, db.Take(&saved).Error)
	assert.True(t, saved.CreatedAt.Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)), saved.CreatedAt)
}
