package assetController

import (
	"errors"
	"log"
	"net/url"
	"os"
	"path/filepath"

	"matrimony/middleware"
	"matrimony/utils"

	"github.com/gofiber/fiber/v2"
)

type AssetController struct {
	Store *utils.FileStore
}

func NewAssetController(store *utils.FileStore) *AssetController {
	return &AssetController{Store: store}
}

// Serve answers GET /:folder/:imageName from the upload folders.
func (h *AssetController) Serve(c *fiber.Ctx) error {
	// Fiber leaves params percent-encoded; stored names may contain spaces.
	folder, errFolder := url.PathUnescape(c.Params("folder"))
	name, errName := url.PathUnescape(c.Params("imageName"))
	if errFolder != nil || errName != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid file name", nil)
	}

	path, err := h.Store.Resolve(folder, name)
	switch {
	case errors.Is(err, utils.ErrFolderNotAllowed):
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access to this folder is not allowed", nil)
	case errors.Is(err, utils.ErrInvalidName):
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid file name", nil)
	case errors.Is(err, utils.ErrFileNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "File not found", nil)
	case err != nil:
		log.Printf("Error resolving %s: %v", c.Path(), err)
		return middleware.ServerErrorResponse(c)
	}

	// SendFile re-parses the path as a URI, which breaks on names with '%', '?' or '#'.
	f, err := os.Open(path)
	if err != nil {
		log.Printf("Error opening %s: %v", path, err)
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "File not found", nil)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		log.Printf("Error reading %s: %v", path, err)
		return middleware.ServerErrorResponse(c)
	}

	if ext := filepath.Ext(name); ext != "" {
		c.Type(ext)
	}
	return c.SendStream(f, int(info.Size()))
}
