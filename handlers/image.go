package handlers

import (
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	apierrors "after-school-api/errors"
)

// ImageHandler serves lesson icons from a local directory.
type ImageHandler struct {
	dir string
}

func NewImageHandler(dir string) *ImageHandler {
	return &ImageHandler{dir: dir}
}

func (h *ImageHandler) GetImage(c *fiber.Ctx) error {
	// Base strips any path the client smuggled into the segment.
	name := filepath.Base(c.Params("filename"))
	path := filepath.Join(h.dir, name)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return apierrors.RaiseNotFoundError(c, "Image not found")
	}

	return c.SendFile(path)
}
