package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thebenetti7/escritor-fantasma/internal/service/ai"
)

// ImageHandler handles image variation requests
type ImageHandler struct {
	Service *ai.Service
}

// NewImageHandler creates a new image handler
func NewImageHandler(service *ai.Service) *ImageHandler {
	return &ImageHandler{Service: service}
}

// GenerateVariations produces a batch of image variants for a style.
func (h *ImageHandler) GenerateVariations(c *fiber.Ctx) error {
	params := new(ai.ImageParams)
	if err := c.BodyParser(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
	}

	variants, err := h.Service.GenerateImages(c.UserContext(), params)
	if err != nil {
		return generationError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    variants,
	})
}
