package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thebenetti7/escritor-fantasma/internal/service/scraper"
)

// ProductHandler serves product page previews
type ProductHandler struct {
	Scraper *scraper.Scraper
}

// NewProductHandler creates a new product handler
func NewProductHandler(s *scraper.Scraper) *ProductHandler {
	return &ProductHandler{Scraper: s}
}

// Preview fetches a product URL and returns its page metadata so the UI can
// show a product card before generating anything.
func (h *ProductHandler) Preview(c *fiber.Ctx) error {
	rawURL := c.Query("url")
	if rawURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Query parameter 'url' is required",
		})
	}

	page, err := h.Scraper.FetchProduct(c.UserContext(), rawURL)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    page,
	})
}
