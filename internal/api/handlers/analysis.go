package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thebenetti7/escritor-fantasma/internal/service/ai"
)

// AnalysisHandler handles persona analysis and trend suggestion requests.
// Both operations degrade inside the providers, so these endpoints always
// answer 200 with displayable data once the request parses.
type AnalysisHandler struct {
	Service *ai.Service
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *ai.Service) *AnalysisHandler {
	return &AnalysisHandler{Service: service}
}

// AnalyzeRequest carries the product reference to classify
type AnalyzeRequest struct {
	Reference string `json:"reference"`
}

// TrendsRequest carries the (reference, persona) pair for trend suggestions
type TrendsRequest struct {
	Reference string `json:"reference"`
	Persona   string `json:"persona"`
}

// AnalyzeProduct infers the target persona for a product reference.
func (h *AnalysisHandler) AnalyzeProduct(c *fiber.Ctx) error {
	req := new(AnalyzeRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
	}

	if req.Reference == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Product reference is required",
		})
	}

	result, err := h.Service.AnalyzeProduct(c.UserContext(), req.Reference)
	if err != nil {
		return generationError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// SuggestTrends lists trending topics for a (reference, persona) pair. A
// provider without the capability yields an empty list, not an error.
func (h *AnalysisHandler) SuggestTrends(c *fiber.Ctx) error {
	req := new(TrendsRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
	}

	trends, err := h.Service.GetTrends(c.UserContext(), req.Reference, req.Persona)
	if err != nil {
		return generationError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    trends,
	})
}
