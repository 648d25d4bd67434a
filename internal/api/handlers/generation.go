package handlers

import (
	"context"
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/thebenetti7/escritor-fantasma/internal/service/ai"
)

// GenerationHandler handles post-generation requests
type GenerationHandler struct {
	Service *ai.Service
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(service *ai.Service) *GenerationHandler {
	return &GenerationHandler{Service: service}
}

// ComposeRequest asks for an article and its image variants in one call.
type ComposeRequest struct {
	Text   ai.GenerationParams `json:"text"`
	Images ai.ImageParams      `json:"images"`
}

// ComposeResponse is the combined editor payload.
type ComposeResponse struct {
	Article  *ai.Article       `json:"article"`
	Variants []ai.ImageVariant `json:"variants"`
}

// GeneratePost generates a full article from generation parameters.
func (h *GenerationHandler) GeneratePost(c *fiber.Ctx) error {
	params := new(ai.GenerationParams)
	if err := c.BodyParser(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
	}

	article, err := h.Service.GenerateText(c.UserContext(), params)
	if err != nil {
		return generationError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    article,
	})
}

// ComposePost generates the article and the image variants as two concurrent
// in-flight operations. Both must succeed; the editor never renders a partial
// result.
func (h *GenerationHandler) ComposePost(c *fiber.Ctx) error {
	req := new(ComposeRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
	}

	ctx, cancel := context.WithCancel(c.UserContext())
	defer cancel()

	var (
		wg       sync.WaitGroup
		article  *ai.Article
		variants []ai.ImageVariant
		textErr  error
		imgErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		article, textErr = h.Service.GenerateText(ctx, &req.Text)
	}()
	go func() {
		defer wg.Done()
		variants, imgErr = h.Service.GenerateImages(ctx, &req.Images)
	}()
	wg.Wait()

	if textErr != nil {
		return generationError(c, textErr)
	}
	if imgErr != nil {
		return generationError(c, imgErr)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": ComposeResponse{
			Article:  article,
			Variants: variants,
		},
	})
}

// GetProvider reports the active provider names.
func (h *GenerationHandler) GetProvider(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"text":  h.Service.ProviderName(),
			"image": h.Service.ImageProviderName(),
		},
	})
}

// generationError maps the error taxonomy onto HTTP statuses. Terminal
// generation failures surface as 502 with the human-readable cause so the
// consumer can show its error view.
func generationError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadGateway
	if errors.Is(err, ai.ErrInvalidProvider) {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
