package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/thebenetti7/escritor-fantasma/internal/api/handlers"
	"github.com/thebenetti7/escritor-fantasma/internal/service/ai"
	"github.com/thebenetti7/escritor-fantasma/internal/service/scraper"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, service *ai.Service, productScraper *scraper.Scraper) {
	// Initialize handlers
	generationHandler := handlers.NewGenerationHandler(service)
	analysisHandler := handlers.NewAnalysisHandler(service)
	imageHandler := handlers.NewImageHandler(service)
	productHandler := handlers.NewProductHandler(productScraper)

	// API group
	api := app.Group("/api")

	// Health check route
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	// Provider info
	api.Get("/provider", generationHandler.GetProvider)

	// Post generation
	posts := api.Group("/posts")
	posts.Post("/generate", generationHandler.GeneratePost)
	posts.Post("/compose", generationHandler.ComposePost)

	// Product analysis and preview
	products := api.Group("/products")
	products.Post("/analyze", analysisHandler.AnalyzeProduct)
	products.Get("/preview", productHandler.Preview)

	// Trend suggestions
	api.Post("/trends/suggest", analysisHandler.SuggestTrends)

	// Image variations
	api.Post("/images/variations", imageHandler.GenerateVariations)
}
