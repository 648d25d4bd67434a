package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/thebenetti7/escritor-fantasma/internal/api"
	"github.com/thebenetti7/escritor-fantasma/internal/config"
	"github.com/thebenetti7/escritor-fantasma/internal/database"
	"github.com/thebenetti7/escritor-fantasma/internal/service/ai"
	"github.com/thebenetti7/escritor-fantasma/internal/service/ai/providers"
	"github.com/thebenetti7/escritor-fantasma/internal/service/scraper"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Initialize configuration
	cfg := config.NewConfig()

	// Connect to Redis when a shared cache is configured
	var redisClient *database.RedisClient
	if cfg.RedisURI != "" {
		var err error
		redisClient, err = database.InitRedis(cfg.RedisURI)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
	}

	// Select providers by credential priority and build the AI service
	aiLogger := &ai.DefaultLogger{}
	textProvider := providers.SelectText(providers.SelectOptions{
		GeminiAPIKey:  cfg.GeminiAPIKey,
		GeminiBaseURL: cfg.GeminiBaseURL,
		GeminiModel:   cfg.GeminiModel,
		OpenAIAPIKey:  cfg.OpenAIAPIKey,
		OpenAIBaseURL: cfg.OpenAIBaseURL,
		OpenAIModel:   cfg.OpenAIModel,
		Retry: providers.RetryPolicy{
			MaxRetries: cfg.MaxRetries,
			BaseDelay:  cfg.RetryDelay,
		},
		MockDelay: cfg.MockDelay,
		Logger:    aiLogger,
	})

	service := ai.NewService(ai.ServiceOptions{
		TextProvider:  textProvider,
		ImageProvider: providers.NewMockImageProvider(cfg.MockDelay),
		RedisClient:   redisClient,
		RateLimit:     rate.Limit(cfg.RateLimit),
		RateBurst:     cfg.RateBurst,
		CacheTTL:      cfg.CacheTTL,
		Logger:        aiLogger,
	})
	defer service.Close()

	productScraper := scraper.New(cfg.ScrapeTimeout)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH",
	}))

	// Setup routes
	api.SetupRoutes(app, service, productScraper)

	// Start server
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
}
