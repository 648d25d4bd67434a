package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	// Server
	Port         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Text providers. The base URLs are injectable so deployments can point
	// them at a reverse-proxy path instead of the real backend host.
	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// Generation policy. MaxRetries defaults to zero: a retry storm on the
	// free tier burns quota, so operators opt in explicitly.
	MaxRetries int
	RetryDelay time.Duration
	MockDelay  time.Duration

	// Rate limiting
	RateLimit float64
	RateBurst int

	// Cache. RedisURI empty means no shared cache layer.
	RedisURI string
	CacheTTL time.Duration

	// Scraper
	ScrapeTimeout time.Duration
}

// NewConfig creates a new configuration from environment variables
func NewConfig() *Config {
	readTimeoutSec, _ := strconv.Atoi(getEnv("READ_TIMEOUT", "5"))
	writeTimeoutSec, _ := strconv.Atoi(getEnv("WRITE_TIMEOUT", "60"))
	maxRetries, _ := strconv.Atoi(getEnv("AI_MAX_RETRIES", "0"))
	retryDelayMs, _ := strconv.Atoi(getEnv("AI_RETRY_DELAY_MS", "1000"))
	mockDelayMs, _ := strconv.Atoi(getEnv("MOCK_DELAY_MS", "2000"))
	rateLimit, _ := strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64)
	rateBurst, _ := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "1"))
	cacheTTLMin, _ := strconv.Atoi(getEnv("CACHE_TTL_MINUTES", "1440"))
	scrapeTimeoutSec, _ := strconv.Atoi(getEnv("SCRAPE_TIMEOUT", "15"))

	return &Config{
		// Server
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		ReadTimeout:  time.Duration(readTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(writeTimeoutSec) * time.Second,

		// Text providers
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", ""),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", ""),

		// Generation policy
		MaxRetries: maxRetries,
		RetryDelay: time.Duration(retryDelayMs) * time.Millisecond,
		MockDelay:  time.Duration(mockDelayMs) * time.Millisecond,

		// Rate limiting
		RateLimit: rateLimit,
		RateBurst: rateBurst,

		// Cache
		RedisURI: getEnv("REDIS_URI", ""),
		CacheTTL: time.Duration(cacheTTLMin) * time.Minute,

		// Scraper
		ScrapeTimeout: time.Duration(scrapeTimeoutSec) * time.Second,
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
