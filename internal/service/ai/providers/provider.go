// Package providers contains the concrete text and image generation backends.
// Each text provider satisfies ai.TextGenerator; trend suggestion is an
// optional extra capability resolved by the service at install time.
package providers

import (
	"net/http"
	"time"

	"github.com/thebenetti7/escritor-fantasma/internal/service/ai"
)

const defaultTimeout = 30 * time.Second

// RetryPolicy controls exponential backoff on the post-generation path.
// MaxRetries may legitimately be zero: retries compound quota usage on free
// tiers, so disabling them is an operational choice, not an oversight.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// retryable reports whether an HTTP status marks transient backend
// unavailability. Everything else is terminal and never retried.
func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable
}

// SelectOptions carries the credentials and settings inspected when choosing
// the text provider at process start.
type SelectOptions struct {
	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	Retry     RetryPolicy
	MockDelay time.Duration
	Logger    ai.Logger
}

// SelectText picks the text provider by credential priority: Gemini first,
// then OpenAI, falling back to the deterministic offline provider when no
// credentials are configured.
func SelectText(opts SelectOptions) ai.TextGenerator {
	logger := opts.Logger
	if logger == nil {
		logger = &ai.DefaultLogger{}
	}

	if opts.GeminiAPIKey != "" {
		provider, err := NewGeminiProvider(opts.GeminiAPIKey, opts.GeminiBaseURL, opts.GeminiModel, opts.Retry, logger)
		if err == nil {
			return provider
		}
		logger.Error("Failed to initialize Gemini provider", "error", err)
	}

	if opts.OpenAIAPIKey != "" {
		provider, err := NewOpenAIProvider(opts.OpenAIAPIKey, opts.OpenAIBaseURL, opts.OpenAIModel, opts.Retry, logger)
		if err == nil {
			return provider
		}
		logger.Error("Failed to initialize OpenAI provider", "error", err)
	}

	logger.Info("No text generation credentials found, using mock provider")
	return NewMockTextProvider(opts.MockDelay)
}
