package ai

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/thebenetti7/escritor-fantasma/internal/database"
)

// Logger interface for service logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// DefaultLogger provides a basic implementation of the Logger interface
type DefaultLogger struct{}

func (l *DefaultLogger) Debug(msg string, keysAndValues ...interface{}) {
	log.Printf("[DEBUG] %s %v", msg, keysAndValues)
}

func (l *DefaultLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Printf("[INFO] %s %v", msg, keysAndValues)
}

func (l *DefaultLogger) Error(msg string, keysAndValues ...interface{}) {
	log.Printf("[ERROR] %s %v", msg, keysAndValues)
}

// Service is the single selection and access point for generation
// capabilities. It holds no generation logic itself: one text provider and
// one image provider are installed at construction and every operation
// delegates to them. Providers can be swapped at runtime.
type Service struct {
	mu       sync.RWMutex
	text     TextGenerator
	trends   TrendSuggester // nil when the text provider lacks the capability
	image    ImageGenerator
	redis    *database.RedisClient // optional shared cache, nil-safe
	limiter  *rate.Limiter
	cacheTTL time.Duration
	logger   Logger
}

// ServiceOptions contains configuration for the AI service
type ServiceOptions struct {
	TextProvider  TextGenerator
	ImageProvider ImageGenerator
	RedisClient   *database.RedisClient
	RateLimit     rate.Limit
	RateBurst     int
	CacheTTL      time.Duration
	Logger        Logger
}

// NewService creates a new AI service with the specified options.
func NewService(opts ServiceOptions) *Service {
	if opts.CacheTTL == 0 {
		opts.CacheTTL = 24 * time.Hour
	}
	if opts.RateLimit == 0 {
		opts.RateLimit = rate.Limit(10)
	}
	if opts.RateBurst == 0 {
		opts.RateBurst = 1
	}
	if opts.Logger == nil {
		opts.Logger = &DefaultLogger{}
	}

	s := &Service{
		redis:    opts.RedisClient,
		limiter:  rate.NewLimiter(opts.RateLimit, opts.RateBurst),
		cacheTTL: opts.CacheTTL,
		logger:   opts.Logger,
	}

	if opts.TextProvider != nil {
		s.SetTextProvider(opts.TextProvider)
	}
	if opts.ImageProvider != nil {
		s.SetImageProvider(opts.ImageProvider)
	}

	return s
}

// SetTextProvider installs a text provider, resolving the optional trend
// capability once at install time rather than probing on every call.
func (s *Service) SetTextProvider(provider TextGenerator) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.text = provider
	s.trends, _ = provider.(TrendSuggester)

	s.logger.Info("Installed text provider",
		"provider", provider.Name(),
		"trends", s.trends != nil)
}

// SetImageProvider installs an image provider.
func (s *Service) SetImageProvider(provider ImageGenerator) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.image = provider

	s.logger.Info("Installed image provider", "provider", provider.Name())
}

// ProviderName returns the name of the active text provider.
func (s *Service) ProviderName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.text == nil {
		return ""
	}
	return s.text.Name()
}

// ImageProviderName returns the name of the active image provider.
func (s *Service) ImageProviderName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.image == nil {
		return ""
	}
	return s.image.Name()
}

func (s *Service) textProvider() (TextGenerator, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.text == nil {
		return nil, fmt.Errorf("%w: no text provider installed", ErrInvalidProvider)
	}
	return s.text, nil
}

// GenerateText generates a full article through the active text provider.
// Failures are terminal and must be surfaced to the caller as an error state;
// there is no fallback content.
func (s *Service) GenerateText(ctx context.Context, params *GenerationParams) (*Article, error) {
	provider, err := s.textProvider()
	if err != nil {
		return nil, err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		s.logger.Error("Rate limit wait aborted", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
	}

	startTime := time.Now()
	article, err := provider.GeneratePost(ctx, params)
	if err != nil {
		s.logger.Error("Post generation failed",
			"provider", provider.Name(),
			"error", err)
		return nil, err
	}

	s.logger.Info("Generated article",
		"provider", provider.Name(),
		"sections", len(article.Sections),
		"time", time.Since(startTime))

	return article, nil
}

// AnalyzeProduct infers the persona for a product reference. The result is
// always displayable: providers degrade to a generic persona on failure, so
// an error here only means no provider is installed.
func (s *Service) AnalyzeProduct(ctx context.Context, productRef string) (*AnalysisResult, error) {
	provider, err := s.textProvider()
	if err != nil {
		return nil, err
	}

	cacheKey := "ghost:analysis:" + productRef
	if s.redis != nil {
		var cached AnalysisResult
		if err := s.redis.Get(ctx, cacheKey, &cached); err == nil {
			s.logger.Debug("Shared cache hit for analysis", "ref", productRef)
			return &cached, nil
		}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
	}

	result, err := provider.AnalyzeProduct(ctx, productRef)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
			s.logger.Error("Failed to cache analysis", "error", err)
		}
	}

	return result, nil
}

// GetTrends lists trending topics for a (reference, persona) pair. When the
// active text provider lacks the capability it returns an empty list, never
// an error.
func (s *Service) GetTrends(ctx context.Context, productRef, persona string) ([]string, error) {
	s.mu.RLock()
	suggester := s.trends
	s.mu.RUnlock()

	if suggester == nil {
		return []string{}, nil
	}

	cacheKey := "ghost:trends:" + productRef + ":" + persona
	if s.redis != nil {
		var cached []string
		if err := s.redis.Get(ctx, cacheKey, &cached); err == nil && len(cached) > 0 {
			s.logger.Debug("Shared cache hit for trends", "ref", productRef, "persona", persona)
			return cached, nil
		}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRateLimited, err)
	}

	trends, err := suggester.SuggestTrends(ctx, productRef, persona)
	if err != nil {
		return nil, err
	}

	if s.redis != nil && len(trends) > 0 {
		if err := s.redis.Set(ctx, cacheKey, trends, s.cacheTTL); err != nil {
			s.logger.Error("Failed to cache trends", "error", err)
		}
	}

	return trends, nil
}

// GenerateImages produces image variants through the active image provider.
func (s *Service) GenerateImages(ctx context.Context, params *ImageParams) ([]ImageVariant, error) {
	s.mu.RLock()
	provider := s.image
	s.mu.RUnlock()

	if provider == nil {
		return nil, fmt.Errorf("%w: no image provider installed", ErrInvalidProvider)
	}

	return provider.GenerateVariations(ctx, params)
}

// Close releases the active text provider's resources.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.text == nil {
		return nil
	}
	return s.text.Close()
}
