package ai

import "context"

// TextGenerator is the capability set every text backend must implement.
type TextGenerator interface {
	// GeneratePost turns generation parameters into a full article.
	GeneratePost(ctx context.Context, params *GenerationParams) (*Article, error)

	// AnalyzeProduct classifies a product reference into a persona. It must
	// always resolve to a displayable result, degrading instead of failing.
	AnalyzeProduct(ctx context.Context, productRef string) (*AnalysisResult, error)

	// Name returns the provider name.
	Name() string

	// Close releases any resources held by the provider.
	Close() error
}

// TrendSuggester is an optional capability of a text provider. Callers must
// treat its absence as "no trends available", never as an error.
type TrendSuggester interface {
	// SuggestTrends lists trending topics connecting the product and persona.
	SuggestTrends(ctx context.Context, productRef, persona string) ([]string, error)
}

// ImageGenerator is the capability set every image backend must implement.
type ImageGenerator interface {
	// GenerateVariations produces a batch of image variants for a style.
	GenerateVariations(ctx context.Context, params *ImageParams) ([]ImageVariant, error)

	// Name returns the provider name.
	Name() string
}
