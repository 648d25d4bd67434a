package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/thebenetti7/escritor-fantasma/internal/service/ai"
)

// mockVariantCount is the fixed batch size per generation.
const mockVariantCount = 4

// MockImageProvider produces placeholder image variants. Real backends will
// replace it but must preserve the contract: a fixed batch of uniquely
// identified variants, each resolving to a displayable image.
type MockImageProvider struct {
	delay time.Duration
}

// NewMockImageProvider creates the placeholder image provider.
func NewMockImageProvider(delay time.Duration) *MockImageProvider {
	return &MockImageProvider{delay: delay}
}

// Name returns the provider name
func (p *MockImageProvider) Name() string {
	return "mock"
}

// GenerateVariations implements ai.ImageGenerator.
func (p *MockImageProvider) GenerateVariations(ctx context.Context, params *ai.ImageParams) ([]ai.ImageVariant, error) {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	variants := make([]ai.ImageVariant, 0, mockVariantCount)
	for i := 0; i < mockVariantCount; i++ {
		variants = append(variants, ai.ImageVariant{
			VariantID: "var-" + uuid.NewString(),
			URL:       fmt.Sprintf("https://placehold.co/600x400/0f172a/00e676?text=Variation+%d+%s", i+1, params.Style),
		})
	}

	return variants, nil
}
