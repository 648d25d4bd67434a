package providers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebenetti7/escritor-fantasma/internal/service/ai"
)

func TestMockGeneratePostEchoesSubject(t *testing.T) {
	const delay = 30 * time.Millisecond
	provider := NewMockTextProvider(delay)

	start := time.Now()
	article, err := provider.GeneratePost(context.Background(), &ai.GenerationParams{
		ProductRef: "shoe-x",
		Tone:       ai.ToneJournalistic,
	})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Contains(t, article.Title, "shoe-x")
	assert.GreaterOrEqual(t, len(article.Sections), 1)
	assert.GreaterOrEqual(t, elapsed, delay, "must simulate latency")
}

func TestMockGeneratePostWithoutSubject(t *testing.T) {
	provider := NewMockTextProvider(0)

	article, err := provider.GeneratePost(context.Background(), &ai.GenerationParams{Tone: ai.ToneSerious})

	require.NoError(t, err)
	assert.Contains(t, article.Title, "Este Produto")
}

func TestMockGeneratePostSectionSkeleton(t *testing.T) {
	provider := NewMockTextProvider(0)

	article, err := provider.GeneratePost(context.Background(), &ai.GenerationParams{Topic: "tenis"})
	require.NoError(t, err)

	require.Len(t, article.Sections, 5)
	assert.Equal(t, "Abertura", article.Sections[0].Heading)

	var buyCount, categoryCount int
	for _, section := range article.Sections {
		switch section.CTA {
		case ai.CTABuy:
			buyCount++
		case ai.CTACategory:
			categoryCount++
		}
	}
	assert.Equal(t, 2, buyCount)
	assert.Equal(t, 1, categoryCount)
}

func TestMockAnalyzeProduct(t *testing.T) {
	provider := NewMockTextProvider(0)

	result, err := provider.AnalyzeProduct(context.Background(), "shoe-x")

	require.NoError(t, err)
	assert.NotEmpty(t, result.Persona)
	assert.Contains(t, result.Reason, "shoe-x")
}

func TestMockSuggestTrends(t *testing.T) {
	provider := NewMockTextProvider(0)

	trends, err := provider.SuggestTrends(context.Background(), "shoe-x", "Corredor")

	require.NoError(t, err)
	assert.Len(t, trends, 3)
}

func TestMockGeneratePostCancellation(t *testing.T) {
	provider := NewMockTextProvider(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.GeneratePost(ctx, &ai.GenerationParams{Topic: "tenis"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockImageVariants(t *testing.T) {
	provider := NewMockImageProvider(0)

	variants, err := provider.GenerateVariations(context.Background(), &ai.ImageParams{
		Style:          ai.StylePhotorealistic,
		PromptModifier: "on a marble table",
	})
	require.NoError(t, err)

	require.Len(t, variants, 4)

	seen := make(map[string]bool)
	for _, variant := range variants {
		assert.NotEmpty(t, variant.VariantID)
		assert.False(t, seen[variant.VariantID], "variant IDs must be unique per batch")
		seen[variant.VariantID] = true
		assert.True(t, strings.Contains(variant.URL, "photorealistic"))
	}
}

func TestSelectTextCredentialPriority(t *testing.T) {
	tests := []struct {
		name     string
		opts     SelectOptions
		expected string
	}{
		{
			name:     "gemini wins when both keys present",
			opts:     SelectOptions{GeminiAPIKey: "g-key", OpenAIAPIKey: "o-key"},
			expected: "google",
		},
		{
			name:     "openai when only its key present",
			opts:     SelectOptions{OpenAIAPIKey: "o-key"},
			expected: "openai",
		},
		{
			name:     "mock when no credentials",
			opts:     SelectOptions{},
			expected: "mock",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := SelectText(tt.opts)
			assert.Equal(t, tt.expected, provider.Name())
		})
	}
}
