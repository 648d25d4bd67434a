package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/thebenetti7/escritor-fantasma/internal/service/ai"
)

// MockTextProvider is the deterministic offline stand-in used when no
// credentials are configured. It simulates network latency, echoes the input
// parameters into canned content and never fails.
type MockTextProvider struct {
	delay time.Duration
}

// NewMockTextProvider creates the offline provider. A zero delay disables the
// simulated latency, which tests rely on.
func NewMockTextProvider(delay time.Duration) *MockTextProvider {
	return &MockTextProvider{delay: delay}
}

// Name returns the provider name
func (p *MockTextProvider) Name() string {
	return "mock"
}

func (p *MockTextProvider) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// GeneratePost implements ai.TextGenerator with canned content.
func (p *MockTextProvider) GeneratePost(ctx context.Context, params *ai.GenerationParams) (*ai.Article, error) {
	if err := p.wait(ctx, p.delay); err != nil {
		return nil, err
	}

	subject := params.Subject()
	if subject == "" {
		subject = "Este Produto"
	}

	return &ai.Article{
		Title:       fmt.Sprintf("Por que %s é a Revolução Que Você Esperava", subject),
		SEOKeywords: []string{"esporte", "performance", "tecnologia", subject},
		Sections: []ai.Section{
			{
				Heading: "Abertura",
				Content: fmt.Sprintf("<p>Você já se imaginou cruzando a linha de chegada com a mesma energia de quem acabou de começar? É exatamente essa a promessa do <strong>%s</strong>. A escolha certa pode ser o plot twist da sua jornada.</p>", subject),
			},
			{
				Heading: "Contexto Cultural & Lifestyle",
				Content: fmt.Sprintf("<p>Vivemos o boom da \"estética atlética\". Não é mais apenas sobre treinar, é sobre o lifestyle. O %s é um passaporte para essa comunidade que valoriza saúde e estilo em igual medida.</p>", subject),
			},
			{
				Heading: "O Produto como Protagonista",
				Content: "<p>Esqueça os termos técnicos chatos. Imagine pisar em nuvens, mas com propulsão de foguete. O cabedal respirável é como um ar-condicionado para os dias de verão.</p>",
				CTA:     ai.CTABuy,
			},
			{
				Heading: "Como Usar (Styling)",
				Content: "<p>Para um look treino impecável: combine com shorts de compressão pretos e uma regata neon. Para o pós-treino casual: vai super bem com uma calça jogger cinza e moletom oversized.</p>",
				CTA:     ai.CTACategory,
			},
			{
				Heading: "Veredito Final",
				Content: "<p>Se você quer elevar seu nível sem quebrar o banco, essa é a pedida. Não seja apenas mais um na multidão.</p>",
				CTA:     ai.CTABuy,
			},
		},
	}, nil
}

// AnalyzeProduct implements ai.TextGenerator with a simulated analysis.
func (p *MockTextProvider) AnalyzeProduct(ctx context.Context, productRef string) (*ai.AnalysisResult, error) {
	if err := p.wait(ctx, p.delay); err != nil {
		return nil, err
	}

	return &ai.AnalysisResult{
		Persona: "Corredor de Performance (Mock)",
		Reason:  fmt.Sprintf("Identificado com base na análise simulada de palavras-chave de %s.", productRef),
	}, nil
}

// SuggestTrends implements ai.TrendSuggester with canned trends.
func (p *MockTextProvider) SuggestTrends(ctx context.Context, productRef, persona string) ([]string, error) {
	if err := p.wait(ctx, p.delay); err != nil {
		return nil, err
	}

	return []string{
		"Estética 'Old Money' Esportiva",
		"Treino Híbrido (Crossfit + Corrida)",
		"Sustentabilidade em Alta Performance",
	}, nil
}

// Close implements ai.TextGenerator.
func (p *MockTextProvider) Close() error {
	return nil
}
