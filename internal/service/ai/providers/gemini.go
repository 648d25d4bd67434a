package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/thebenetti7/escritor-fantasma/internal/service/ai"
	"github.com/thebenetti7/escritor-fantasma/internal/service/ai/prompts"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel   = "gemini-2.0-flash"
)

// GeminiProvider implements the text capabilities against Google's Gemini
// generateContent endpoint. The base URL is injectable so deployments can
// route requests through a reverse-proxy path that keeps the credential off
// the public request path; the key travels as a query parameter, which is how
// this API authenticates.
type GeminiProvider struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     ai.Logger
	generator  *prompts.Generator
	retry      RetryPolicy
	cache      *providerCache
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

// geminiRequest is the request envelope for generateContent.
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

// geminiResponse carries the generated text inside the first candidate.
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

var geminiTrendFallback = []string{
	"Tendências Gerais do Verão",
	"Dicas de Estilo Casual",
	"Performance Esportiva",
}

// NewGeminiProvider creates a new Gemini provider.
func NewGeminiProvider(apiKey, baseURL, model string, retry RetryPolicy, logger ai.Logger) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	if model == "" {
		model = defaultGeminiModel
	}
	if logger == nil {
		logger = &ai.DefaultLogger{}
	}

	return &GeminiProvider{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
		generator:  prompts.NewGenerator(),
		retry:      retry,
		cache:      newProviderCache(),
	}, nil
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "google"
}

// GeneratePost implements ai.TextGenerator. Transient backend failures are
// retried per policy; a response that cannot be parsed into the article shape
// is a terminal failure, never silently defaulted.
func (p *GeminiProvider) GeneratePost(ctx context.Context, params *ai.GenerationParams) (*ai.Article, error) {
	prompt := p.generator.PostPrompt(params)

	text, err := p.executePrompt(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var article ai.Article
	if err := json.Unmarshal([]byte(ai.StripCodeFences(text)), &article); err != nil {
		p.logger.Error("Failed to parse Gemini article JSON",
			"error", err,
			"content", text)
		return nil, fmt.Errorf("%w: %v", ai.ErrMalformedOutput, err)
	}

	if article.Title == "" || len(article.Sections) == 0 {
		return nil, fmt.Errorf("%w: artigo sem título ou sem seções", ai.ErrMalformedOutput)
	}

	return &article, nil
}

// executePrompt runs the generation request with exponential backoff on
// rate-limit and overload responses.
func (p *GeminiProvider) executePrompt(ctx context.Context, prompt string) (string, error) {
	delay := p.retry.BaseDelay

	for attempt := 0; ; attempt++ {
		text, status, err := p.call(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ai.ErrGenerationFailed, err)
		}
		if status == http.StatusOK {
			return text, nil
		}

		if !retryable(status) {
			return "", fmt.Errorf("%w: Gemini API respondeu %d", ai.ErrGenerationFailed, status)
		}

		if attempt >= p.retry.MaxRetries {
			return "", fmt.Errorf("%w: não foi possível gerar o conteúdo. O serviço do Gemini está instável ou o limite de requisições foi atingido. Tente novamente em 1 minuto", ai.ErrRateLimited)
		}

		p.logger.Info("Transient Gemini error, retrying",
			"status", status,
			"attempt", attempt+1,
			"delay", delay)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
		delay *= 2
	}
}

// AnalyzeProduct implements ai.TextGenerator. It degrades to a displayable
// fallback on any failure and caches successes by the exact reference string.
func (p *GeminiProvider) AnalyzeProduct(ctx context.Context, productRef string) (*ai.AnalysisResult, error) {
	if cached, ok := p.cache.analysis(productRef); ok {
		p.logger.Debug("Serving cached analysis", "ref", productRef)
		return cached, nil
	}

	text, status, err := p.call(ctx, p.generator.AnalysisPrompt(productRef))
	if err != nil {
		p.logger.Error("Product analysis failed", "error", err)
		return &ai.AnalysisResult{Persona: "Consumidor Padrão", Reason: "Análise indisponível."}, nil
	}
	if status != http.StatusOK {
		p.logger.Error("Gemini analysis error", "status", status)
		return &ai.AnalysisResult{
			Persona: "Erro de Conexão",
			Reason:  fmt.Sprintf("Erro %d. Aguarde um instante e tente de novo.", status),
		}, nil
	}

	var result ai.AnalysisResult
	if err := json.Unmarshal([]byte(ai.StripCodeFences(text)), &result); err != nil || result.Persona == "" {
		p.logger.Error("Failed to parse analysis JSON", "error", err, "content", text)
		return &ai.AnalysisResult{Persona: "Consumidor Padrão", Reason: "Análise indisponível."}, nil
	}

	p.cache.storeAnalysis(productRef, &result)
	return &result, nil
}

// SuggestTrends implements ai.TrendSuggester. Failures and empty results
// resolve to a fixed fallback list; non-empty successes are cached per
// (reference, persona) pair.
func (p *GeminiProvider) SuggestTrends(ctx context.Context, productRef, persona string) ([]string, error) {
	key := trendKey(productRef, persona)
	if cached, ok := p.cache.trendList(key); ok {
		p.logger.Debug("Serving cached trends", "key", key)
		return cached, nil
	}

	text, status, err := p.call(ctx, p.generator.TrendsPrompt(productRef, persona))
	if err != nil || status != http.StatusOK {
		p.logger.Error("Trend suggestion failed", "error", err, "status", status)
		return geminiTrendFallback, nil
	}

	trends := parseTrendList(ai.StripCodeFences(text))
	if len(trends) == 0 {
		return geminiTrendFallback, nil
	}

	p.cache.storeTrends(key, trends)
	return trends, nil
}

// call issues a single generateContent request and extracts the candidate
// text. A nil error with a non-200 status leaves the retry decision to the
// caller; errors are transport or envelope failures.
func (p *GeminiProvider) call(ctx context.Context, prompt string) (string, int, error) {
	requestBody, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", p.baseURL, p.model, p.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", resp.StatusCode, nil
	}

	var envelope geminiResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", resp.StatusCode, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return "", resp.StatusCode, errors.New("empty candidate content")
	}

	var text strings.Builder
	for _, part := range envelope.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	return text.String(), resp.StatusCode, nil
}

// Close implements ai.TextGenerator.
func (p *GeminiProvider) Close() error {
	return nil
}
