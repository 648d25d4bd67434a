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
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o-mini"
)

// OpenAIProvider implements the text capabilities against the chat
// completions API. Unlike Gemini, authentication travels as a bearer header.
type OpenAIProvider struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     ai.Logger
	generator  *prompts.Generator
	retry      RetryPolicy
	cache      *providerCache
}

// openAIMessage represents a message in the chat API
type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIRequest represents a request to the chat completions API
type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
}

// openAIResponse represents the response from the chat completions API
type openAIResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

var openAITrendFallback = []string{
	"Lifestyle Saudável",
	"Moda Esportiva",
	"Bem-estar",
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(apiKey, baseURL, model string, retry RetryPolicy, logger ai.Logger) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	if baseURL == "" {
		baseURL = defaultOpenAIBaseURL
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	if logger == nil {
		logger = &ai.DefaultLogger{}
	}

	return &OpenAIProvider{
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
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// GeneratePost implements ai.TextGenerator.
func (p *OpenAIProvider) GeneratePost(ctx context.Context, params *ai.GenerationParams) (*ai.Article, error) {
	userLine := "Revise e estruture o texto fornecido."
	if params.OriginalText == "" {
		userLine = "Escreva o artigo sobre: " + params.Subject()
	}

	messages := []openAIMessage{
		{Role: "system", Content: p.generator.PostPrompt(params)},
		{Role: "user", Content: userLine},
	}

	content, err := p.executeChat(ctx, messages, 0.7)
	if err != nil {
		return nil, err
	}

	var article ai.Article
	if err := json.Unmarshal([]byte(ai.StripCodeFences(content)), &article); err != nil {
		p.logger.Error("Failed to parse OpenAI article JSON",
			"error", err,
			"content", content)
		return nil, fmt.Errorf("%w: %v", ai.ErrMalformedOutput, err)
	}

	if article.Title == "" || len(article.Sections) == 0 {
		return nil, fmt.Errorf("%w: artigo sem título ou sem seções", ai.ErrMalformedOutput)
	}

	return &article, nil
}

// executeChat runs a chat completion with exponential backoff on rate-limit
// and overload responses.
func (p *OpenAIProvider) executeChat(ctx context.Context, messages []openAIMessage, temperature float64) (string, error) {
	delay := p.retry.BaseDelay

	for attempt := 0; ; attempt++ {
		content, status, err := p.call(ctx, messages, temperature)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ai.ErrGenerationFailed, err)
		}
		if status == http.StatusOK {
			return content, nil
		}

		if !retryable(status) {
			return "", fmt.Errorf("%w: OpenAI API respondeu %d", ai.ErrGenerationFailed, status)
		}

		if attempt >= p.retry.MaxRetries {
			return "", fmt.Errorf("%w: não foi possível gerar o conteúdo. O serviço da OpenAI está instável ou o limite de requisições foi atingido. Tente novamente em 1 minuto", ai.ErrRateLimited)
		}

		p.logger.Info("Transient OpenAI error, retrying",
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

// AnalyzeProduct implements ai.TextGenerator with the same degrade-and-cache
// contract as the Gemini provider.
func (p *OpenAIProvider) AnalyzeProduct(ctx context.Context, productRef string) (*ai.AnalysisResult, error) {
	if cached, ok := p.cache.analysis(productRef); ok {
		p.logger.Debug("Serving cached analysis", "ref", productRef)
		return cached, nil
	}

	messages := []openAIMessage{
		{Role: "system", Content: p.generator.AnalysisPrompt(productRef)},
		{Role: "user", Content: "PRODUTO/URL: " + productRef},
	}

	content, status, err := p.call(ctx, messages, 0.5)
	if err != nil || status != http.StatusOK {
		p.logger.Error("OpenAI analysis failed", "error", err, "status", status)
		return &ai.AnalysisResult{Persona: "Consumidor Geral", Reason: "Erro na análise da IA."}, nil
	}

	var result ai.AnalysisResult
	if err := json.Unmarshal([]byte(ai.StripCodeFences(content)), &result); err != nil || result.Persona == "" {
		p.logger.Error("Failed to parse analysis JSON", "error", err, "content", content)
		return &ai.AnalysisResult{Persona: "Consumidor Geral", Reason: "Erro na análise da IA."}, nil
	}

	p.cache.storeAnalysis(productRef, &result)
	return &result, nil
}

// SuggestTrends implements ai.TrendSuggester.
func (p *OpenAIProvider) SuggestTrends(ctx context.Context, productRef, persona string) ([]string, error) {
	key := trendKey(productRef, persona)
	if cached, ok := p.cache.trendList(key); ok {
		p.logger.Debug("Serving cached trends", "key", key)
		return cached, nil
	}

	messages := []openAIMessage{
		{Role: "system", Content: p.generator.TrendsPrompt(productRef, persona)},
	}

	content, status, err := p.call(ctx, messages, 0.7)
	if err != nil || status != http.StatusOK {
		p.logger.Error("OpenAI trend suggestion failed", "error", err, "status", status)
		return openAITrendFallback, nil
	}

	trends := parseTrendList(ai.StripCodeFences(content))
	if len(trends) == 0 {
		return openAITrendFallback, nil
	}

	p.cache.storeTrends(key, trends)
	return trends, nil
}

// call sends one chat completion request and extracts the first choice's
// content. Non-200 statuses are returned with a nil error so callers decide
// whether to retry.
func (p *OpenAIProvider) call(ctx context.Context, messages []openAIMessage, temperature float64) (string, int, error) {
	requestBody, err := json.Marshal(openAIRequest{
		Model:       p.model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := p.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(requestBody))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

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

	var envelope openAIResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", resp.StatusCode, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(envelope.Choices) == 0 || envelope.Choices[0].Message.Content == "" {
		return "", resp.StatusCode, errors.New("empty response from OpenAI")
	}

	return envelope.Choices[0].Message.Content, resp.StatusCode, nil
}

// Close implements ai.TextGenerator.
func (p *OpenAIProvider) Close() error {
	return nil
}
