package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/thebenetti7/escritor-fantasma/internal/api"
	"github.com/thebenetti7/escritor-fantasma/internal/service/ai"
	"github.com/thebenetti7/escritor-fantasma/internal/service/ai/providers"
	"github.com/thebenetti7/escritor-fantasma/internal/service/scraper"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// brokenText always fails generation, for exercising the error mapping.
type brokenText struct{}

func (brokenText) GeneratePost(ctx context.Context, params *ai.GenerationParams) (*ai.Article, error) {
	return nil, fmt.Errorf("%w: backend indisponível", ai.ErrGenerationFailed)
}

func (brokenText) AnalyzeProduct(ctx context.Context, productRef string) (*ai.AnalysisResult, error) {
	return nil, fmt.Errorf("%w: backend indisponível", ai.ErrGenerationFailed)
}

func (brokenText) Name() string { return "broken" }

func (brokenText) Close() error { return nil }

func newTestApp(t *testing.T, text ai.TextGenerator) *fiber.App {
	t.Helper()

	service := ai.NewService(ai.ServiceOptions{
		TextProvider:  text,
		ImageProvider: providers.NewMockImageProvider(0),
		RateLimit:     rate.Inf,
		RateBurst:     1,
	})

	app := fiber.New()
	api.SetupRoutes(app, service, scraper.New(5*time.Second))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body interface{}) (*http.Response, apiEnvelope) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope apiEnvelope
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp, envelope
}

func TestHealthRoute(t *testing.T) {
	app := newTestApp(t, providers.NewMockTextProvider(0))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProviderRoute(t *testing.T) {
	app := newTestApp(t, providers.NewMockTextProvider(0))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/provider", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope apiEnvelope
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.True(t, envelope.Success)

	var names map[string]string
	require.NoError(t, json.Unmarshal(envelope.Data, &names))
	assert.Equal(t, "mock", names["text"])
	assert.Equal(t, "mock", names["image"])
}

func TestGeneratePostRoute(t *testing.T) {
	app := newTestApp(t, providers.NewMockTextProvider(0))

	resp, envelope := postJSON(t, app, "/api/posts/generate", fiber.Map{
		"productReference": "shoe-x",
		"tone":             "journalistic",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, envelope.Success)

	var article ai.Article
	require.NoError(t, json.Unmarshal(envelope.Data, &article))
	assert.Contains(t, article.Title, "shoe-x")
	assert.NotEmpty(t, article.Sections)
}

func TestGeneratePostRouteProviderFailure(t *testing.T) {
	app := newTestApp(t, brokenText{})

	resp, envelope := postJSON(t, app, "/api/posts/generate", fiber.Map{
		"productReference": "shoe-x",
	})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Error, "backend indisponível")
}

func TestGeneratePostRouteBadBody(t *testing.T) {
	app := newTestApp(t, providers.NewMockTextProvider(0))

	req := httptest.NewRequest(http.MethodPost, "/api/posts/generate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeProductRoute(t *testing.T) {
	app := newTestApp(t, providers.NewMockTextProvider(0))

	resp, envelope := postJSON(t, app, "/api/products/analyze", fiber.Map{
		"reference": "shoe-x",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, envelope.Success)

	var result ai.AnalysisResult
	require.NoError(t, json.Unmarshal(envelope.Data, &result))
	assert.NotEmpty(t, result.Persona)
	assert.NotEmpty(t, result.Reason)
}

func TestAnalyzeProductRouteRequiresReference(t *testing.T) {
	app := newTestApp(t, providers.NewMockTextProvider(0))

	resp, envelope := postJSON(t, app, "/api/products/analyze", fiber.Map{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, envelope.Success)
}

func TestSuggestTrendsRoute(t *testing.T) {
	app := newTestApp(t, providers.NewMockTextProvider(0))

	resp, envelope := postJSON(t, app, "/api/trends/suggest", fiber.Map{
		"reference": "shoe-x",
		"persona":   "Corredor Urbano",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, envelope.Success)

	var trends []string
	require.NoError(t, json.Unmarshal(envelope.Data, &trends))
	assert.Len(t, trends, 3)
}

func TestSuggestTrendsRouteWithoutCapability(t *testing.T) {
	// brokenText does not implement trend suggestion, so the route answers
	// with an empty list rather than an error.
	app := newTestApp(t, brokenText{})

	resp, envelope := postJSON(t, app, "/api/trends/suggest", fiber.Map{
		"reference": "shoe-x",
		"persona":   "Corredor Urbano",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, envelope.Success)

	var trends []string
	require.NoError(t, json.Unmarshal(envelope.Data, &trends))
	assert.Empty(t, trends)
}

func TestImageVariationsRoute(t *testing.T) {
	app := newTestApp(t, providers.NewMockTextProvider(0))

	resp, envelope := postJSON(t, app, "/api/images/variations", fiber.Map{
		"promptModifier": "tênis em fundo neon",
		"style":          "photorealistic",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, envelope.Success)

	var variants []ai.ImageVariant
	require.NoError(t, json.Unmarshal(envelope.Data, &variants))
	assert.Len(t, variants, 4)
}

func TestComposeRoute(t *testing.T) {
	app := newTestApp(t, providers.NewMockTextProvider(0))

	resp, envelope := postJSON(t, app, "/api/posts/compose", fiber.Map{
		"text":   fiber.Map{"productReference": "shoe-x"},
		"images": fiber.Map{"promptModifier": "tênis em neon", "style": "3d-render"},
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, envelope.Success)

	var composed struct {
		Article  *ai.Article       `json:"article"`
		Variants []ai.ImageVariant `json:"variants"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &composed))
	require.NotNil(t, composed.Article)
	assert.NotEmpty(t, composed.Article.Sections)
	assert.Len(t, composed.Variants, 4)
}

func TestComposeRouteFailsWhenTextFails(t *testing.T) {
	// Both halves must succeed. A text failure discards the image result.
	app := newTestApp(t, brokenText{})

	resp, envelope := postJSON(t, app, "/api/posts/compose", fiber.Map{
		"text":   fiber.Map{"productReference": "shoe-x"},
		"images": fiber.Map{"promptModifier": "tênis", "style": "photorealistic"},
	})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.False(t, envelope.Success)
}

func TestProductPreviewRoute(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Produto Teste</title></head><body><h1>Produto Teste</h1></body></html>`))
	}))
	defer backend.Close()

	app := newTestApp(t, providers.NewMockTextProvider(0))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/preview?url="+backend.URL, nil), 5000)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope apiEnvelope
	require.NoError(t, json.Unmarshal(raw, &envelope))
	require.True(t, envelope.Success)

	var page scraper.ProductPage
	require.NoError(t, json.Unmarshal(envelope.Data, &page))
	assert.Equal(t, "Produto Teste", page.Title)
}

func TestProductPreviewRouteRequiresURL(t *testing.T) {
	app := newTestApp(t, providers.NewMockTextProvider(0))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/preview", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
