package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const productHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Tênis Raio X | Loja</title>
    <meta property="og:title" content="Tênis Raio X">
    <meta name="description" content="Tênis de corrida com placa de carbono.">
    <meta property="og:image" content="https://cdn.example/shoe-x.jpg">
</head>
<body>
    <h1>Tênis Raio X Performance</h1>
    <p>Detalhes do produto.</p>
</body>
</html>`

func TestFetchProductExtractsMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "EscritorFantasma")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(productHTML))
	}))
	defer server.Close()

	page, err := New(5 * time.Second).FetchProduct(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Tênis Raio X", page.Title)
	assert.Equal(t, "Tênis de corrida com placa de carbono.", page.Description)
	assert.Equal(t, "https://cdn.example/shoe-x.jpg", page.ImageURL)
	assert.Equal(t, "Tênis Raio X Performance", page.Heading)
	assert.Equal(t, server.URL, page.URL)
}

func TestFetchProductFallsBackToTitleTag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>Só Title</title></head><body></body></html>`))
	}))
	defer server.Close()

	page, err := New(0).FetchProduct(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Só Title", page.Title)
	assert.Empty(t, page.ImageURL)
}

func TestFetchProductRejectsNonHTTPScheme(t *testing.T) {
	_, err := New(0).FetchProduct(context.Background(), "ftp://example.com/produto")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http or https")
}

func TestFetchProductErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := New(0).FetchProduct(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestFetchProductNoMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head></head><body><p>nada</p></body></html>`))
	}))
	defer server.Close()

	_, err := New(0).FetchProduct(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no product metadata")
}
