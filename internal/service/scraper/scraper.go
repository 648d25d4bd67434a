// Package scraper fetches product page metadata for the preview endpoint.
// It does a single page fetch; no crawling or link following.
package scraper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; EscritorFantasma/1.0)"

// ProductPage contains the metadata extracted from a product page.
type ProductPage struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	Heading     string `json:"heading,omitempty"`
}

// Scraper fetches and parses product pages.
type Scraper struct {
	httpClient *http.Client
	userAgent  string
}

// New creates a scraper with the given request timeout.
func New(timeout time.Duration) *Scraper {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Scraper{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  defaultUserAgent,
	}
}

// FetchProduct downloads one product page and extracts its metadata.
func (s *Scraper) FetchProduct(ctx context.Context, rawURL string) (*ProductPage, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid product URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.New("product URL must use http or https")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product page returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse product page: %w", err)
	}

	page := &ProductPage{URL: parsed.String()}

	page.Title = metaContent(doc, "og:title")
	if page.Title == "" {
		page.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	page.Description = metaName(doc, "description")
	if page.Description == "" {
		page.Description = metaContent(doc, "og:description")
	}

	page.ImageURL = metaContent(doc, "og:image")
	page.Heading = strings.TrimSpace(doc.Find("h1").First().Text())

	if page.Title == "" && page.Heading == "" {
		return nil, errors.New("no product metadata found on page")
	}

	return page, nil
}

func metaContent(doc *goquery.Document, property string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).First().Attr("content")
	return strings.TrimSpace(content)
}

func metaName(doc *goquery.Document, name string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[name=%q]`, name)).First().Attr("content")
	return strings.TrimSpace(content)
}
