package providers

import (
	"encoding/json"
	"sync"

	"github.com/thebenetti7/escritor-fantasma/internal/service/ai"
)

// providerCache memoizes analysis and trend results for one provider
// instance. Entries live for the provider's lifetime and are never evicted.
// The maps are shared mutable state under Fiber's per-request goroutines, so
// access is mutex-guarded; concurrent misses for the same key may still both
// reach the backend (last write wins).
type providerCache struct {
	mu       sync.RWMutex
	analyses map[string]*ai.AnalysisResult
	trends   map[string][]string
}

func newProviderCache() *providerCache {
	return &providerCache{
		analyses: make(map[string]*ai.AnalysisResult),
		trends:   make(map[string][]string),
	}
}

func (c *providerCache) analysis(ref string) (*ai.AnalysisResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, ok := c.analyses[ref]
	return result, ok
}

func (c *providerCache) storeAnalysis(ref string, result *ai.AnalysisResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.analyses[ref] = result
}

func (c *providerCache) trendList(key string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	trends, ok := c.trends[key]
	return trends, ok
}

func (c *providerCache) storeTrends(key string, trends []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.trends[key] = trends
}

// trendKey builds the cache key for a (reference, persona) pair.
func trendKey(productRef, persona string) string {
	return productRef + "|" + persona
}

// parseTrendList decodes a trend response that may be a bare string array or
// an object wrapping one under "trends".
func parseTrendList(text string) []string {
	var trends []string
	if err := json.Unmarshal([]byte(text), &trends); err == nil {
		return trends
	}

	var wrapped struct {
		Trends []string `json:"trends"`
	}
	if err := json.Unmarshal([]byte(text), &wrapped); err == nil {
		return wrapped.Trends
	}

	return nil
}
