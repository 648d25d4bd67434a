package prompts

import "github.com/thebenetti7/escritor-fantasma/internal/service/ai"

// Mode identifies which prompt a generation request resolves to.
type Mode string

const (
	// ModeRevision copy-edits user-supplied text.
	ModeRevision Mode = "revision"
	// ModeTrendFirst anchors the article on a trend before the product.
	ModeTrendFirst Mode = "trend_first"
	// ModeStandard is the product/topic-first article.
	ModeStandard Mode = "standard"
)

// DetectMode resolves the generation mode by parameter precedence:
// OriginalText wins over TrendContext, which wins over the standard mode.
func DetectMode(params *ai.GenerationParams) Mode {
	if params.OriginalText != "" {
		return ModeRevision
	}
	if params.TrendContext != "" {
		return ModeTrendFirst
	}
	return ModeStandard
}
