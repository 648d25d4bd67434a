package ai

import (
	"regexp"
	"strings"
)

// Backends routinely wrap the requested JSON in markdown fences despite being
// told not to. The fence markers are removed wherever they appear so that a
// fenced payload parses identically to a bare one.
var codeFenceRegex = regexp.MustCompile("```json\n?|\n?```")

// StripCodeFences removes markdown code-fence markers from text. The
// operation is idempotent: stripping already-clean text is a no-op.
func StripCodeFences(text string) string {
	return strings.TrimSpace(codeFenceRegex.ReplaceAllString(text, ""))
}
