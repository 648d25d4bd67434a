package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFences(t *testing.T) {
	const payload = `{"title": "Artigo", "sections": []}`

	tests := []struct {
		name  string
		input string
	}{
		{"bare json", payload},
		{"json fence", "```json\n" + payload + "\n```"},
		{"plain fence", "```\n" + payload + "\n```"},
		{"fence without newlines", "```json" + payload + "```"},
		{"surrounding whitespace", "  \n```json\n" + payload + "\n```\n  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, payload, StripCodeFences(tt.input))
		})
	}
}

func TestStripCodeFencesIdempotent(t *testing.T) {
	input := "```json\n{\"title\": \"x\"}\n```"

	once := StripCodeFences(input)
	twice := StripCodeFences(once)

	assert.Equal(t, once, twice)
}
