package ai

import "errors"

// Common errors
var (
	// ErrRateLimited marks transient backend unavailability (HTTP 429/503).
	// Providers retry it per policy; exhaustion escalates to a terminal error
	// that still wraps this sentinel.
	ErrRateLimited = errors.New("provider rate limit or overload")

	// ErrGenerationFailed is a terminal generation failure: any non-transient
	// backend error, or retry exhaustion.
	ErrGenerationFailed = errors.New("content generation failed")

	// ErrMalformedOutput is returned when a response arrived but could not be
	// parsed into the article shape. Treated as terminal for post generation.
	ErrMalformedOutput = errors.New("malformed provider output")

	// ErrInvalidProvider is returned when no provider can serve a request.
	ErrInvalidProvider = errors.New("invalid provider")
)
