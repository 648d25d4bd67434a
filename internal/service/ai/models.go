package ai

// ToneOfVoice controls the register of the generated article.
type ToneOfVoice string

const (
	ToneSerious      ToneOfVoice = "serious"
	ToneJournalistic ToneOfVoice = "journalistic"
	ToneHumorous     ToneOfVoice = "humorous"
	ToneTechnical    ToneOfVoice = "technical"
)

// CTAType tags a section with the commercial prompt rendered alongside it.
type CTAType string

const (
	CTANone     CTAType = ""
	CTABuy      CTAType = "buy"
	CTACategory CTAType = "category"
)

// ImageStyle selects the rendering style for image variations.
type ImageStyle string

const (
	StylePhotorealistic ImageStyle = "photorealistic"
	Style3DRender       ImageStyle = "3d-render"
	StyleCartoon        ImageStyle = "cartoon"
)

// GenerationParams is the input for a post-generation request.
// OriginalText selects revision mode and takes precedence over TrendContext.
type GenerationParams struct {
	ProductRef   string      `json:"productReference,omitempty"` // product URL or name
	Topic        string      `json:"topic,omitempty"`            // free-form topic when no product
	Persona      string      `json:"persona,omitempty"`          // target customer profile
	Tone         ToneOfVoice `json:"tone"`                       // tone of voice
	TrendContext string      `json:"trendContext,omitempty"`     // trend-first mode anchor
	OriginalText string      `json:"originalText,omitempty"`     // manual/revision mode input
}

// Subject returns the product reference or topic, whichever is set.
func (p *GenerationParams) Subject() string {
	if p.ProductRef != "" {
		return p.ProductRef
	}
	return p.Topic
}

// Section is one block of a generated article. Content carries HTML that is
// rendered verbatim; it originates from a configured provider, not user input.
type Section struct {
	Heading string  `json:"heading"`
	Content string  `json:"content"`
	CTA     CTAType `json:"ctaType,omitempty"`
}

// Article is the output of post generation. Section order is render order.
type Article struct {
	Title       string    `json:"title"`
	SEOKeywords []string  `json:"seoKeywords"`
	Sections    []Section `json:"sections"`
}

// AnalysisResult is the inferred persona for a product reference.
type AnalysisResult struct {
	Persona string `json:"persona"`
	Reason  string `json:"reason"`
}

// ImageParams is the input for an image-variation request.
type ImageParams struct {
	OriginalImageURL string     `json:"originalImageUrl,omitempty"`
	PromptModifier   string     `json:"promptModifier,omitempty"` // e.g. "on a marble table"
	Style            ImageStyle `json:"style"`
}

// ImageVariant is one generated image, uniquely identified within its batch.
type ImageVariant struct {
	VariantID string `json:"variantId"`
	URL       string `json:"url"`
}
