package prompts

import (
	"fmt"
	"strings"

	"github.com/thebenetti7/escritor-fantasma/internal/service/ai"
)

// Generator creates prompts for text providers. Prompt copy is Portuguese,
// the product's publishing language.
type Generator struct{}

// NewGenerator creates a new prompt generator
func NewGenerator() *Generator {
	return &Generator{}
}

// PostPrompt creates the prompt for a post-generation request, selecting the
// mode by parameter precedence (see DetectMode).
func (g *Generator) PostPrompt(params *ai.GenerationParams) string {
	switch DetectMode(params) {
	case ModeRevision:
		return g.revisionPrompt(params)
	default:
		return g.articlePrompt(params)
	}
}

// revisionPrompt instructs the backend to copy-edit the supplied text while
// preserving its voice, returning the standard article JSON shape.
func (g *Generator) revisionPrompt(params *ai.GenerationParams) string {
	var sb strings.Builder

	sb.WriteString("Você é um Editor Sênior e Revisor Gramatical (Copy Desk).\n")
	sb.WriteString("Sua tarefa é polir, corrigir e melhorar o texto fornecido, mantendo a voz original mas garantindo impacto e correção gramatical.\n\n")

	sb.WriteString("TEXTO ORIGINAL:\n")
	sb.WriteString(fmt.Sprintf("\"%s\"\n\n", params.OriginalText))

	sb.WriteString(fmt.Sprintf("PRODUTO: %s\n", params.Subject()))
	sb.WriteString(fmt.Sprintf("TOM: %s\n\n", params.Tone))

	sb.WriteString("Retorne o resultado APENAS como JSON válido na estrutura padrão de artigos:\n")
	sb.WriteString("{\n")
	sb.WriteString("    \"title\": \"Título Melhorado (H1)\",\n")
	sb.WriteString("    \"seoKeywords\": [\"tags\", \"do\", \"texto\"],\n")
	sb.WriteString("    \"sections\": [ ... separe o texto em seções lógicas com H2 e conteúdo HTML ... ]\n")
	sb.WriteString("}\n")
	sb.WriteString("Não inclua markdown (como ```json) ao redor. Apenas o JSON puro.")

	return sb.String()
}

// articlePrompt covers the standard and trend-first modes. Both share the
// five-section skeleton; trend-first prepends the newsjacking instruction.
func (g *Generator) articlePrompt(params *ai.GenerationParams) string {
	var sb strings.Builder

	sb.WriteString("✍️ ESTILO DE ESCRITA:\n")
	sb.WriteString("Tom e Voz:\n")
	sb.WriteString("- Conversacional e acessível.\n")
	sb.WriteString("- Entusiasmado mas autêntico.\n")
	sb.WriteString("- Culto e antenado.\n")
	sb.WriteString("- Inclusivo.\n\n")

	if params.TrendContext != "" {
		sb.WriteString("🔥 MODO TREND-FIRST ATIVADO:\n")
		sb.WriteString(fmt.Sprintf("O foco deste artigo NÃO é apenas o produto, mas a TREND: \"%s\".\n\n", params.TrendContext))
		sb.WriteString("ESTRUTURA OBRIGATÓRIA:\n")
		sb.WriteString("1. Abertura (Newsjacking): Comece falando da Trend/Notícia. Prenda a atenção pelo assunto do momento.\n")
		sb.WriteString("2. Conexão: Só então apresente o Produto como a ferramenta ideal para quem quer entrar nessa trend.\n")
		sb.WriteString("3. O resto do artigo segue a estrutura padrão, mas sempre voltando à trend.\n\n")
	}

	sb.WriteString("Elementos Obrigatórios:\n")
	sb.WriteString("1. Abertura com gancho cultural/trend.\n")
	sb.WriteString("2. Storytelling.\n")
	sb.WriteString("3. Conexões inteligentes.\n")
	sb.WriteString("4. Dicas práticas.\n")
	sb.WriteString("5. Referências visuais.\n\n")

	sb.WriteString("📝 ESTRUTURA DO ARTIGO (JSON OBRIGATÓRIO):\n")
	sb.WriteString("Você deve responder APENAS com um objeto JSON válido. Não inclua markdown (como ```json) ao redor. Apenas o JSON puro.\n\n")
	sb.WriteString("Estrutura do JSON:\n")
	sb.WriteString(`{
    "title": "Um título criativo e chamativo (Newsjacking se aplicável)",
    "seoKeywords": ["keyword1", "keyword2", "keyword3"],
    "sections": [
        {
            "heading": "Abertura (H2 implícito)",
            "content": "<p>Hook cultural/trend forte + Conexão emocional.</p>",
            "ctaType": null
        },
        {
            "heading": "Contexto Cultural (H2)",
            "content": "<p>Por que isso é relevante AGORA?</p>",
            "ctaType": null
        },
        {
            "heading": "O Produto como Solução (H2)",
            "content": "<p>Detalhes narrativos do produto.</p>",
            "ctaType": "buy"
        },
        {
            "heading": "Como Usar / Styling (H2)",
            "content": "<p>Sugestões de combinações.</p>",
            "ctaType": "category"
        },
        {
            "heading": "Fechamento (H2)",
            "content": "<p>Call-to-action suave.</p>",
            "ctaType": "buy"
        }
    ]
}`)
	sb.WriteString("\n\n")

	sb.WriteString("Use tags HTML simples (<p>, <ul>, <li>, <strong>) para o campo 'content'.\n\n")

	sb.WriteString("INPUT:\n")
	sb.WriteString(fmt.Sprintf("PRODUTO: %s\n", params.Subject()))
	if params.Persona != "" {
		sb.WriteString(fmt.Sprintf("PERSONA: %s\n", params.Persona))
	} else {
		sb.WriteString("PERSONA: Público Geral\n")
	}
	sb.WriteString(fmt.Sprintf("TOM: %s\n", params.Tone))
	if params.TrendContext != "" {
		sb.WriteString(fmt.Sprintf("TREND: %s\n", params.TrendContext))
	}

	return sb.String()
}

// AnalysisPrompt creates the persona-inference prompt for a product reference.
func (g *Generator) AnalysisPrompt(productRef string) string {
	var sb strings.Builder

	sb.WriteString("Você é um estrategista de marketing digital experiente.\n")
	sb.WriteString("Analise o produto (URL ou Nome) fornecido e identifique:\n")
	sb.WriteString("1. A Persona Principal (quem compra esse produto?).\n")
	sb.WriteString("2. Uma justificativa breve baseada em benefícios.\n\n")

	sb.WriteString("Responda APENAS com um JSON neste formato:\n")
	sb.WriteString("{\n")
	sb.WriteString("    \"persona\": \"Nome da Persona\",\n")
	sb.WriteString("    \"reason\": \"Justificativa curta\"\n")
	sb.WriteString("}\n\n")

	sb.WriteString(fmt.Sprintf("PRODUTO/URL: %s", productRef))

	return sb.String()
}

// TrendsPrompt asks for exactly three trend labels connecting the product and
// persona, as a bare JSON string array.
func (g *Generator) TrendsPrompt(productRef, persona string) string {
	var sb strings.Builder

	sb.WriteString("Atue como um Caçador de Tendências (Trend Hunter) e Jornalista de Moda/Esporte.\n\n")

	sb.WriteString("CONTEXTO:\n")
	sb.WriteString(fmt.Sprintf("- Produto: %s\n", productRef))
	sb.WriteString(fmt.Sprintf("- Persona Alvo: %s\n\n", persona))

	sb.WriteString("MISSÃO:\n")
	sb.WriteString("Liste 3 tópicos muito em alta agora (Newsjacking), tendências de comportamento ou modas virais que se conectam com essa persona e esse produto.\n")
	sb.WriteString("Seja específico (ex: \"Brazilcore\", \"Corrida de Rua\", \"Estética Old Money\").\n\n")

	sb.WriteString("Responda APENAS com um JSON contendo um array de strings:\n")
	sb.WriteString("[\"Trend 1 - Explicação curta\", \"Trend 2 - Explicação curta\", \"Trend 3\"]")

	return sb.String()
}
