package llm

import (
	"context"
	"fmt"

	"argumenta/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Suggest generates one improvement suggestion for a single component
	Suggest(ctx context.Context, req SuggestRequest) (*SuggestResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SuggestRequest contains the input for one suggestion call
type SuggestRequest struct {
	// Component is the extracted premise or conclusion to critique
	Component model.Component

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SuggestResponse contains the LLM's suggestion output
type SuggestResponse struct {
	// Explanation is the generated suggestion text
	Explanation string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", "anthropic", "ollama", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for OpenAI/Anthropic
	APIKey string

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int

	// Rate limits requests per second to the provider endpoint
	Rate float64

	// Workers bounds concurrent suggestion calls
	Workers int

	// Proxy settings
	HTTPProxy  string
	HTTPSProxy string
	NoProxy    string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Model:     "",
		Timeout:   30,
		MaxTokens: 150,
		Rate:      2,
		Workers:   4,
	}
}

// systemPrompt keeps every provider on the same register: an academic
// argumentation tutor answering in Spanish.
const systemPrompt = "Eres un experto en argumentación académica. Responde de forma clara y concisa."

// BuildPrompt constructs the default Spanish prompt asking for exactly one
// concrete, short suggestion for the given component.
func BuildPrompt(c model.Component) string {
	label := "PREMISA"
	if c.Kind == model.KindConclusion {
		label = "CONCLUSIÓN"
	}

	return fmt.Sprintf(`Eres un experto en argumentación académica. Analiza esta %s:

"%s"

Proporciona UNA sugerencia específica y práctica para mejorarla. Sé conciso y directo (máximo 2 oraciones).`, label, c.Text)
}
