package llm

import "fmt"

const defaultMistralBaseURL = "https://api.mistral.ai/v1"

// mistralModels maps friendly names to Mistral model IDs.
var mistralModels = map[string]string{
	"mistral-small": "mistral-small-latest",
	"mistral-large": "mistral-large-latest",
}

// MistralProvider targets the Mistral chat-completions API through the
// OpenAI-compatible client. Mistral has no json_schema response format,
// so the provider runs in JSON mode with local schema validation.
type MistralProvider struct {
	*OpenAIProvider
}

// NewMistralProvider creates a provider for api.mistral.ai.
func NewMistralProvider(cfg MistralConfig) (*MistralProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("mistral API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultMistralBaseURL
	}

	inner, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  cfg.APIKey,
		Model:   resolveModel(cfg.Model, mistralModels),
		BaseURL: baseURL,
	})
	if err != nil {
		return nil, err
	}
	inner.jsonMode = true

	return &MistralProvider{OpenAIProvider: inner}, nil
}
