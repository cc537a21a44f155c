package llm

import (
	"os"
	"strconv"
	"time"
)

// Config selects and configures the LLM provider.
type Config struct {
	// Provider is one of "mistral", "openai", "anthropic", "gemini",
	// "mock". Mistral is the default; the quiz prompts were written
	// for it.
	Provider string

	Mistral   MistralConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration
}

// MistralConfig targets the Mistral chat-completions API, which is
// OpenAI-compatible.
type MistralConfig struct {
	APIKey  string
	Model   string // Default: "open-mistral-7b"
	BaseURL string // Default: "https://api.mistral.ai/v1"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// RetryConfig controls backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with working defaults for everything
// except API keys.
func DefaultConfig() Config {
	return Config{
		Provider: "mistral",
		Mistral: MistralConfig{
			Model:   "open-mistral-7b",
			BaseURL: "https://api.mistral.ai/v1",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults. MISTRAL_API_KEY matches the variable the original
// deployment already used.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	setStr(&cfg.Provider, "STUDYPET_LLM_PROVIDER")

	setStr(&cfg.Mistral.APIKey, "MISTRAL_API_KEY")
	setStr(&cfg.Mistral.Model, "STUDYPET_MISTRAL_MODEL")
	setStr(&cfg.Mistral.BaseURL, "STUDYPET_MISTRAL_BASE_URL")

	setStr(&cfg.OpenAI.APIKey, "OPENAI_API_KEY")
	setStr(&cfg.OpenAI.Model, "STUDYPET_OPENAI_MODEL")
	setStr(&cfg.OpenAI.BaseURL, "STUDYPET_OPENAI_BASE_URL")

	setStr(&cfg.Anthropic.APIKey, "ANTHROPIC_API_KEY")
	setStr(&cfg.Anthropic.Model, "STUDYPET_ANTHROPIC_MODEL")

	setStr(&cfg.Gemini.APIKey, "GEMINI_API_KEY")
	setStr(&cfg.Gemini.Model, "STUDYPET_GEMINI_MODEL")

	if v := os.Getenv("STUDYPET_LLM_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.Timeout = time.Duration(secs) * time.Second
		}
	}

	return cfg
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
