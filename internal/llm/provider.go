package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over chat-completion backends. The quiz
// generator, study planner and Wolfram assistant all speak through it.
type Provider interface {
	// Generate sends a single request and returns the model's output.
	// When the request carries a Schema, Content is JSON validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints. Optional.
	System string

	// Messages is the conversation. Generation here is single-turn, so
	// this is normally one user message.
	Messages []Message

	// Schema, when set, constrains the response to JSON matching it.
	// Providers use their native structured-output mechanism where one
	// exists and fall back to JSON mode plus validation where not
	// (Mistral).
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case ("study-quiz").
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is the generated output. With a Schema it is the
	// validated JSON object; without, the raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token counts for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
