package study

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/adelr/studypet/internal/llm"
)

// PlanStep is one block of a study plan.
type PlanStep struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Plan is a short, ordered study plan for one topic.
type Plan struct {
	Topic string     `json:"topic"`
	Steps []PlanStep `json:"steps"`
}

// Planner generates study plans through the LLM provider.
type Planner struct {
	provider llm.Provider
}

// NewPlanner creates a study planner.
func NewPlanner(provider llm.Provider) *Planner {
	return &Planner{provider: provider}
}

var planSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A short ordered study plan breaking a topic into focus blocks",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"steps": map[string]any{
				"type":        "array",
				"description": "Between 3 and 6 ordered steps",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Short step title, in French",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "What to do during this step, in French",
						},
						"durationMinutes": map[string]any{
							"type":        "integer",
							"minimum":     5,
							"maximum":     60,
							"description": "Suggested length of the step in minutes",
						},
					},
					"required":             []any{"title", "description", "durationMinutes"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"steps"},
		"additionalProperties": false,
	},
}

const planSystemPrompt = `Tu es un coach d'étude bienveillant pour des collégien·nes/lycéen·nes. Tu découpes un sujet de révision en étapes courtes et concrètes, adaptées à des sessions de concentration de 25 minutes.`

// Generate builds a plan for topic, sized to fit the available time.
func (p *Planner) Generate(ctx context.Context, topic string, availableMinutes int) (*Plan, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, errors.New("topic is empty")
	}
	if availableMinutes <= 0 {
		availableMinutes = 60
	}

	ctx = llm.WithPurpose(ctx, "study-plan")

	userMsg := fmt.Sprintf("Sujet à réviser : %q.\nTemps disponible : %d minutes.\nPropose un plan de révision en 3 à 6 étapes.", topic, availableMinutes)

	resp, err := p.provider.Generate(ctx, llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      planSchema,
		MaxTokens:   1000,
		Temperature: 0.5,
	})
	if err != nil {
		return nil, fmt.Errorf("plan generation failed: %w", err)
	}

	var out struct {
		Steps []PlanStep `json:"steps"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("failed to parse plan response: %w", err)
	}
	if len(out.Steps) == 0 {
		return nil, errors.New("plan response has no steps")
	}
	return &Plan{Topic: topic, Steps: out.Steps}, nil
}
