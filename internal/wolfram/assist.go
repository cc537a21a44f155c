package wolfram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/adelr/studypet/internal/llm"
)

// AssistRequest describes what the student wants Wolfram to do, in
// their own words.
type AssistRequest struct {
	Theme   string `json:"theme"`
	Task    string `json:"task"`
	Details string `json:"details"`
}

// Assistant turns a French-language task description into a Wolfram
// Alpha query. It asks the LLM first and falls back to simple phrase
// templates when no provider is available.
type Assistant struct {
	provider llm.Provider
}

// NewAssistant creates an Assistant. provider may be nil, in which case
// only the heuristic fallback is used.
func NewAssistant(provider llm.Provider) *Assistant {
	return &Assistant{provider: provider}
}

var assistSchema = &llm.Schema{
	Name:        "wolfram-input",
	Description: "A single Wolfram Alpha query translated from a student's task description",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"wolframInput": map[string]any{
				"type":        "string",
				"description": "The Wolfram Alpha query, in English, ready to send as-is",
			},
		},
		"required":             []any{"wolframInput"},
		"additionalProperties": false,
	},
}

const assistSystemPrompt = `Tu aides un·e élève à interroger Wolfram Alpha. À partir du thème, de la tâche et des détails fournis (en français), produis UNE requête Wolfram Alpha en anglais, courte et directement exécutable. Pas d'explication, seulement la requête.`

// BuildInput produces a Wolfram query for the student's request.
func (a *Assistant) BuildInput(ctx context.Context, req AssistRequest) (string, error) {
	task := strings.TrimSpace(req.Task)
	if task == "" {
		return "", errors.New("task is empty")
	}

	if a.provider != nil {
		input, err := a.buildWithLLM(ctx, req)
		if err == nil && input != "" {
			return input, nil
		}
	}

	if input := heuristicInput(task); input != "" {
		return input, nil
	}
	return "", errors.New("could not build a wolfram query from the task")
}

func (a *Assistant) buildWithLLM(ctx context.Context, req AssistRequest) (string, error) {
	ctx = llm.WithPurpose(ctx, "wolfram-assist")

	var sb strings.Builder
	if req.Theme != "" {
		fmt.Fprintf(&sb, "Thème : %s\n", req.Theme)
	}
	fmt.Fprintf(&sb, "Tâche : %s\n", req.Task)
	if req.Details != "" {
		fmt.Fprintf(&sb, "Détails : %s\n", req.Details)
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: assistSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: sb.String()},
		},
		Schema:      assistSchema,
		MaxTokens:   300,
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		WolframInput string `json:"wolframInput"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.WolframInput), nil
}
