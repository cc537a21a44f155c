package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var quizTestSchema = &Schema{
	Name:        "validate-test-quiz",
	Description: "quiz shape used by validation tests",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 4,
							"maxItems": 4,
						},
						"correctIndex": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": 3,
						},
					},
					"required":             []any{"question", "options", "correctIndex"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{"question": "2+2 ?", "options": ["3", "4", "5", "6"], "correctIndex": 1}
		]
	}`)
	if err := validateResponse(quizTestSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `this is prose`},
		{"missing questions", `{}`},
		{"three options", `{"questions":[{"question":"q","options":["a","b","c"],"correctIndex":0}]}`},
		{"index out of range", `{"questions":[{"question":"q","options":["a","b","c","d"],"correctIndex":7}]}`},
		{"extra field", `{"questions":[],"score":10}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(quizTestSchema, json.RawMessage(tt.raw))
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Errorf("error = %v, want ErrInvalidResponse", err)
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json at all`)); err != nil {
		t.Errorf("nil schema must skip validation, got %v", err)
	}
}
