package llm

import (
	"strings"
	"testing"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, true},
		{"prose around", "Voici le quiz :\n{\"a\":1}\nBon courage !", `{"a":1}`, true},
		{"code fence", "```json\n{\"a\": {\"b\": 2}}\n```", `{"a": {"b": 2}}`, true},
		{"braces in strings", `{"q":"que vaut {x} ?"}`, `{"q":"que vaut {x} ?"}`, true},
		{"escaped quote", `{"q":"il a dit \"non\" {"}`, `{"q":"il a dit \"non\" {"}`, true},
		{"nested", `x {"a":{"b":{"c":1}}} y`, `{"a":{"b":{"c":1}}}`, true},
		{"no object", "pas de JSON ici", "", false},
		{"unclosed", `{"a":1`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSONObject(tt.input)
			if tt.ok != (err == nil) {
				t.Fatalf("err = %v, want ok=%v", err, tt.ok)
			}
			if tt.ok && string(got) != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAppendSchemaInstruction(t *testing.T) {
	schema := &Schema{
		Name:       "t",
		Definition: map[string]any{"type": "object"},
	}

	got := appendSchemaInstruction("Tu es un prof.", schema)
	if !strings.HasPrefix(got, "Tu es un prof.") {
		t.Errorf("system prompt lost: %q", got)
	}
	if !strings.Contains(got, `"type":"object"`) {
		t.Errorf("schema not embedded: %q", got)
	}

	alone := appendSchemaInstruction("", schema)
	if strings.HasPrefix(alone, "\n") {
		t.Errorf("leading newline with empty system: %q", alone)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gpt-4o-mini", openaiModels); got != "gpt-4o-mini" {
		t.Errorf("friendly name: %q", got)
	}
	if got := resolveModel("some-exact-model-id", openaiModels); got != "some-exact-model-id" {
		t.Errorf("pass-through: %q", got)
	}
}

func TestNewMistralProviderDefaults(t *testing.T) {
	p, err := NewMistralProvider(MistralConfig{APIKey: "k", Model: "open-mistral-7b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.jsonMode {
		t.Error("mistral provider must run in JSON mode")
	}
	if p.ModelID() != "open-mistral-7b" {
		t.Errorf("model = %q", p.ModelID())
	}
}

func TestNewMistralProviderRequiresKey(t *testing.T) {
	if _, err := NewMistralProvider(MistralConfig{}); err == nil {
		t.Error("expected error for missing API key")
	}
}
