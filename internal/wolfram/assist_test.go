package wolfram

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/adelr/studypet/internal/llm"
)

func TestBuildInputWithLLM(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"wolframInput": "integrate x^2 dx"}`),
	})
	a := NewAssistant(mock)

	input, err := a.BuildInput(context.Background(), AssistRequest{
		Theme:   "Symbolic & Numeric Computation",
		Task:    "intègre x au carré",
		Details: "primitive simple",
	})
	if err != nil {
		t.Fatalf("BuildInput: %v", err)
	}
	if input != "integrate x^2 dx" {
		t.Errorf("input = %q", input)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, part := range []string{"Symbolic & Numeric Computation", "intègre x au carré", "primitive simple"} {
		if !strings.Contains(msg, part) {
			t.Errorf("user message missing %q", part)
		}
	}
}

func TestBuildInputFallsBackToHeuristic(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("provider down")})
	a := NewAssistant(mock)

	input, err := a.BuildInput(context.Background(), AssistRequest{Task: "calcule 3*7+1"})
	if err != nil {
		t.Fatalf("BuildInput: %v", err)
	}
	if input != "3*7+1" {
		t.Errorf("input = %q", input)
	}
}

func TestBuildInputNoProvider(t *testing.T) {
	a := NewAssistant(nil)

	input, err := a.BuildInput(context.Background(), AssistRequest{Task: "trace la courbe de x^2"})
	if err != nil {
		t.Fatalf("BuildInput: %v", err)
	}
	if input != "plot x^2" {
		t.Errorf("input = %q", input)
	}

	if _, err := a.BuildInput(context.Background(), AssistRequest{Task: "explique la photosynthèse"}); err == nil {
		t.Error("expected error when no template matches and no provider is set")
	}
}

func TestBuildInputEmptyTask(t *testing.T) {
	a := NewAssistant(nil)
	if _, err := a.BuildInput(context.Background(), AssistRequest{Task: "  "}); err == nil {
		t.Error("expected error for empty task")
	}
}

func TestHeuristicInput(t *testing.T) {
	tests := []struct {
		task string
		want string
	}{
		{"calcule 2+2", "2+2"},
		{"Calculer la dérivée de x^3", "la dérivée de x^3"},
		{"combien fait 15% de 80", "15% de 80"},
		{"trace x^2", "plot x^2"},
		{"Trace la courbe de sin(x)", "plot sin(x)"},
		{"dessine le graphe de cos(x)", "plot cos(x)"},
		{"explique les fractions", ""},
		{"trace ", ""},
	}
	for _, tt := range tests {
		if got := heuristicInput(tt.task); got != tt.want {
			t.Errorf("heuristicInput(%q) = %q, want %q", tt.task, got, tt.want)
		}
	}
}
