package study

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/adelr/studypet/internal/llm"
)

const mockPlanJSON = `{
	"steps": [
		{"title": "Relire le cours", "description": "Relis tes notes sur les fractions.", "durationMinutes": 15},
		{"title": "Exercices simples", "description": "Fais 5 exercices d'addition de fractions.", "durationMinutes": 25},
		{"title": "Auto-évaluation", "description": "Teste-toi sans regarder le cours.", "durationMinutes": 10}
	]
}`

func TestPlannerGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(mockPlanJSON)})
	planner := NewPlanner(mock)

	plan, err := planner.Generate(context.Background(), "les fractions", 50)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.Topic != "les fractions" {
		t.Errorf("topic = %q", plan.Topic)
	}
	if len(plan.Steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(plan.Steps))
	}
	if plan.Steps[1].DurationMinutes != 25 {
		t.Errorf("step duration = %d", plan.Steps[1].DurationMinutes)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "les fractions") || !strings.Contains(msg, "50 minutes") {
		t.Errorf("user message missing topic or time budget: %q", msg)
	}
}

func TestPlannerGenerateEmptyTopic(t *testing.T) {
	planner := NewPlanner(llm.NewMockProvider())
	if _, err := planner.Generate(context.Background(), "", 30); err == nil {
		t.Error("expected error for empty topic")
	}
}

func TestPlannerGenerateEmptySteps(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"steps": []}`)})
	planner := NewPlanner(mock)
	if _, err := planner.Generate(context.Background(), "histoire", 30); err == nil {
		t.Error("expected error for empty plan")
	}
}
