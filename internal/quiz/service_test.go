package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/adelr/studypet/internal/llm"
)

const mockQuizJSON = `{
	"questions": [
		{
			"question": "Quelle est la capitale de la France ?",
			"options": ["Lyon", "Paris", "Marseille", "Lille"],
			"correctIndex": 1
		},
		{
			"question": "Combien font 7 x 8 ?",
			"options": ["54", "56", "58", "64"],
			"correctIndex": 1
		}
	]
}`

func TestFromText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(mockQuizJSON)})
	svc := NewService(mock)

	quiz, err := svc.FromText(context.Background(), "les capitales", 2)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(quiz.Questions))
	}
	if quiz.Questions[0].CorrectIndex != 1 {
		t.Errorf("correctIndex = %d, want 1", quiz.Questions[0].CorrectIndex)
	}
	if len(quiz.Questions[0].Options) != 4 {
		t.Errorf("got %d options, want 4", len(quiz.Questions[0].Options))
	}

	req := mock.Calls[0]
	if req.Schema != QuizSchema {
		t.Error("request did not carry the quiz schema")
	}
	if !strings.Contains(req.Messages[0].Content, "les capitales") {
		t.Error("topic missing from the user message")
	}
	if !strings.Contains(req.Messages[0].Content, "2 questions") {
		t.Error("question count missing from the user message")
	}
}

func TestFromTextDefaultsCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(mockQuizJSON)})
	svc := NewService(mock)

	if _, err := svc.FromText(context.Background(), "fractions", 0); err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "3 questions") {
		t.Error("zero count should fall back to 3 questions")
	}
}

func TestFromTextEmptyTopic(t *testing.T) {
	svc := NewService(llm.NewMockProvider())
	if _, err := svc.FromText(context.Background(), "   ", 3); err == nil {
		t.Error("expected error for blank topic")
	}
}

func TestFromTextProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	svc := NewService(mock)
	if _, err := svc.FromText(context.Background(), "algèbre", 3); err == nil {
		t.Error("expected provider error to propagate")
	}
}

func TestFromTextClampsBadCorrectIndex(t *testing.T) {
	bad := `{"questions":[{"question":"Q ?","options":["a","b","c","d"],"correctIndex":9}]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	svc := NewService(mock)

	quiz, err := svc.FromText(context.Background(), "test", 1)
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if quiz.Questions[0].CorrectIndex != 0 {
		t.Errorf("out-of-range correctIndex should clamp to 0, got %d", quiz.Questions[0].CorrectIndex)
	}
}

func TestFromTheme(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(mockQuizJSON)})
	svc := NewService(mock)

	quiz, theme, err := svc.FromTheme(context.Background(), "math-algebra-beginner", 2)
	if err != nil {
		t.Fatalf("FromTheme: %v", err)
	}
	if theme.Title != "Les bases de l'algèbre" {
		t.Errorf("theme title = %q", theme.Title)
	}
	if quiz.Topic != theme.Title {
		t.Errorf("quiz topic = %q, want theme title", quiz.Topic)
	}
	// The catalog prompt, not the theme id, drives generation.
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "équations simples") {
		t.Error("theme prompt missing from the user message")
	}
}

func TestFromThemeUnknown(t *testing.T) {
	svc := NewService(llm.NewMockProvider())
	_, _, err := svc.FromTheme(context.Background(), "nope-nope-nope", 3)
	if !errors.Is(err, ErrThemeNotFound) {
		t.Errorf("err = %v, want ErrThemeNotFound", err)
	}
}
