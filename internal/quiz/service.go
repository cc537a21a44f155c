package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/adelr/studypet/internal/llm"
)

// ErrThemeNotFound is returned when a theme id is not in the catalog.
var ErrThemeNotFound = errors.New("theme not found")

// Service generates quizzes through the LLM provider.
type Service struct {
	provider llm.Provider

	maxTokens   int
	temperature float64
}

// NewService creates a quiz generation service.
func NewService(provider llm.Provider) *Service {
	return &Service{
		provider:    provider,
		maxTokens:   1200,
		temperature: 0.7,
	}
}

// quizOutput is the raw LLM response before normalization.
type quizOutput struct {
	Questions []struct {
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correctIndex"`
	} `json:"questions"`
}

// FromText generates a quiz on a free-form topic, typically the text of
// the student's own notes or homework.
func (s *Service) FromText(ctx context.Context, topic string, numQuestions int) (*Quiz, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, errors.New("topic is empty")
	}
	count := clampCount(numQuestions)

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topic, count)},
		},
		Schema:      QuizSchema,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse quiz response: %w", err)
	}
	if len(raw.Questions) == 0 {
		return nil, errors.New("quiz response has no questions")
	}

	quiz := &Quiz{Topic: topic, Questions: make([]Question, 0, len(raw.Questions))}
	for _, q := range raw.Questions {
		idx := q.CorrectIndex
		if idx < 0 || idx >= len(q.Options) {
			idx = 0
		}
		quiz.Questions = append(quiz.Questions, Question{
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: idx,
		})
	}
	return quiz, nil
}

// FromTheme generates a quiz for a catalog theme. The returned theme
// carries the display metadata the client shows alongside the quiz.
func (s *Service) FromTheme(ctx context.Context, themeID string, numQuestions int) (*Quiz, *Theme, error) {
	theme := ThemeByID(themeID)
	if theme == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrThemeNotFound, themeID)
	}

	quiz, err := s.FromText(ctx, theme.Prompt, numQuestions)
	if err != nil {
		return nil, nil, err
	}
	quiz.Topic = theme.Title
	return quiz, theme, nil
}
