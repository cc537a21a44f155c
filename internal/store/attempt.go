package store

import (
	"context"
	"fmt"
	"time"

	"github.com/adelr/studypet/ent"
	entattempt "github.com/adelr/studypet/ent/quizattempt"
)

// Attempt is one completed quiz.
type Attempt struct {
	UserID       string    `json:"userId"`
	Topic        string    `json:"topic"`
	ThemeID      string    `json:"themeId,omitempty"`
	NumQuestions int       `json:"numQuestions"`
	NumCorrect   int       `json:"numCorrect"`
	XPAwarded    int       `json:"xpAwarded"`
	CompletedAt  time.Time `json:"completedAt"`
}

// AttemptRepo records completed quizzes.
type AttemptRepo struct {
	client *ent.Client
}

// Record appends a completed quiz attempt.
func (r *AttemptRepo) Record(ctx context.Context, a *Attempt) error {
	create := r.client.QuizAttempt.Create().
		SetUserID(a.UserID).
		SetTopic(a.Topic).
		SetNumQuestions(a.NumQuestions).
		SetNumCorrect(a.NumCorrect).
		SetXpAwarded(a.XPAwarded)
	if a.ThemeID != "" {
		create.SetThemeID(a.ThemeID)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("record attempt: %w", err)
	}
	return nil
}

// Recent returns the user's latest attempts, newest first.
func (r *AttemptRepo) Recent(ctx context.Context, userID string, limit int) ([]*Attempt, error) {
	rows, err := r.client.QuizAttempt.Query().
		Where(entattempt.UserID(userID)).
		Order(ent.Desc(entattempt.FieldCompletedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	return fromEntAttempts(rows), nil
}

// AllForUser returns every attempt for the user, newest first.
func (r *AttemptRepo) AllForUser(ctx context.Context, userID string) ([]*Attempt, error) {
	rows, err := r.client.QuizAttempt.Query().
		Where(entattempt.UserID(userID)).
		Order(ent.Desc(entattempt.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	return fromEntAttempts(rows), nil
}

func fromEntAttempts(rows []*ent.QuizAttempt) []*Attempt {
	out := make([]*Attempt, len(rows))
	for i, a := range rows {
		out[i] = &Attempt{
			UserID:       a.UserID,
			Topic:        a.Topic,
			ThemeID:      a.ThemeID,
			NumQuestions: a.NumQuestions,
			NumCorrect:   a.NumCorrect,
			XPAwarded:    a.XpAwarded,
			CompletedAt:  a.CompletedAt,
		}
	}
	return out
}
