package store

import (
	"context"
	"fmt"
	"time"

	"github.com/adelr/studypet/ent"
	entsession "github.com/adelr/studypet/ent/studysession"
	"github.com/google/uuid"
)

// Session states.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
)

// Session is one focus-timer cycle.
type Session struct {
	ID              uuid.UUID  `json:"id"`
	UserID          string     `json:"userId"`
	Topic           string     `json:"topic"`
	DurationSeconds int        `json:"durationSeconds"`
	Status          string     `json:"status"`
	XPAwarded       int        `json:"xpAwarded"`
	StartedAt       time.Time  `json:"startedAt"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
}

// SessionRepo manages focus sessions.
type SessionRepo struct {
	client *ent.Client
}

// Start records a new active session.
func (r *SessionRepo) Start(ctx context.Context, userID, topic string, durationSeconds int) (*Session, error) {
	s, err := r.client.StudySession.Create().
		SetUserID(userID).
		SetTopic(topic).
		SetDurationSeconds(durationSeconds).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return fromEntSession(s), nil
}

// Get returns a session by id, or nil when it does not exist.
func (r *SessionRepo) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	s, err := r.client.StudySession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return fromEntSession(s), nil
}

// Finish transitions an active session to completed or cancelled.
func (r *SessionRepo) Finish(ctx context.Context, id uuid.UUID, status string, xpAwarded int, endedAt time.Time) error {
	n, err := r.client.StudySession.Update().
		Where(entsession.ID(id), entsession.Status(SessionActive)).
		SetStatus(status).
		SetXpAwarded(xpAwarded).
		SetEndedAt(endedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("finish session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("finish session: %s is not active", id)
	}
	return nil
}

// CompletedSince returns the user's completed sessions with an end time
// at or after the cutoff, newest first.
func (r *SessionRepo) CompletedSince(ctx context.Context, userID string, cutoff time.Time) ([]*Session, error) {
	rows, err := r.client.StudySession.Query().
		Where(
			entsession.UserID(userID),
			entsession.Status(SessionCompleted),
			entsession.EndedAtGTE(cutoff),
		).
		Order(ent.Desc(entsession.FieldEndedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	out := make([]*Session, len(rows))
	for i, s := range rows {
		out[i] = fromEntSession(s)
	}
	return out, nil
}

func fromEntSession(s *ent.StudySession) *Session {
	return &Session{
		ID:              s.ID,
		UserID:          s.UserID,
		Topic:           s.Topic,
		DurationSeconds: s.DurationSeconds,
		Status:          s.Status,
		XPAwarded:       s.XpAwarded,
		StartedAt:       s.StartedAt,
		EndedAt:         s.EndedAt,
	}
}
