package study

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adelr/studypet/internal/progression"
	"github.com/adelr/studypet/internal/store"
)

const (
	// FullCycleSeconds is the length of one focus session.
	FullCycleSeconds = 25 * 60

	// SessionXP is awarded for completing a full focus session.
	SessionXP = 25
)

// ErrSessionNotFound is returned for an unknown session id.
var ErrSessionNotFound = errors.New("session not found")

// ErrNotOwner is returned when a session belongs to a different user.
var ErrNotOwner = errors.New("session belongs to another user")

// Service runs focus sessions and wires their completion into the
// user's progression.
type Service struct {
	sessions    *store.SessionRepo
	profiles    *store.ProfileRepo
	progression *progression.Service
}

// NewService creates a study session service.
func NewService(sessions *store.SessionRepo, profiles *store.ProfileRepo, prog *progression.Service) *Service {
	return &Service{sessions: sessions, profiles: profiles, progression: prog}
}

// Start opens a focus session on a topic. Duration defaults to one
// full cycle.
func (s *Service) Start(ctx context.Context, userID, topic string, durationSeconds int) (*store.Session, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, errors.New("topic is empty")
	}
	if durationSeconds <= 0 {
		durationSeconds = FullCycleSeconds
	}
	return s.sessions.Start(ctx, userID, topic, durationSeconds)
}

// Complete closes a session and applies the reward: session XP first,
// then the streak update, so the streak reflects the same study moment
// that earned the XP. Returns the session and the updated progress.
func (s *Service) Complete(ctx context.Context, userID string, id uuid.UUID, cur progression.Progress, now time.Time) (*store.Session, progression.Progress, error) {
	sess, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, cur, err
	}

	if err := s.sessions.Finish(ctx, id, store.SessionCompleted, SessionXP, now); err != nil {
		return nil, cur, fmt.Errorf("failed to complete session: %w", err)
	}

	next := s.progression.AddXP(ctx, cur, SessionXP)
	next = s.progression.RecordStudySession(ctx, next, now)

	if err := s.profiles.AddStudyMinutes(ctx, userID, sess.DurationSeconds/60); err != nil {
		return nil, next, fmt.Errorf("failed to record study minutes: %w", err)
	}

	done, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, next, err
	}
	return done, next, nil
}

// Cancel discards an active session. No XP, no streak.
func (s *Service) Cancel(ctx context.Context, userID string, id uuid.UUID, now time.Time) (*store.Session, error) {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return nil, err
	}
	if err := s.sessions.Finish(ctx, id, store.SessionCancelled, 0, now); err != nil {
		return nil, fmt.Errorf("failed to cancel session: %w", err)
	}
	return s.sessions.Get(ctx, id)
}

func (s *Service) owned(ctx context.Context, userID string, id uuid.UUID) (*store.Session, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	if sess.UserID != userID {
		return nil, ErrNotOwner
	}
	return sess, nil
}
