package progression

import (
	"context"
	"sync"
	"time"

	"github.com/adelr/studypet/internal/logger"
)

// Update is a partial write against the stored progression record. Nil
// fields are left untouched by the store.
type Update struct {
	XP            *int
	Level         *Level
	CurrentStreak *int
	MaxStreak     *int
	LastStudyDate *time.Time
}

// Store receives change notifications from the service. Implementations
// merge non-nil fields into the user's stored record. The service never
// waits for or retries these writes.
type Store interface {
	ApplyUpdate(ctx context.Context, userID string, u Update) error
}

// Service wraps the pure engine operations with best-effort persistence:
// every mutation returns the new snapshot immediately and flushes the
// changed fields to the store in the background. Local state wins; a
// failed write is logged and forgotten.
type Service struct {
	store Store
	log   *logger.Logger

	// persistTimeout bounds each background write.
	persistTimeout time.Duration

	wg sync.WaitGroup
}

// NewService creates a progression service backed by the given store.
func NewService(store Store, log *logger.Logger) *Service {
	return &Service{
		store:          store,
		log:            log,
		persistTimeout: 5 * time.Second,
	}
}

// AddXP applies an XP reward and persists {xp, level}.
func (s *Service) AddXP(ctx context.Context, cur Progress, delta int) Progress {
	next := AddXP(cur, delta)
	s.persist(ctx, next.userID, Update{XP: &next.xp, Level: &next.level})
	return next
}

// SubtractXP spends XP. On rejection nothing is persisted and the
// current snapshot is returned untouched.
func (s *Service) SubtractXP(ctx context.Context, cur Progress, cost int) (Progress, bool) {
	next, ok := SubtractXP(cur, cost)
	if !ok {
		return cur, false
	}
	s.persist(ctx, next.userID, Update{XP: &next.xp, Level: &next.level})
	return next, true
}

// RecordStudySession applies a completed session to the streak and
// persists {currentStreak, maxStreak, lastStudyDate}. The same-day case
// is a no-op and writes nothing.
func (s *Service) RecordStudySession(ctx context.Context, cur Progress, now time.Time) Progress {
	next := RecordStudySession(cur, now)
	if next.lastStudyDate == cur.lastStudyDate && next.currentStreak == cur.currentStreak {
		return cur
	}
	s.persist(ctx, next.userID, Update{
		CurrentStreak: &next.currentStreak,
		MaxStreak:     &next.maxStreak,
		LastStudyDate: next.lastStudyDate,
	})
	return next
}

// CheckStreakExpiry lapses an overdue streak and persists only
// {currentStreak}. Called on each dashboard load.
func (s *Service) CheckStreakExpiry(ctx context.Context, cur Progress, now time.Time) Progress {
	next := CheckStreakExpiry(cur, now)
	if next.currentStreak == cur.currentStreak {
		return cur
	}
	s.persist(ctx, next.userID, Update{CurrentStreak: &next.currentStreak})
	return next
}

// ApplyQuizReward is the quiz-completion path: one cumulative XP award,
// then a streak event, in that order. The reward is computed by the
// caller from the final answer sheet and applied exactly once.
func (s *Service) ApplyQuizReward(ctx context.Context, cur Progress, reward int, now time.Time) Progress {
	next := s.AddXP(ctx, cur, reward)
	return s.RecordStudySession(ctx, next, now)
}

// Wait blocks until all in-flight background writes have finished.
// Used by tests and graceful shutdown.
func (s *Service) Wait() {
	s.wg.Wait()
}

func (s *Service) persist(ctx context.Context, userID string, u Update) {
	if s.store == nil {
		return
	}
	// Detach from the request context so a finished handler does not
	// cancel the write.
	base := context.WithoutCancel(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		wctx, cancel := context.WithTimeout(base, s.persistTimeout)
		defer cancel()
		if err := s.store.ApplyUpdate(wctx, userID, u); err != nil {
			if s.log != nil {
				s.log.Warn("progress persist failed", "user_id", userID, "error", err)
			}
		}
	}()
}
