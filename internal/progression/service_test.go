package progression

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/adelr/studypet/internal/logger"
)

// recordingStore collects ApplyUpdate calls for inspection.
type recordingStore struct {
	mu      sync.Mutex
	updates []Update
	users   []string
	err     error
}

func (r *recordingStore) ApplyUpdate(_ context.Context, userID string, u Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, userID)
	r.updates = append(r.updates, u)
	return r.err
}

func (r *recordingStore) all() []Update {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Update(nil), r.updates...)
}

func newTestService(store Store) *Service {
	return NewService(store, logger.NewNop())
}

func TestServiceAddXPPersistsXPAndLevel(t *testing.T) {
	rec := &recordingStore{}
	svc := newTestService(rec)

	next := svc.AddXP(context.Background(), NewProgress("u1"), 25)
	svc.Wait()

	if next.XP() != 25 || next.Level() != LevelAdolescent {
		t.Fatalf("snapshot: xp=%d level=%q", next.XP(), next.Level())
	}
	ups := rec.all()
	if len(ups) != 1 {
		t.Fatalf("got %d updates, want 1", len(ups))
	}
	u := ups[0]
	if u.XP == nil || *u.XP != 25 || u.Level == nil || *u.Level != LevelAdolescent {
		t.Errorf("persisted update %+v, want xp=25 level=adolescent", u)
	}
	if u.CurrentStreak != nil || u.LastStudyDate != nil {
		t.Error("xp update must not carry streak fields")
	}
}

func TestServiceReturnsBeforePersistCompletes(t *testing.T) {
	block := make(chan struct{})
	store := blockingStore{release: block}
	svc := newTestService(store)

	done := make(chan struct{})
	go func() {
		svc.AddXP(context.Background(), NewProgress("u1"), 5)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("AddXP blocked on persistence")
	}
	close(block)
	svc.Wait()
}

type blockingStore struct{ release chan struct{} }

func (b blockingStore) ApplyUpdate(context.Context, string, Update) error {
	<-b.release
	return nil
}

func TestServicePersistFailureKeepsLocalState(t *testing.T) {
	rec := &recordingStore{err: errors.New("store down")}
	svc := newTestService(rec)

	next := svc.AddXP(context.Background(), NewProgress("u1"), 10)
	svc.Wait()

	if next.XP() != 10 {
		t.Errorf("local state must win despite persist failure, xp=%d", next.XP())
	}
}

func TestServiceSubtractRejectionWritesNothing(t *testing.T) {
	rec := &recordingStore{}
	svc := newTestService(rec)

	cur := AddXP(NewProgress("u1"), 5)
	next, ok := svc.SubtractXP(context.Background(), cur, 50)
	svc.Wait()

	if ok {
		t.Fatal("expected rejection")
	}
	if next != cur {
		t.Error("rejection must leave the snapshot untouched")
	}
	if len(rec.all()) != 0 {
		t.Error("rejection must not persist anything")
	}
}

func TestServiceSameDaySessionWritesNothing(t *testing.T) {
	rec := &recordingStore{}
	svc := newTestService(rec)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)

	cur := svc.RecordStudySession(context.Background(), NewProgress("u1"), now)
	svc.Wait()
	if got := len(rec.all()); got != 1 {
		t.Fatalf("first session: %d updates, want 1", got)
	}

	cur = svc.RecordStudySession(context.Background(), cur, now.Add(time.Hour))
	svc.Wait()
	if got := len(rec.all()); got != 1 {
		t.Errorf("same-day session: %d updates, want still 1", got)
	}
	if cur.CurrentStreak() != 1 {
		t.Errorf("streak=%d, want 1", cur.CurrentStreak())
	}
}

func TestServiceExpiryPersistsOnlyCurrentStreak(t *testing.T) {
	rec := &recordingStore{}
	svc := newTestService(rec)
	d0 := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)

	cur := svc.RecordStudySession(context.Background(), NewProgress("u1"), d0)
	svc.Wait()
	rec.updates = nil

	cur = svc.CheckStreakExpiry(context.Background(), cur, d0.AddDate(0, 0, 3))
	svc.Wait()

	if cur.CurrentStreak() != 0 {
		t.Fatalf("streak=%d, want 0", cur.CurrentStreak())
	}
	ups := rec.all()
	if len(ups) != 1 {
		t.Fatalf("%d updates, want 1", len(ups))
	}
	u := ups[0]
	if u.CurrentStreak == nil || *u.CurrentStreak != 0 {
		t.Errorf("update %+v, want currentStreak=0", u)
	}
	if u.MaxStreak != nil || u.LastStudyDate != nil || u.XP != nil {
		t.Error("expiry must write currentStreak only")
	}
}

func TestServiceApplyQuizRewardOrdering(t *testing.T) {
	rec := &recordingStore{}
	svc := newTestService(rec)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.Local)

	// New user completes a focus session then an all-correct 3-question
	// quiz the same day.
	cur := svc.AddXP(context.Background(), NewProgress("u1"), 25)
	svc.Wait()
	cur = svc.RecordStudySession(context.Background(), cur, now)
	svc.Wait()
	cur = svc.ApplyQuizReward(context.Background(), cur, 60, now)
	svc.Wait()

	if cur.XP() != 85 || cur.Level() != LevelAdult {
		t.Errorf("xp=%d level=%q, want 85/adult", cur.XP(), cur.Level())
	}
	if cur.CurrentStreak() != 1 {
		t.Errorf("streak=%d, want 1 (no second same-day increment)", cur.CurrentStreak())
	}

	// Writes: xp(25), streak, xp(85). The same-day streak call inside
	// ApplyQuizReward writes nothing.
	ups := rec.all()
	if len(ups) != 3 {
		t.Fatalf("%d updates, want 3", len(ups))
	}
	if ups[2].XP == nil || *ups[2].XP != 85 {
		t.Errorf("final xp update %+v, want 85", ups[2])
	}
}
