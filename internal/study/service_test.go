package study

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/adelr/studypet/internal/logger"
	"github.com/adelr/studypet/internal/progression"
	"github.com/adelr/studypet/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store, *progression.Service) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	prog := progression.NewService(st.Profiles(), logger.NewNop())
	svc := NewService(st.Sessions(), st.Profiles(), prog)
	return svc, st, prog
}

func createProfile(t *testing.T, st *store.Store, userID string) {
	t.Helper()
	err := st.Profiles().Create(context.Background(), &store.Profile{
		UserID:           userID,
		Name:             "Léa",
		AnimalType:       "dragon",
		StudyGoalMinutes: 30,
	})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
}

func TestStartDefaultsToFullCycle(t *testing.T) {
	svc, _, _ := newTestService(t)

	sess, err := svc.Start(context.Background(), "u1", "fractions", 0)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if sess.DurationSeconds != FullCycleSeconds {
		t.Errorf("duration = %d, want %d", sess.DurationSeconds, FullCycleSeconds)
	}
	if sess.Status != store.SessionActive {
		t.Errorf("status = %q", sess.Status)
	}
}

func TestStartRejectsEmptyTopic(t *testing.T) {
	svc, _, _ := newTestService(t)
	if _, err := svc.Start(context.Background(), "u1", "  ", 0); err == nil {
		t.Error("expected error for blank topic")
	}
}

func TestComplete(t *testing.T) {
	svc, st, prog := newTestService(t)
	ctx := context.Background()
	createProfile(t, st, "u1")

	sess, err := svc.Start(ctx, "u1", "fractions", FullCycleSeconds)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	cur := progression.NewProgress("u1")
	now := time.Now()
	done, next, err := svc.Complete(ctx, "u1", sess.ID, cur, now)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	prog.Wait()

	if done.Status != store.SessionCompleted || done.XPAwarded != SessionXP {
		t.Errorf("session after complete: %+v", done)
	}
	if next.XP() != SessionXP {
		t.Errorf("xp = %d, want %d", next.XP(), SessionXP)
	}
	if next.Level() != progression.LevelAdolescent {
		t.Errorf("level = %q, want adolescent at 25 xp", next.Level())
	}
	if next.CurrentStreak() != 1 {
		t.Errorf("streak = %d, want 1", next.CurrentStreak())
	}

	// Progress and study minutes landed in the profile row.
	p, err := st.Profiles().Fetch(ctx, "u1")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if p.XP != SessionXP || p.CurrentStreak != 1 {
		t.Errorf("persisted profile: xp=%d streak=%d", p.XP, p.CurrentStreak)
	}
	if p.TotalStudyMinutes != FullCycleSeconds/60 {
		t.Errorf("total minutes = %d, want %d", p.TotalStudyMinutes, FullCycleSeconds/60)
	}
}

func TestCompleteTwiceFails(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	createProfile(t, st, "u1")

	sess, _ := svc.Start(ctx, "u1", "fractions", FullCycleSeconds)
	cur := progression.NewProgress("u1")
	now := time.Now()

	_, cur, err := svc.Complete(ctx, "u1", sess.ID, cur, now)
	if err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if _, _, err := svc.Complete(ctx, "u1", sess.ID, cur, now); err == nil {
		t.Error("expected error completing a finished session")
	}
}

func TestCancelAwardsNothing(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	createProfile(t, st, "u1")

	sess, _ := svc.Start(ctx, "u1", "fractions", FullCycleSeconds)
	done, err := svc.Cancel(ctx, "u1", sess.ID, time.Now())
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if done.Status != store.SessionCancelled || done.XPAwarded != 0 {
		t.Errorf("cancelled session: %+v", done)
	}

	p, _ := st.Profiles().Fetch(ctx, "u1")
	if p.XP != 0 || p.CurrentStreak != 0 {
		t.Errorf("cancel must not touch progression: xp=%d streak=%d", p.XP, p.CurrentStreak)
	}
}

func TestOwnership(t *testing.T) {
	svc, st, _ := newTestService(t)
	ctx := context.Background()
	createProfile(t, st, "u1")

	sess, _ := svc.Start(ctx, "u1", "fractions", FullCycleSeconds)

	_, _, err := svc.Complete(ctx, "u2", sess.ID, progression.NewProgress("u2"), time.Now())
	if err != ErrNotOwner {
		t.Errorf("err = %v, want ErrNotOwner", err)
	}

	_, err = svc.Cancel(ctx, "u1", uuid.New(), time.Now())
	if err != ErrSessionNotFound {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}
