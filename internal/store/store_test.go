package store

import (
	"context"
	"testing"
	"time"

	"github.com/adelr/studypet/internal/progression"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases, so it
		// is skipped here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}
	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestProfileLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	// Missing profile reads as nil, not an error.
	p, err := repo.Fetch(ctx, "u1")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile before onboarding")
	}

	err = repo.Create(ctx, &Profile{
		UserID:           "u1",
		Name:             "Léa",
		AnimalType:       "dragon",
		AnimalName:       "Fumée",
		AnimalColor:      "violet",
		StudyGoalMinutes: 45,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	p, err = repo.Fetch(ctx, "u1")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if p == nil {
		t.Fatal("expected profile after create")
	}
	if p.XP != 0 || p.Level != "baby" || p.CurrentStreak != 0 || p.LastStudyDate != nil {
		t.Errorf("onboarding defaults wrong: %+v", p)
	}
}

func TestProfileApplyUpdateMergesFields(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	if err := repo.Create(ctx, &Profile{UserID: "u1", Name: "Léa"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	xp := 25
	lvl := progression.LevelAdolescent
	if err := repo.ApplyUpdate(ctx, "u1", progression.Update{XP: &xp, Level: &lvl}); err != nil {
		t.Fatalf("apply xp update: %v", err)
	}

	streak := 3
	now := time.Now()
	err := repo.ApplyUpdate(ctx, "u1", progression.Update{
		CurrentStreak: &streak,
		MaxStreak:     &streak,
		LastStudyDate: &now,
	})
	if err != nil {
		t.Fatalf("apply streak update: %v", err)
	}

	p, err := repo.Fetch(ctx, "u1")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if p.XP != 25 || p.Level != "adolescent" {
		t.Errorf("xp update lost: xp=%d level=%q", p.XP, p.Level)
	}
	if p.CurrentStreak != 3 || p.MaxStreak != 3 || p.LastStudyDate == nil {
		t.Errorf("streak update lost: %+v", p)
	}
}

func TestProfileApplyUpdateUnknownUser(t *testing.T) {
	s := openTestStore(t)
	xp := 10
	if err := s.Profiles().ApplyUpdate(context.Background(), "ghost", progression.Update{XP: &xp}); err == nil {
		t.Error("expected error for unknown user")
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	sess, err := repo.Start(ctx, "u1", "fractions", 1500)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if sess.Status != SessionActive || sess.DurationSeconds != 1500 {
		t.Errorf("new session: %+v", sess)
	}

	if err := repo.Finish(ctx, sess.ID, SessionCompleted, 25, time.Now()); err != nil {
		t.Fatalf("finish: %v", err)
	}

	// A finished session cannot be finished again.
	if err := repo.Finish(ctx, sess.ID, SessionCancelled, 0, time.Now()); err == nil {
		t.Error("expected error finishing a non-active session")
	}

	got, err := repo.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != SessionCompleted || got.XPAwarded != 25 || got.EndedAt == nil {
		t.Errorf("completed session: %+v", got)
	}
}

func TestCompletedSince(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	a, _ := repo.Start(ctx, "u1", "histoire", 1500)
	b, _ := repo.Start(ctx, "u1", "géométrie", 1500)
	c, _ := repo.Start(ctx, "u1", "anglais", 1500)

	now := time.Now()
	if err := repo.Finish(ctx, a.ID, SessionCompleted, 25, now.AddDate(0, 0, -10)); err != nil {
		t.Fatalf("finish a: %v", err)
	}
	if err := repo.Finish(ctx, b.ID, SessionCompleted, 25, now); err != nil {
		t.Fatalf("finish b: %v", err)
	}
	if err := repo.Finish(ctx, c.ID, SessionCancelled, 0, now); err != nil {
		t.Fatalf("finish c: %v", err)
	}

	got, err := repo.CompletedSince(ctx, "u1", now.AddDate(0, 0, -7))
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0].ID != b.ID {
		t.Errorf("got %d sessions, want only the recent completed one", len(got))
	}
}

func TestAttemptRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.Record(ctx, &Attempt{
			UserID:       "u1",
			Topic:        "révolution française",
			NumQuestions: 3,
			NumCorrect:   i,
			XPAwarded:    i * 20,
		})
		if err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	got, err := repo.Recent(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d attempts, want 2", len(got))
	}
}
