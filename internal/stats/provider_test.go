package stats

import (
	"context"
	"testing"
	"time"

	"github.com/adelr/studypet/internal/progression"
	"github.com/adelr/studypet/internal/store"
)

func newTestProvider(t *testing.T) (*StoreProvider, *store.Store) {
	t.Helper()
	st, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return NewStoreProvider(st.Profiles(), st.Sessions(), st.Attempts()), st
}

func TestSummarize(t *testing.T) {
	p, st := newTestProvider(t)
	ctx := context.Background()
	now := time.Now()

	err := st.Profiles().Create(ctx, &store.Profile{UserID: "u1", Name: "Léa"})
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if err := st.Profiles().AddStudyMinutes(ctx, "u1", 75); err != nil {
		t.Fatalf("add minutes: %v", err)
	}
	streak := 4
	if err := st.Profiles().ApplyUpdate(ctx, "u1", progression.Update{CurrentStreak: &streak}); err != nil {
		t.Fatalf("apply update: %v", err)
	}

	// Two quizzes on fractions, one on conjugaison.
	for _, a := range []*store.Attempt{
		{UserID: "u1", Topic: "fractions", NumQuestions: 3, NumCorrect: 3, XPAwarded: 60},
		{UserID: "u1", Topic: "fractions", NumQuestions: 3, NumCorrect: 2, XPAwarded: 40},
		{UserID: "u1", Topic: "conjugaison", NumQuestions: 4, NumCorrect: 1, XPAwarded: 20},
	} {
		if err := st.Attempts().Record(ctx, a); err != nil {
			t.Fatalf("record attempt: %v", err)
		}
	}

	sess, err := st.Sessions().Start(ctx, "u1", "fractions", 1500)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if err := st.Sessions().Finish(ctx, sess.ID, store.SessionCompleted, 25, now); err != nil {
		t.Fatalf("finish session: %v", err)
	}

	s, err := p.Summarize(ctx, "u1", now)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if s.TotalQuizzes != 3 {
		t.Errorf("totalQuizzes = %d, want 3", s.TotalQuizzes)
	}
	// 6 correct out of 10 questions.
	if s.AverageScore != 60 {
		t.Errorf("averageScore = %d, want 60", s.AverageScore)
	}
	if s.TotalStudyTime != 75 {
		t.Errorf("totalStudyTime = %d, want 75", s.TotalStudyTime)
	}
	if s.CurrentStreak != 4 {
		t.Errorf("currentStreak = %d, want 4", s.CurrentStreak)
	}
	if len(s.FavoriteTopics) != 2 || s.FavoriteTopics[0] != "fractions" {
		t.Errorf("favoriteTopics = %v", s.FavoriteTopics)
	}

	if len(s.WeeklyProgress) != 7 {
		t.Fatalf("weeklyProgress has %d days", len(s.WeeklyProgress))
	}
	today := s.WeeklyProgress[6]
	if today.Quizzes != 3 {
		t.Errorf("today's quizzes = %d, want 3", today.Quizzes)
	}
	if today.StudyMinutes != 25 {
		t.Errorf("today's study minutes = %d, want 25", today.StudyMinutes)
	}
	if len(s.Recommendations) == 0 {
		t.Error("expected at least one recommendation")
	}
}

func TestSummarizeUnknownUser(t *testing.T) {
	p, _ := newTestProvider(t)
	if _, err := p.Summarize(context.Background(), "ghost", time.Now()); err == nil {
		t.Error("expected error for missing profile")
	}
}

func TestFavoriteTopicsStableOrder(t *testing.T) {
	attempts := []*store.Attempt{
		{Topic: "b"}, {Topic: "a"}, {Topic: "c"}, {Topic: "c"},
	}
	got := favoriteTopics(attempts, 4)
	want := []string{"c", "a", "b"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("topics[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMockProviderIsDeterministic(t *testing.T) {
	now := time.Now()
	a, err := MockProvider{}.Summarize(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	b, _ := MockProvider{}.Summarize(context.Background(), "u1", now)
	if a.TotalQuizzes != b.TotalQuizzes || a.AverageScore != b.AverageScore {
		t.Error("same user should get the same mock summary")
	}
	if len(a.WeeklyProgress) != 7 {
		t.Errorf("weeklyProgress has %d days", len(a.WeeklyProgress))
	}
}
