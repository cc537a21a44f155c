package stats

import (
	"context"
	"hash/fnv"
	"math/rand"
	"time"
)

// MockProvider fabricates a plausible summary. Selected with
// STATS_PROVIDER=mock, it lets the dashboard be demoed on an empty
// database. Output is seeded on the user id so it is stable across
// reloads.
type MockProvider struct{}

// Summarize returns deterministic fake activity for the user.
func (MockProvider) Summarize(_ context.Context, userID string, now time.Time) (*Summary, error) {
	h := fnv.New64a()
	h.Write([]byte(userID))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	topics := []string{"Mathématiques", "Sciences", "Langues", "Histoire"}
	s := &Summary{
		TotalQuizzes:   rng.Intn(20) + 5,
		AverageScore:   rng.Intn(40) + 60,
		TotalStudyTime: rng.Intn(300) + 100,
		FavoriteTopics: topics[:rng.Intn(3)+2],
		CurrentStreak:  rng.Intn(7),
		WeeklyProgress: make([]DayActivity, 7),
	}

	weekStart := now.AddDate(0, 0, -6)
	for i := range s.WeeklyProgress {
		day := weekStart.AddDate(0, 0, i)
		s.WeeklyProgress[i] = DayActivity{
			Day:          weekDays[weekdayIndex(day.Weekday())],
			Quizzes:      rng.Intn(3),
			StudyMinutes: rng.Intn(60),
		}
	}
	s.Recommendations = recommend(s)
	return s, nil
}
