package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/adelr/studypet/internal/store"
)

// StoreProvider computes the summary from recorded quiz attempts and
// completed study sessions.
type StoreProvider struct {
	profiles *store.ProfileRepo
	sessions *store.SessionRepo
	attempts *store.AttemptRepo
}

// NewStoreProvider creates a Provider backed by the database.
func NewStoreProvider(profiles *store.ProfileRepo, sessions *store.SessionRepo, attempts *store.AttemptRepo) *StoreProvider {
	return &StoreProvider{profiles: profiles, sessions: sessions, attempts: attempts}
}

// Summarize aggregates the user's activity. The weekly strip covers
// the 7 calendar days ending today.
func (p *StoreProvider) Summarize(ctx context.Context, userID string, now time.Time) (*Summary, error) {
	profile, err := p.profiles.Fetch(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile for user %s", userID)
	}

	attempts, err := p.attempts.AllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	weekStart := now.AddDate(0, 0, -6)
	sessions, err := p.sessions.CompletedSince(ctx, userID, startOfDay(weekStart))
	if err != nil {
		return nil, err
	}

	s := &Summary{
		TotalQuizzes:   len(attempts),
		TotalStudyTime: profile.TotalStudyMinutes,
		CurrentStreak:  profile.CurrentStreak,
		FavoriteTopics: favoriteTopics(attempts, 4),
		WeeklyProgress: make([]DayActivity, 7),
	}

	totalQuestions, totalCorrect := 0, 0
	for _, a := range attempts {
		totalQuestions += a.NumQuestions
		totalCorrect += a.NumCorrect
	}
	if totalQuestions > 0 {
		s.AverageScore = 100 * totalCorrect / totalQuestions
	}

	for i := range s.WeeklyProgress {
		day := weekStart.AddDate(0, 0, i)
		s.WeeklyProgress[i].Day = weekDays[weekdayIndex(day.Weekday())]
	}
	for _, a := range attempts {
		if idx, ok := weekSlot(weekStart, a.CompletedAt); ok {
			s.WeeklyProgress[idx].Quizzes++
		}
	}
	for _, sess := range sessions {
		if sess.EndedAt == nil {
			continue
		}
		if idx, ok := weekSlot(weekStart, *sess.EndedAt); ok {
			s.WeeklyProgress[idx].StudyMinutes += sess.DurationSeconds / 60
		}
	}

	s.Recommendations = recommend(s)
	return s, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// weekSlot maps t onto the 7-day strip starting at weekStart.
func weekSlot(weekStart, t time.Time) (int, bool) {
	days := int(startOfDay(t).Sub(startOfDay(weekStart)).Hours() / 24)
	if days < 0 || days > 6 {
		return 0, false
	}
	return days, true
}

// favoriteTopics returns the most attempted topics, ties broken
// alphabetically so output is stable.
func favoriteTopics(attempts []*store.Attempt, limit int) []string {
	counts := make(map[string]int)
	for _, a := range attempts {
		counts[a.Topic]++
	}
	topics := make([]string, 0, len(counts))
	for t := range counts {
		topics = append(topics, t)
	}
	sort.Slice(topics, func(i, j int) bool {
		if counts[topics[i]] != counts[topics[j]] {
			return counts[topics[i]] > counts[topics[j]]
		}
		return topics[i] < topics[j]
	})
	if len(topics) > limit {
		topics = topics[:limit]
	}
	return topics
}

func recommend(s *Summary) []string {
	var recs []string
	if s.CurrentStreak == 0 {
		recs = append(recs, "Lance une session d'étude aujourd'hui pour démarrer une série !")
	}
	if s.TotalQuizzes == 0 {
		recs = append(recs, "Essaie un premier quiz pour vérifier ce que tu as retenu.")
	} else if s.AverageScore < 60 {
		recs = append(recs, "Refais des quiz sur tes sujets difficiles pour progresser.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Continue comme ça, ta régularité paie !")
	}
	return recs
}
