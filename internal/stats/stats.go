// Package stats aggregates study activity into the dashboard summary.
package stats

import (
	"context"
	"time"
)

// DayActivity is one day of the weekly progress strip.
type DayActivity struct {
	Day          string `json:"day"`
	Quizzes      int    `json:"quizzes"`
	StudyMinutes int    `json:"studyTime"`
}

// Summary is the analytics payload shown on the dashboard.
type Summary struct {
	TotalQuizzes    int           `json:"totalQuizzes"`
	AverageScore    int           `json:"averageScore"`
	TotalStudyTime  int           `json:"totalStudyTime"`
	FavoriteTopics  []string      `json:"favoriteTopics"`
	CurrentStreak   int           `json:"currentStreak"`
	WeeklyProgress  []DayActivity `json:"weeklyProgress"`
	Recommendations []string      `json:"recommendations"`
}

// Provider computes a Summary for a user.
type Provider interface {
	Summarize(ctx context.Context, userID string, now time.Time) (*Summary, error)
}

// weekDays are the labels for the weekly strip, Monday first.
var weekDays = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// weekdayIndex maps time.Weekday (Sunday = 0) onto weekDays.
func weekdayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
