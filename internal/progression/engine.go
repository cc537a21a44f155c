package progression

import (
	"math"
	"time"
)

// AddXP returns a new Progress with delta applied and the level
// recomputed. Streak fields are untouched.
func AddXP(cur Progress, delta int) Progress {
	next := cur
	next.xp = cur.xp + delta
	next.level = LevelForXP(next.xp)
	return next
}

// SubtractXP spends XP, e.g. on companion food. When the balance is too
// low the state is returned unchanged with ok=false; this is a normal
// user-visible rejection, not an error. XP can never go negative here.
func SubtractXP(cur Progress, cost int) (Progress, bool) {
	if cur.xp < cost {
		return cur, false
	}
	next := cur
	next.xp = cur.xp - cost
	next.level = LevelForXP(next.xp)
	return next, true
}

// RecordStudySession applies a completed study session to the streak
// counters. At most one increment per calendar day:
//
//   - no history         -> streak 1
//   - same calendar day  -> unchanged
//   - consecutive day    -> streak + 1
//   - gap of 2+ days     -> streak restarts at 1
func RecordStudySession(cur Progress, now time.Time) Progress {
	newStreak := 1
	if cur.lastStudyDate != nil {
		switch daysBetween(*cur.lastStudyDate, now) {
		case 0:
			return cur
		case 1:
			newStreak = cur.currentStreak + 1
		}
	}

	next := cur
	next.currentStreak = newStreak
	if newStreak > next.maxStreak {
		next.maxStreak = newStreak
	}
	t := now
	next.lastStudyDate = &t
	return next
}

// CheckStreakExpiry lapses the streak when more than one full calendar
// day passed without a session. A last session yesterday still protects
// the streak, since a session today would count as consecutive.
// MaxStreak and LastStudyDate are never touched by expiry.
func CheckStreakExpiry(cur Progress, now time.Time) Progress {
	if cur.lastStudyDate == nil || cur.currentStreak == 0 {
		return cur
	}
	if daysBetween(*cur.lastStudyDate, now) <= 1 {
		return cur
	}
	next := cur
	next.currentStreak = 0
	return next
}

// calendarDay truncates a timestamp to its local calendar date. Streak
// arithmetic works on dates, not elapsed 24h windows: 23:59 and 00:01
// the next minute are two different days.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// daysBetween returns the whole calendar days from a to b. Rounding
// absorbs the 23h/25h days around DST transitions.
func daysBetween(a, b time.Time) int {
	return int(math.Round(calendarDay(b).Sub(calendarDay(a)).Hours() / 24))
}
