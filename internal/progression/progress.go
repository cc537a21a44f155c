package progression

import "time"

// Progress is the progression state for one user: XP, derived level and
// streak counters. Fields are unexported so the only way to mutate state
// is through the engine operations in this package.
type Progress struct {
	userID        string
	xp            int
	level         Level
	currentStreak int
	maxStreak     int
	lastStudyDate *time.Time
}

// NewProgress returns the initial state for a freshly onboarded user.
func NewProgress(userID string) Progress {
	return Progress{
		userID: userID,
		level:  LevelBaby,
	}
}

// Restore rebuilds a Progress from persisted fields. The level is
// recomputed from XP rather than trusted, so a stored row can never
// carry an inconsistent xp/level pair back into the engine.
func Restore(userID string, xp, currentStreak, maxStreak int, lastStudyDate *time.Time) Progress {
	if maxStreak < currentStreak {
		maxStreak = currentStreak
	}
	var last *time.Time
	if lastStudyDate != nil {
		t := *lastStudyDate
		last = &t
	}
	return Progress{
		userID:        userID,
		xp:            xp,
		level:         LevelForXP(xp),
		currentStreak: currentStreak,
		maxStreak:     maxStreak,
		lastStudyDate: last,
	}
}

func (p Progress) UserID() string     { return p.userID }
func (p Progress) XP() int            { return p.xp }
func (p Progress) Level() Level       { return p.level }
func (p Progress) CurrentStreak() int { return p.currentStreak }
func (p Progress) MaxStreak() int     { return p.maxStreak }

// LastStudyDate returns a copy of the last completed session timestamp,
// or nil if no session was ever recorded.
func (p Progress) LastStudyDate() *time.Time {
	if p.lastStudyDate == nil {
		return nil
	}
	t := *p.lastStudyDate
	return &t
}
