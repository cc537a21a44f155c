package progression

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	// Mid-afternoon on successive days, local time.
	return time.Date(2025, 3, 1, 15, 0, 0, 0, time.Local).AddDate(0, 0, d)
}

func TestLevelForXP(t *testing.T) {
	tests := []struct {
		xp   int
		want Level
	}{
		{0, LevelBaby},
		{19, LevelBaby},
		{20, LevelAdolescent},
		{59, LevelAdolescent},
		{60, LevelAdult},
		{200, LevelAdult},
	}
	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %q, want %q", tt.xp, got, tt.want)
		}
	}
}

func TestAddXPRecomputesLevel(t *testing.T) {
	p := NewProgress("u1")
	p = AddXP(p, 25)
	if p.XP() != 25 || p.Level() != LevelAdolescent {
		t.Fatalf("got xp=%d level=%q, want 25/adolescent", p.XP(), p.Level())
	}
	p = AddXP(p, 60)
	if p.XP() != 85 || p.Level() != LevelAdult {
		t.Fatalf("got xp=%d level=%q, want 85/adult", p.XP(), p.Level())
	}
}

func TestAddSubtractRoundTrip(t *testing.T) {
	p := AddXP(NewProgress("u1"), 45)
	p2 := AddXP(p, 30)
	p3, ok := SubtractXP(p2, 30)
	if !ok {
		t.Fatal("expected subtract to succeed")
	}
	if p3.XP() != p.XP() || p3.Level() != p.Level() {
		t.Errorf("round trip: got xp=%d level=%q, want xp=%d level=%q",
			p3.XP(), p3.Level(), p.XP(), p.Level())
	}
}

func TestSubtractXPInsufficientFunds(t *testing.T) {
	now := day(0)
	cur := RecordStudySession(AddXP(NewProgress("u1"), 10), now)

	next, ok := SubtractXP(cur, 50)
	if ok {
		t.Fatal("expected rejection")
	}
	if next != cur {
		t.Errorf("state changed on rejection: got %+v, want %+v", next, cur)
	}
}

func TestSubtractXPNeverNegative(t *testing.T) {
	p := AddXP(NewProgress("u1"), 30)
	p, ok := SubtractXP(p, 30)
	if !ok || p.XP() != 0 {
		t.Fatalf("exact spend: ok=%v xp=%d", ok, p.XP())
	}
	if _, ok := SubtractXP(p, 1); ok {
		t.Error("spend from zero should be rejected")
	}
}

func TestStreakLifecycle(t *testing.T) {
	p := NewProgress("u1")

	// First session ever.
	p = RecordStudySession(p, day(0))
	if p.CurrentStreak() != 1 || p.MaxStreak() != 1 {
		t.Fatalf("day 0: streak=%d max=%d, want 1/1", p.CurrentStreak(), p.MaxStreak())
	}

	// Second session same day: no change.
	p2 := RecordStudySession(p, day(0).Add(2*time.Hour))
	if p2.CurrentStreak() != 1 {
		t.Fatalf("same day: streak=%d, want 1", p2.CurrentStreak())
	}
	if !p2.LastStudyDate().Equal(*p.LastStudyDate()) {
		t.Error("same day session must not move lastStudyDate")
	}

	// Next day: increment.
	p = RecordStudySession(p, day(1))
	if p.CurrentStreak() != 2 || p.MaxStreak() != 2 {
		t.Fatalf("day 1: streak=%d max=%d, want 2/2", p.CurrentStreak(), p.MaxStreak())
	}

	// Skip a day: reset to 1, max stays.
	p = RecordStudySession(p, day(3))
	if p.CurrentStreak() != 1 {
		t.Errorf("after gap: streak=%d, want 1", p.CurrentStreak())
	}
	if p.MaxStreak() != 2 {
		t.Errorf("after gap: max=%d, want 2 (never decreased)", p.MaxStreak())
	}
}

func TestStreakCalendarDayBoundary(t *testing.T) {
	// 23:59 and 00:01 the next minute are different calendar days.
	late := time.Date(2025, 3, 1, 23, 59, 0, 0, time.Local)
	early := time.Date(2025, 3, 2, 0, 1, 0, 0, time.Local)

	p := RecordStudySession(NewProgress("u1"), late)
	p = RecordStudySession(p, early)
	if p.CurrentStreak() != 2 {
		t.Errorf("midnight boundary: streak=%d, want 2", p.CurrentStreak())
	}
}

func TestCheckStreakExpiry(t *testing.T) {
	base := RecordStudySession(NewProgress("u1"), day(0))

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{"same day", day(0).Add(time.Hour), 1},
		{"next day grace", day(1), 1},
		{"two days", day(2), 0},
		{"week later", day(7), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckStreakExpiry(base, tt.now)
			if got.CurrentStreak() != tt.want {
				t.Errorf("streak=%d, want %d", got.CurrentStreak(), tt.want)
			}
			if got.MaxStreak() != base.MaxStreak() {
				t.Error("expiry must not touch maxStreak")
			}
			if !got.LastStudyDate().Equal(*base.LastStudyDate()) {
				t.Error("expiry must not touch lastStudyDate")
			}
		})
	}
}

func TestCheckStreakExpiryNoHistory(t *testing.T) {
	p := NewProgress("u1")
	if got := CheckStreakExpiry(p, day(5)); got.CurrentStreak() != 0 || got.LastStudyDate() != nil {
		t.Error("expiry on empty history must be a no-op")
	}
}

func TestLapsedStreakRestarts(t *testing.T) {
	p := RecordStudySession(NewProgress("u1"), day(0))
	p = CheckStreakExpiry(p, day(3))
	if p.CurrentStreak() != 0 {
		t.Fatalf("streak=%d, want 0 after lapse", p.CurrentStreak())
	}
	p = RecordStudySession(p, day(3))
	if p.CurrentStreak() != 1 {
		t.Errorf("streak=%d, want 1 after restart", p.CurrentStreak())
	}
}

func TestRestoreRecomputesLevel(t *testing.T) {
	p := Restore("u1", 75, 3, 2, nil)
	if p.Level() != LevelAdult {
		t.Errorf("level=%q, want adult", p.Level())
	}
	// maxStreak is lifted to satisfy the invariant max >= current.
	if p.MaxStreak() != 3 {
		t.Errorf("maxStreak=%d, want 3", p.MaxStreak())
	}
}
