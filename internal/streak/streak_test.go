package streak

import (
	"testing"
	"time"

	"github.com/abhisek/vidya/internal/learner"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.Local)
}

func TestUpdateFirstEngagement(t *testing.T) {
	p := learner.New("", "")
	Update(p, day(2024, 3, 10))
	if p.StreakCount != 1 {
		t.Errorf("streak = %d, want 1 on first engagement", p.StreakCount)
	}
	if _, ok := p.LastActive(); !ok {
		t.Error("last active date not set")
	}
}

func TestUpdateSameDayNoInflation(t *testing.T) {
	p := learner.New("", "")
	Update(p, day(2024, 3, 10))
	Update(p, day(2024, 3, 10).Add(5*time.Hour))
	if p.StreakCount != 1 {
		t.Errorf("streak = %d after same-day re-entry, want 1", p.StreakCount)
	}
}

func TestUpdateConsecutiveDay(t *testing.T) {
	p := learner.New("", "")
	Update(p, day(2024, 3, 10))
	Update(p, day(2024, 3, 11))
	if p.StreakCount != 2 {
		t.Errorf("streak = %d after consecutive day, want 2", p.StreakCount)
	}
	Update(p, day(2024, 3, 12))
	if p.StreakCount != 3 {
		t.Errorf("streak = %d after third day, want 3", p.StreakCount)
	}
}

func TestUpdateGapResets(t *testing.T) {
	p := learner.New("", "")
	Update(p, day(2024, 3, 10))
	Update(p, day(2024, 3, 11))
	Update(p, day(2024, 3, 14))
	if p.StreakCount != 1 {
		t.Errorf("streak = %d after a gap, want 1", p.StreakCount)
	}
}

func TestUpdateAcrossMonthBoundary(t *testing.T) {
	p := learner.New("", "")
	Update(p, day(2024, 2, 29))
	Update(p, day(2024, 3, 1))
	if p.StreakCount != 2 {
		t.Errorf("streak = %d across month boundary, want 2", p.StreakCount)
	}
}
