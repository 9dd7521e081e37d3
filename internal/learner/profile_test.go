package learner

import (
	"testing"
	"time"

	"github.com/abhisek/vidya/internal/content"
)

func TestNewProfileDefaults(t *testing.T) {
	p := New("Musa", "6")
	if p.Level != 1 {
		t.Errorf("level = %d, want 1", p.Level)
	}
	if p.XP != 0 {
		t.Errorf("xp = %d, want 0", p.XP)
	}
	if p.PreferredDifficulty != content.TierStandard {
		t.Errorf("preferred difficulty = %q, want standard", p.PreferredDifficulty)
	}
}

func TestMarkCompletedIdempotent(t *testing.T) {
	p := New("", "")
	p.MarkCompleted("math-1")
	p.MarkCompleted("math-1")
	if len(p.CompletedModules) != 1 {
		t.Errorf("completed modules = %v, want single entry", p.CompletedModules)
	}
	if !p.HasCompleted("math-1") {
		t.Error("HasCompleted(math-1) = false after MarkCompleted")
	}
}

func TestRecordScoreMonotone(t *testing.T) {
	p := New("", "")
	p.RecordScore("m", 20)
	p.RecordScore("m", 10)
	if p.BestScores["m"] != 20 {
		t.Errorf("best score = %d, want 20 (never decreases)", p.BestScores["m"])
	}
	p.RecordScore("m", 30)
	if p.BestScores["m"] != 30 {
		t.Errorf("best score = %d, want 30", p.BestScores["m"])
	}
}

func TestAddBadgeDeduplicates(t *testing.T) {
	p := New("", "")
	if !p.AddBadge("Quiz Master") {
		t.Error("first AddBadge returned false")
	}
	if p.AddBadge("Quiz Master") {
		t.Error("duplicate AddBadge returned true")
	}
	if len(p.Badges) != 1 {
		t.Errorf("badges = %v, want single entry", p.Badges)
	}
}

func TestLastActiveRoundTrip(t *testing.T) {
	p := New("", "")
	if _, ok := p.LastActive(); ok {
		t.Error("fresh profile should have no last-active date")
	}

	day := time.Date(2024, 3, 15, 14, 30, 0, 0, time.Local)
	p.SetLastActive(day)

	got, ok := p.LastActive()
	if !ok {
		t.Fatal("LastActive() not ok after SetLastActive")
	}
	if got.Year() != 2024 || got.Month() != 3 || got.Day() != 15 {
		t.Errorf("last active = %v, want 2024-03-15", got)
	}
	// Time of day is not preserved; only the calendar date matters.
	if got.Hour() != 0 {
		t.Errorf("last active hour = %d, want 0", got.Hour())
	}
}
