package learner

import (
	"time"

	"github.com/abhisek/vidya/internal/content"
)

// dateLayout is the calendar-date form used for streak tracking.
// Dates are local: a "day" is the learner's day, not UTC's.
const dateLayout = "2006-01-02"

// Profile is the whole learner record. It is owned by the device session,
// mutated only by the progression ledger and streak tracker, and persisted
// as a single serialized value after every mutation.
type Profile struct {
	Name  string `json:"name,omitempty"`
	Grade string `json:"grade,omitempty"`

	XP    int `json:"xp"`
	Level int `json:"level"`

	CompletedModules []string       `json:"completed_modules"`
	BestScores       map[string]int `json:"best_scores"`
	Badges           []string       `json:"badges"`

	StreakCount    int    `json:"streak_count"`
	LastActiveDate string `json:"last_active_date,omitempty"`

	PreferredDifficulty content.Tier `json:"preferred_difficulty"`

	// PendingSyncCount is the number of locally committed mutations not
	// yet acknowledged by a remote authority. Display only: nothing in
	// this build drains it.
	PendingSyncCount int `json:"pending_sync_count"`

	// Optional variant fields; absent in the common profile shape.
	Language    string         `json:"language,omitempty"`
	VocabScores map[string]int `json:"vocab_scores,omitempty"`
}

// New returns a fresh profile at level 1 with standard difficulty.
func New(name, grade string) *Profile {
	return &Profile{
		Name:                name,
		Grade:               grade,
		Level:               1,
		BestScores:          map[string]int{},
		PreferredDifficulty: content.TierStandard,
	}
}

// HasCompleted reports whether the module has been completed before.
func (p *Profile) HasCompleted(moduleID string) bool {
	for _, id := range p.CompletedModules {
		if id == moduleID {
			return true
		}
	}
	return false
}

// MarkCompleted adds the module to the completed set. Idempotent.
func (p *Profile) MarkCompleted(moduleID string) {
	if !p.HasCompleted(moduleID) {
		p.CompletedModules = append(p.CompletedModules, moduleID)
	}
}

// RecordScore updates the module's best score, which never decreases.
func (p *Profile) RecordScore(moduleID string, score int) {
	if p.BestScores == nil {
		p.BestScores = map[string]int{}
	}
	if score > p.BestScores[moduleID] {
		p.BestScores[moduleID] = score
	}
}

// HasBadge reports whether the badge has been granted.
func (p *Profile) HasBadge(name string) bool {
	for _, b := range p.Badges {
		if b == name {
			return true
		}
	}
	return false
}

// AddBadge grants a badge, keeping the set deduplicated.
// Returns true if the badge was newly added.
func (p *Profile) AddBadge(name string) bool {
	if p.HasBadge(name) {
		return false
	}
	p.Badges = append(p.Badges, name)
	return true
}

// LastActive returns the last-active calendar date, if any.
func (p *Profile) LastActive() (time.Time, bool) {
	if p.LastActiveDate == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(dateLayout, p.LastActiveDate, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SetLastActive records the given day as the last-active date.
func (p *Profile) SetLastActive(day time.Time) {
	p.LastActiveDate = day.Format(dateLayout)
}
