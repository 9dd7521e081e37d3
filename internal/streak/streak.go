// Package streak derives the daily-engagement counter from calendar dates.
package streak

import (
	"time"

	"github.com/abhisek/vidya/internal/learner"
)

// Update applies today's engagement to the profile's streak. It compares
// calendar dates, not timestamps: a second session on the same day does
// not inflate the streak, the day after the last active day extends it,
// and anything else resets it to 1. Runs once per app open, not per action.
func Update(p *learner.Profile, today time.Time) {
	today = truncate(today)
	defer p.SetLastActive(today)

	last, ok := p.LastActive()
	if !ok {
		p.StreakCount = 1
		return
	}

	switch {
	case sameDay(last, today):
		// Same-day re-entry: no change.
	case sameDay(last.AddDate(0, 0, 1), today):
		p.StreakCount++
	default:
		p.StreakCount = 1
	}
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
