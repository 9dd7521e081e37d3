// Package difficulty decides the recommended tier for the next session.
package difficulty

import "github.com/abhisek/vidya/internal/content"

// Mastery thresholds. Both boundaries resolve to standard.
const (
	easyBelow   = 0.4
	expertAbove = 0.8
)

// NextTier maps a completed session's mastery ratio to the tier
// recommended for the learner's next session. Pure and total.
//
// There is no hysteresis: one weak session can drop a learner from
// expert straight to easy. Known sharp edge, kept to match the
// shipped behavior.
func NextTier(masteryRatio float64, current content.Tier) content.Tier {
	switch {
	case masteryRatio < easyBelow:
		return content.TierEasy
	case masteryRatio > expertAbove:
		return content.TierExpert
	default:
		return content.TierStandard
	}
}
