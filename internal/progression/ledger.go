// Package progression applies completed activities to the learner
// profile: XP grants, level boundaries, badges, and the next-session
// difficulty recommendation.
package progression

import (
	"fmt"

	"github.com/abhisek/vidya/internal/assessment"
	"github.com/abhisek/vidya/internal/content"
	"github.com/abhisek/vidya/internal/difficulty"
	"github.com/abhisek/vidya/internal/fluency"
	"github.com/abhisek/vidya/internal/learner"
)

const (
	// XPPerLevel is the XP span of one level.
	XPPerLevel = 500

	// FluencyBaseXP is granted for any finished reading attempt.
	FluencyBaseXP = 25
	// FluencyAccuracyBonusXP is added when reading accuracy clears the
	// bonus threshold.
	FluencyAccuracyBonusXP = 25

	fluencyBonusAccuracy = 80.0
)

// LevelUp describes a level boundary crossing.
type LevelUp struct {
	NewLevel int
	Badge    string
}

// Outcome summarizes what one completed activity earned.
type Outcome struct {
	XPGained  int
	NewBadges []string
	LevelUp   *LevelUp
	NextTier  content.Tier
}

// Level maps total XP to a level. Level 1 starts at zero XP.
func Level(xp int) int {
	return xp/XPPerLevel + 1
}

// RecordAssessment applies a completed quiz session to the profile.
// Module XP is granted on first completion only; repeats still update
// the best score and the difficulty recommendation.
func RecordAssessment(p *learner.Profile, m content.Module, res assessment.Result) Outcome {
	var gained int
	if !p.HasCompleted(m.ID) {
		gained = m.XPReward
	}
	p.MarkCompleted(m.ID)
	p.RecordScore(m.ID, res.Score)

	next := difficulty.NextTier(res.MasteryRatio(), p.PreferredDifficulty)
	p.PreferredDifficulty = next

	out := Outcome{
		XPGained: gained,
		NextTier: next,
	}
	out.NewBadges = evaluateBadges(p, badgeContext{assessment: &res})
	out.LevelUp = applyXP(p, gained)
	return out
}

// RecordFluency applies a finished reading attempt to the profile.
func RecordFluency(p *learner.Profile, res fluency.Result) Outcome {
	gained := FluencyBaseXP
	if res.AccuracyPercent > fluencyBonusAccuracy {
		gained += FluencyAccuracyBonusXP
	}

	out := Outcome{
		XPGained: gained,
		NextTier: p.PreferredDifficulty,
	}
	out.NewBadges = evaluateBadges(p, badgeContext{fluency: &res})
	out.LevelUp = applyXP(p, gained)
	return out
}

// applyXP adds the gained XP and crosses any level boundary, granting
// the level badge. At most one level-up is reported even if the grant
// spans several levels.
func applyXP(p *learner.Profile, gained int) *LevelUp {
	p.XP += gained

	newLevel := Level(p.XP)
	if newLevel <= p.Level {
		return nil
	}
	p.Level = newLevel

	badge := fmt.Sprintf("Level %d Master", newLevel)
	p.AddBadge(badge)
	return &LevelUp{NewLevel: newLevel, Badge: badge}
}
