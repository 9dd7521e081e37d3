package progression

import (
	"github.com/abhisek/vidya/internal/assessment"
	"github.com/abhisek/vidya/internal/fluency"
	"github.com/abhisek/vidya/internal/learner"
)

// Badge names. Level badges are generated separately from these rules.
const (
	BadgeQuizMaster  = "Quiz Master"
	BadgeStreakStar  = "Streak Star"
	BadgeClearReader = "Clear Reader"
)

// streakStarDays is the run length that earns the streak badge.
const streakStarDays = 7

type badgeContext struct {
	assessment *assessment.Result
	fluency    *fluency.Result
}

type badgeRule struct {
	name    string
	applies func(p *learner.Profile, ctx badgeContext) bool
}

// badgeRules is evaluated in order after every recorded activity.
// Rules must be safe to re-run: AddBadge deduplicates, so a rule that
// stays true forever still grants only once.
var badgeRules = []badgeRule{
	{
		name: BadgeQuizMaster,
		applies: func(_ *learner.Profile, ctx badgeContext) bool {
			return ctx.assessment != nil &&
				ctx.assessment.MaxScore > 0 &&
				ctx.assessment.Score == ctx.assessment.MaxScore
		},
	},
	{
		name: BadgeStreakStar,
		applies: func(p *learner.Profile, _ badgeContext) bool {
			return p.StreakCount >= streakStarDays
		},
	},
	{
		name: BadgeClearReader,
		applies: func(_ *learner.Profile, ctx badgeContext) bool {
			return ctx.fluency != nil
		},
	},
}

func evaluateBadges(p *learner.Profile, ctx badgeContext) []string {
	var granted []string
	for _, rule := range badgeRules {
		if rule.applies(p, ctx) && p.AddBadge(rule.name) {
			granted = append(granted, rule.name)
		}
	}
	return granted
}
