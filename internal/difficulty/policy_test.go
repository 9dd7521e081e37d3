package difficulty

import (
	"testing"

	"github.com/abhisek/vidya/internal/content"
)

func TestNextTier(t *testing.T) {
	tests := []struct {
		ratio   float64
		current content.Tier
		want    content.Tier
	}{
		{0.0, content.TierStandard, content.TierEasy},
		{0.39, content.TierExpert, content.TierEasy},
		{0.4, content.TierEasy, content.TierStandard},  // boundary is non-strict
		{0.5, content.TierExpert, content.TierStandard},
		{0.8, content.TierEasy, content.TierStandard},  // boundary is non-strict
		{0.81, content.TierEasy, content.TierExpert},
		{1.0, content.TierStandard, content.TierExpert},
	}

	for _, tt := range tests {
		got := NextTier(tt.ratio, tt.current)
		if got != tt.want {
			t.Errorf("NextTier(%v, %s) = %s, want %s", tt.ratio, tt.current, got, tt.want)
		}
	}
}

func TestNextTierDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if got := NextTier(0.65, content.TierEasy); got != content.TierStandard {
			t.Fatalf("NextTier(0.65, easy) = %s on call %d, want standard", got, i)
		}
	}
}
