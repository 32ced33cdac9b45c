package crew

import (
	"math"
	"sort"

	"github.com/admiralguff/majel/internal/types"
)

// estimateConfidence converts the uncertainty signals across a trio's
// combined score breakdown into a confidence bucket. Two trios with the same
// numeric score can differ sharply in how certain that score is; this
// communicates that separately from magnitude.
//
// The scalar starts at the contract base and loses points for unknown effect
// keys, unknown magnitudes, and conditional-status entries among the top
// contributors (uncertainty buried in low-order entries matters less).
func estimateConfidence(entries []types.EffectScoreEntry, c Contract) types.Confidence {
	score := c.ConfidenceBase

	for _, e := range entries {
		if e.IsUnknownEffectKey {
			score -= c.UnknownEffectConfidencePenalty
		}
		if e.HasUnknownMagnitude {
			score -= c.UnknownMagnitudeConfidencePenalty
		}
	}

	top := make([]types.EffectScoreEntry, len(entries))
	copy(top, entries)
	sort.SliceStable(top, func(i, j int) bool {
		return math.Abs(top[i].Contribution) > math.Abs(top[j].Contribution)
	})
	window := c.ConditionalWindow
	if window > len(top) {
		window = len(top)
	}
	for _, e := range top[:window] {
		if e.Status == types.EffectConditional {
			score -= c.ConditionalConfidencePenalty
		}
	}

	switch {
	case score >= c.HighMin:
		return types.ConfidenceHigh
	case score >= c.MediumMin:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}
