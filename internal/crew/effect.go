package crew

import (
	"github.com/admiralguff/majel/internal/types"
)

// effectVerdict is the Effect Evaluator output: an applicability status plus
// the multiplier applied to the effect's contribution.
type effectVerdict struct {
	status     types.EffectStatus
	multiplier float64
}

// evaluateEffect decides whether one effect's claim applies to the target
// context. Pure function of its two inputs.
//
// An effect with no declared kinds or tags is unconditional and always works.
// A declared effect is blocked when nothing it declares matches the context,
// works when its kind matches and every declared tag is present, and
// conditional in between (the claim could apply but the context cannot
// confirm it).
func evaluateEffect(effect types.Effect, ctx types.TargetContext, c Contract) effectVerdict {
	declaredKinds := len(effect.AppliesToKinds) > 0
	declaredTags := len(effect.AppliesToTags) > 0

	if !declaredKinds && !declaredTags {
		return effectVerdict{status: types.EffectWorks, multiplier: 1.0}
	}

	kindMatch := !declaredKinds
	for _, k := range effect.AppliesToKinds {
		if types.TargetKind(k) == ctx.TargetKind {
			kindMatch = true
			break
		}
	}

	tagMatches := 0
	for _, tag := range effect.AppliesToTags {
		if ctx.HasTag(tag) {
			tagMatches++
		}
	}

	// Nothing declared matches: the effect cannot possibly apply here.
	if !kindMatch && tagMatches == 0 {
		return effectVerdict{status: types.EffectBlocked, multiplier: 0}
	}

	if kindMatch && (!declaredTags || tagMatches == len(effect.AppliesToTags)) {
		return effectVerdict{status: types.EffectWorks, multiplier: 1.0}
	}

	return effectVerdict{status: types.EffectConditional, multiplier: c.ConditionalApplicability}
}
