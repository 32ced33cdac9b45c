package crew

import (
	"strings"

	"github.com/admiralguff/majel/internal/types"
)

// IntentGroup is the coarse activity family used to pick a captain
// allowlist.
type IntentGroup string

// Intent groups.
const (
	GroupCombat  IntentGroup = "combat"
	GroupEconomy IntentGroup = "economy"
)

// economyTokens are intent-key tokens that mark a non-combat activity.
var economyTokens = map[string]bool{
	"mining": true,
	"cargo":  true,
	"warp":   true,
	"trade":  true,
	"survey": true,
}

// classifyIntent derives the intent group from the intent key's tokens, with
// a fallback on the context's target kind: anything pointed at a hostile,
// player, station, armada, or mission target is combat.
func classifyIntent(intentKey string, ctx types.TargetContext) IntentGroup {
	for _, token := range strings.FieldsFunc(intentKey, func(r rune) bool {
		return r == '-' || r == '_'
	}) {
		if economyTokens[strings.ToLower(token)] {
			return GroupEconomy
		}
	}

	switch ctx.TargetKind {
	case types.TargetHostile, types.TargetPlayerShip, types.TargetStation,
		types.TargetArmada, types.TargetMissionNPC:
		return GroupCombat
	}
	return GroupEconomy
}

// isCaptainViable reports whether an officer's Captain Maneuver does anything
// useful for this intent and context: at least one non-inert maneuver with an
// effect that is not blocked AND is either on the group's allowlist, carries
// a non-zero intent weight, or is a meta-amplifier key. This keeps a real but
// irrelevant maneuver (a mining-speed boost in PvP) off the captain seat.
func isCaptainViable(abilities []types.Ability, ctx types.TargetContext, weights map[string]float64, group IntentGroup, allow Allowlists, c Contract) bool {
	allowed := allow.forGroup(group)

	for _, ability := range abilities {
		if ability.Slot != types.SlotCaptainManeuver || ability.IsInert {
			continue
		}
		for _, effect := range ability.Effects {
			verdict := evaluateEffect(effect, ctx, c)
			if verdict.status == types.EffectBlocked {
				continue
			}
			if allowed[effect.EffectKey] || weights[effect.EffectKey] != 0 {
				return true
			}
		}
	}
	return false
}
