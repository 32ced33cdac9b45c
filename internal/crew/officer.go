package crew

import (
	"math"

	"github.com/admiralguff/majel/internal/types"
)

// CrewSlot is the bridge position an officer is being evaluated for.
type CrewSlot string

// Crew slots considered by the trio engine. Below-deck assignment is a
// separate policy mechanism and never evaluated here.
const (
	SlotCaptain CrewSlot = "captain"
	SlotBridge  CrewSlot = "bridge"
)

// abilityActive reports whether an ability's slot activates in the given
// crew position: the captain seat activates the Captain Maneuver plus the
// Officer Ability; bridge seats activate the Officer Ability only.
func abilityActive(slot types.AbilitySlot, crewSlot CrewSlot) bool {
	switch slot {
	case types.SlotCaptainManeuver:
		return crewSlot == SlotCaptain
	case types.SlotOfficerAbility:
		return true
	default:
		return false
	}
}

// evaluateOfficer scores one officer's abilities against a target context for
// a given crew slot, producing the per-ability, per-effect breakdown.
//
// Each effect contributes magnitude x intentWeight x applicabilityMultiplier.
// An unknown magnitude is defaulted and discounted; an effect key absent from
// the intent's weight table scores zero and is flagged. The total is the
// scaled contribution sum minus a fixed deduction per uncertainty flag, so
// "we don't actually know what this does" cannot inflate a score.
func evaluateOfficer(officerID string, abilities []types.Ability, ctx types.TargetContext, weights map[string]float64, crewSlot CrewSlot, c Contract) types.OfficerEvaluation {
	eval := types.OfficerEvaluation{OfficerID: officerID}

	sum := 0.0
	unknownEffects := 0
	unknownMagnitudes := 0

	for _, ability := range abilities {
		if !abilityActive(ability.Slot, crewSlot) || ability.IsInert {
			continue
		}

		abilityEval := types.AbilityEvaluation{
			AbilityName: ability.Name,
			Slot:        ability.Slot,
			Entries:     make([]types.EffectScoreEntry, 0, len(ability.Effects)),
		}

		for _, effect := range ability.Effects {
			verdict := evaluateEffect(effect, ctx, c)

			weight, known := weights[effect.EffectKey]
			entry := types.EffectScoreEntry{
				EffectKey:               effect.EffectKey,
				Status:                  verdict.status,
				IntentWeight:            weight,
				ApplicabilityMultiplier: verdict.multiplier,
				IsUnknownEffectKey:      !known,
			}

			magnitude := c.UnknownMagnitudeValue
			discount := 1.0
			if effect.Magnitude != nil {
				magnitude = *effect.Magnitude
			} else {
				entry.HasUnknownMagnitude = true
				discount = c.UnknownMagnitudeDiscount
			}
			entry.Magnitude = magnitude
			entry.Contribution = magnitude * weight * verdict.multiplier * discount

			if !known {
				unknownEffects++
			}
			if entry.HasUnknownMagnitude {
				unknownMagnitudes++
			}

			sum += entry.Contribution
			abilityEval.Entries = append(abilityEval.Entries, entry)
		}

		eval.Abilities = append(eval.Abilities, abilityEval)
	}

	total := sum*c.ScoreScale -
		float64(unknownEffects)*c.UnknownEffectDeduction -
		float64(unknownMagnitudes)*c.UnknownMagnitudeDeduction
	eval.TotalScore = roundScore(total)

	return eval
}

// roundScore keeps scores stable for display and idempotence checks.
func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
