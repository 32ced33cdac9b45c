package types

// EffectStatus is the applicability verdict for one effect in one context.
type EffectStatus string

// Effect statuses.
const (
	EffectWorks       EffectStatus = "works"
	EffectConditional EffectStatus = "conditional"
	EffectBlocked     EffectStatus = "blocked"
)

// EffectScoreEntry is the evaluation record for a single effect against a
// single context. Produced fresh per call; never persisted.
type EffectScoreEntry struct {
	EffectKey               string       `json:"effect_key"`
	Status                  EffectStatus `json:"status"`
	IntentWeight            float64      `json:"intent_weight"`
	Magnitude               float64      `json:"magnitude"`
	ApplicabilityMultiplier float64      `json:"applicability_multiplier"`
	Contribution            float64      `json:"contribution"`
	IsUnknownEffectKey      bool         `json:"is_unknown_effect_key,omitempty"`
	HasUnknownMagnitude     bool         `json:"has_unknown_magnitude,omitempty"`
}

// AbilityEvaluation is the per-effect breakdown for one activated ability.
type AbilityEvaluation struct {
	AbilityName string             `json:"ability_name"`
	Slot        AbilitySlot        `json:"slot"`
	Entries     []EffectScoreEntry `json:"entries"`
}

// OfficerEvaluation is one officer's full breakdown for a single
// (officer, context, weights, slot) tuple.
type OfficerEvaluation struct {
	OfficerID  string              `json:"officer_id"`
	Abilities  []AbilityEvaluation `json:"abilities"`
	TotalScore float64             `json:"total_score"`
}

// AllEntries flattens the per-ability breakdowns into one entry list.
func (e OfficerEvaluation) AllEntries() []EffectScoreEntry {
	var out []EffectScoreEntry
	for _, a := range e.Abilities {
		out = append(out, a.Entries...)
	}
	return out
}
