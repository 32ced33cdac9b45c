// Package crew implements the effect-based crew scoring and recommendation
// engine: it evaluates officer ability effects against a target context,
// gates captain eligibility, and searches (captain, bridge, bridge) trios to
// produce a ranked, confidence-rated, explainable shortlist.
//
// The engine is synchronous and stateless per call: all inputs (officer pool,
// reservations, effect catalog) must be resolved by the caller before
// invocation, and nothing is shared across calls.
package crew

// Contract holds the scoring constants. It is an immutable value object
// passed in explicitly so tests can substitute alternate tunings; the zero
// value is not usable, start from DefaultContract.
type Contract struct {
	// Officer evaluation
	ScoreScale                float64 `json:"score_scale"`
	UnknownMagnitudeValue     float64 `json:"unknown_magnitude_value"`
	UnknownMagnitudeDiscount  float64 `json:"unknown_magnitude_discount"`
	ConditionalApplicability  float64 `json:"conditional_applicability"`
	UnknownEffectDeduction    float64 `json:"unknown_effect_deduction"`
	UnknownMagnitudeDeduction float64 `json:"unknown_magnitude_deduction"`

	// Readiness and reservations
	LevelWeight              float64 `json:"level_weight"`
	PowerWeight              float64 `json:"power_weight"`
	LockedReservationPenalty float64 `json:"locked_reservation_penalty"`
	SoftReservationPenalty   float64 `json:"soft_reservation_penalty"`

	// Synergy
	SynergyBonusPerPair float64 `json:"synergy_bonus_per_pair"`

	// Confidence
	ConfidenceBase                    float64 `json:"confidence_base"`
	UnknownEffectConfidencePenalty    float64 `json:"unknown_effect_confidence_penalty"`
	UnknownMagnitudeConfidencePenalty float64 `json:"unknown_magnitude_confidence_penalty"`
	ConditionalConfidencePenalty      float64 `json:"conditional_confidence_penalty"`
	ConditionalWindow                 int     `json:"conditional_window"`
	HighMin                           float64 `json:"high_min"`
	MediumMin                         float64 `json:"medium_min"`

	// Search bounds
	CaptainCandidates int `json:"captain_candidates"`
	BridgeCandidates  int `json:"bridge_candidates"`
	FallbackCaptains  int `json:"fallback_captains"`
	DefaultLimit      int `json:"default_limit"`
	MaxLimit          int `json:"max_limit"`
}

// DefaultContract returns the shipped scoring constants.
func DefaultContract() Contract {
	return Contract{
		ScoreScale:                10.0,
		UnknownMagnitudeValue:     1.0,
		UnknownMagnitudeDiscount:  0.5,
		ConditionalApplicability:  0.5,
		UnknownEffectDeduction:    0.5,
		UnknownMagnitudeDeduction: 0.25,

		LevelWeight:              3.0,
		PowerWeight:              2.0,
		LockedReservationPenalty: 25.0,
		SoftReservationPenalty:   8.0,

		SynergyBonusPerPair: 0.05,

		ConfidenceBase:                    1.0,
		UnknownEffectConfidencePenalty:    0.08,
		UnknownMagnitudeConfidencePenalty: 0.05,
		ConditionalConfidencePenalty:      0.10,
		ConditionalWindow:                 3,
		HighMin:                           0.75,
		MediumMin:                         0.45,

		CaptainCandidates: 6,
		BridgeCandidates:  14,
		FallbackCaptains:  2,
		DefaultLimit:      5,
		MaxLimit:          25,
	}
}

// Allowlists are the per-intent-group captain maneuver effect keys considered
// relevant even when the intent's weight table does not mention them. Meta
// keys (ability-effectiveness amplifiers) count for every group. Versioned,
// read-only configuration.
type Allowlists struct {
	Combat  []string `json:"combat"`
	Economy []string `json:"economy"`
	Meta    []string `json:"meta"`
}

// DefaultAllowlists returns the shipped captain-viability allowlists.
func DefaultAllowlists() Allowlists {
	return Allowlists{
		Combat: []string{
			"damage_dealt", "weapon_damage", "critical_chance", "critical_damage",
			"shots_per_round", "accuracy", "armor_piercing", "shield_piercing",
			"shield_mitigation", "hull_hp", "shield_hp", "armor", "dodge",
			"shield_deflection",
		},
		Economy: []string{
			"mining_rate", "mining_speed", "cargo_capacity", "protected_cargo",
			"warp_speed", "warp_range", "impulse_speed", "repair_cost",
			"repair_speed",
		},
		Meta: []string{
			"officer_ability_effectiveness", "captain_maneuver_effectiveness",
			"officer_stats", "crew_synergy_bonus",
		},
	}
}

// forGroup returns the allowed keys for an intent group as a set, meta keys
// included.
func (a Allowlists) forGroup(g IntentGroup) map[string]bool {
	set := make(map[string]bool, len(a.Combat)+len(a.Economy)+len(a.Meta))
	keys := a.Economy
	if g == GroupCombat {
		keys = a.Combat
	}
	for _, k := range keys {
		set[k] = true
	}
	for _, k := range a.Meta {
		set[k] = true
	}
	return set
}
