package types

// AbilitySlot identifies which crew position an ability activates in.
type AbilitySlot string

// Ability slots.
const (
	SlotCaptainManeuver AbilitySlot = "captain_maneuver"
	SlotOfficerAbility  AbilitySlot = "officer_ability"
	SlotBelowDeck       AbilitySlot = "below_deck_ability"
)

// Ability is one named ability belonging to an officer. Abilities are
// read-only reference data loaded from the effect catalog bundle.
type Ability struct {
	Name    string      `json:"name"`
	Slot    AbilitySlot `json:"slot"`
	IsInert bool        `json:"is_inert,omitempty"` // explicitly "does nothing"
	Effects []Effect    `json:"effects"`
}

// Effect is a single game-mechanical claim an ability makes, identified by a
// canonical effect key (e.g. "damage_dealt"). Magnitude is nil when the
// catalog could not extract a number from the ability text.
type Effect struct {
	EffectKey      string   `json:"effect_key"`
	Magnitude      *float64 `json:"magnitude,omitempty"`
	AppliesToKinds []string `json:"applies_to_kinds,omitempty"`
	AppliesToTags  []string `json:"applies_to_tags,omitempty"`
}
