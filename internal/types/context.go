package types

// TargetKind classifies what the ship is pointed at.
type TargetKind string

// Target kinds.
const (
	TargetHostile    TargetKind = "hostile"
	TargetPlayerShip TargetKind = "player_ship"
	TargetStation    TargetKind = "station"
	TargetArmada     TargetKind = "armada_target"
	TargetMissionNPC TargetKind = "mission_npc"
)

// ShipContext carries what is known about the player's own ship for a call.
type ShipContext struct {
	ShipClass string `json:"ship_class,omitempty"`
}

// TargetContext is the situation an intent is scored against: target kind,
// engagement mode, and a set of semantic tags. Built once per recommendation
// call from an intent's default context plus caller overrides.
type TargetContext struct {
	TargetKind  TargetKind  `json:"target_kind"`
	Engagement  string      `json:"engagement,omitempty"`
	TargetTags  []string    `json:"target_tags,omitempty"`
	ShipContext ShipContext `json:"ship_context,omitempty"`
}

// HasTag reports whether the context carries the given tag.
func (c TargetContext) HasTag(tag string) bool {
	for _, t := range c.TargetTags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends a tag if it is not already present. Tags accumulate but the
// set never holds duplicates.
func (c *TargetContext) AddTag(tag string) {
	if tag == "" || c.HasTag(tag) {
		return
	}
	c.TargetTags = append(c.TargetTags, tag)
}

// Clone returns a deep copy so callers can layer overrides without mutating
// the intent's default context.
func (c TargetContext) Clone() TargetContext {
	out := c
	if len(c.TargetTags) > 0 {
		out.TargetTags = make([]string, len(c.TargetTags))
		copy(out.TargetTags, c.TargetTags)
	}
	return out
}

// Intent is a named player activity with a default target context and an
// effect-key weighting. Weights may be negative for effects that are actively
// undesirable for the activity. Versioned, read-only configuration.
type Intent struct {
	Key            string             `json:"key"`
	DefaultContext TargetContext      `json:"default_context"`
	Weights        map[string]float64 `json:"weights"`
}
