package types

import "github.com/google/uuid"

// Dock is a saved loadout: a named trio pinned to one of the player's
// drydock slots, usually materialized from a recommendation.
type Dock struct {
	ID        uuid.UUID `json:"id"`
	Slot      int       `json:"slot"`
	Name      string    `json:"name"`
	IntentKey string    `json:"intent_key,omitempty"`
	CaptainID string    `json:"captain_id"`
	Bridge1ID string    `json:"bridge1_id"`
	Bridge2ID string    `json:"bridge2_id"`
}
