// Package types provides type definitions for structured data used throughout the Majel system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Ownership states for a roster officer.
const (
	OwnershipOwned   = "owned"
	OwnershipTarget  = "target" // wishlisted, shards being collected
	OwnershipUnowned = "unowned"
)

// Officer is a single roster entry: reference identity plus the player's
// ownership overlay. Immutable input to a scoring call.
type Officer struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	UserLevel      int    `json:"user_level"`
	UserPower      int    `json:"user_power"`
	SynergyID      string `json:"synergy_id,omitempty"` // empty means no synergy group
	OwnershipState string `json:"ownership_state"`
}

// Owned reports whether the officer can be placed on a bridge.
func (o Officer) Owned() bool {
	return o.OwnershipState != OwnershipUnowned && o.OwnershipState != ""
}

// Reservation marks an officer as held for a specific dock or activity.
type Reservation struct {
	OfficerID   string `json:"officer_id"`
	ReservedFor string `json:"reserved_for"`
	Locked      bool   `json:"locked"`
}
