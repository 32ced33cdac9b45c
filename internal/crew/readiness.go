package crew

import (
	"math"

	"github.com/admiralguff/majel/internal/types"
)

// maxOfficerLevel is the level cap officers are normalized against.
const maxOfficerLevel = 60.0

// readinessBonus normalizes an officer's level and power into a small flat
// bonus. maxPower is the highest user power across the candidate pool for
// this call, floored at 1.
func readinessBonus(o types.Officer, maxPower int, c Contract) float64 {
	if maxPower < 1 {
		maxPower = 1
	}
	level := math.Min(1, float64(o.UserLevel)/maxOfficerLevel)
	power := math.Min(1, float64(o.UserPower)/float64(maxPower))
	bonus := c.LevelWeight*level + c.PowerWeight*power
	return math.Round(bonus*10) / 10
}

// reservationPenalty converts an officer's reservation state into a score
// deduction: a locked reservation all but removes the officer from
// consideration, a soft one merely discourages it.
func reservationPenalty(r *types.Reservation, c Contract) float64 {
	switch {
	case r == nil:
		return 0
	case r.Locked:
		return c.LockedReservationPenalty
	default:
		return c.SoftReservationPenalty
	}
}

// synergyPairs counts unordered pairs within a trio that share a non-empty
// synergy group.
func synergyPairs(trio [3]types.Officer) int {
	pairs := 0
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if trio[i].SynergyID != "" && trio[i].SynergyID == trio[j].SynergyID {
				pairs++
			}
		}
	}
	return pairs
}

// synergyMultiplier converts a shared-group pair count into the trio's
// multiplicative bonus.
func synergyMultiplier(pairs int, c Contract) float64 {
	return 1 + float64(pairs)*c.SynergyBonusPerPair
}
