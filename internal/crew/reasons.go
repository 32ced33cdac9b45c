package crew

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/admiralguff/majel/internal/types"
)

// maxEvidenceReasons caps how many per-effect evidence lines a rationale
// carries before it stops being readable.
const maxEvidenceReasons = 3

type reasonInput struct {
	captain         candidate
	bridge          [2]candidate
	names           map[string]string
	intentKey       string
	synergyPairs    int
	pinnedNotViable bool
	fallbackUsed    bool
	contract        Contract
}

type attributedEntry struct {
	officerName string
	entry       types.EffectScoreEntry
}

// buildReasons creates the ordered, human-readable rationale for one trio:
// eligibility warnings first, then the strongest effect evidence, then
// synergy and reservation notes. Callers surface these verbatim so the end
// user can judge trustworthiness.
func buildReasons(in reasonInput) []string {
	var reasons []string

	if in.pinnedNotViable {
		reasons = append(reasons, fmt.Sprintf(
			"Requested captain %s has no captain maneuver relevant to %s; honoring the explicit choice anyway",
			in.name(in.captain), in.intentKey))
	}
	if in.fallbackUsed {
		reasons = append(reasons, fmt.Sprintf(
			"No captain in the pool has a maneuver relevant to %s; falling back to the highest overall scorers",
			in.intentKey))
	}

	entries := in.collectEntries()
	sort.SliceStable(entries, func(i, j int) bool {
		return math.Abs(entries[i].entry.Contribution) > math.Abs(entries[j].entry.Contribution)
	})

	evidence := 0
	for _, ae := range entries {
		if evidence >= maxEvidenceReasons {
			break
		}
		e := ae.entry
		if e.Contribution == 0 {
			continue
		}
		switch e.Status {
		case types.EffectWorks:
			reasons = append(reasons, fmt.Sprintf("%s: %s %s (%s)",
				ae.officerName, e.EffectKey, worksVerb(e), signedScore(e.Contribution*in.contract.ScoreScale)))
		case types.EffectConditional:
			reasons = append(reasons, fmt.Sprintf("%s: %s applies only situationally here (%s)",
				ae.officerName, e.EffectKey, signedScore(e.Contribution*in.contract.ScoreScale)))
		default:
			continue
		}
		evidence++
	}
	if evidence == 0 {
		reasons = append(reasons, "No ability effect in this trio clearly applies; score rests on readiness alone")
	}

	if in.synergyPairs > 0 {
		bonus := float64(in.synergyPairs) * in.contract.SynergyBonusPerPair * 100
		noun := "pair"
		if in.synergyPairs > 1 {
			noun = "pairs"
		}
		reasons = append(reasons, fmt.Sprintf("Synergy: %d shared-group %s (+%.0f%%)", in.synergyPairs, noun, bonus))
	}

	for _, cand := range []candidate{in.captain, in.bridge[0], in.bridge[1]} {
		if cand.reservation > 0 {
			kind := "soft-reserved"
			if cand.reservation >= in.contract.LockedReservationPenalty {
				kind = "reserved (locked)"
			}
			reasons = append(reasons, fmt.Sprintf("%s is %s elsewhere (-%s)",
				in.name(cand), kind, trimFloat(cand.reservation)))
		}
	}

	return reasons
}

func (in reasonInput) name(c candidate) string {
	if n, ok := in.names[c.officer.ID]; ok && n != "" {
		return n
	}
	return c.officer.ID
}

func (in reasonInput) collectEntries() []attributedEntry {
	var out []attributedEntry
	for _, cand := range []candidate{in.captain, in.bridge[0], in.bridge[1]} {
		for _, e := range cand.eval.AllEntries() {
			out = append(out, attributedEntry{officerName: in.name(cand), entry: e})
		}
	}
	return out
}

func worksVerb(e types.EffectScoreEntry) string {
	if e.IntentWeight < 0 {
		return "hurts this activity"
	}
	return "works against this target"
}

func signedScore(v float64) string {
	if v >= 0 {
		return "+" + trimFloat(v)
	}
	return trimFloat(v)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
