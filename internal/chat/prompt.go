// Package chat implements the Majel fleet assistant: a Gemini chat session
// grounded in the player's roster, with function-calling tools over the crew
// recommendation engine.
package chat

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/admiralguff/majel/internal/types"
)

// RosterCSV serializes the roster to CSV for prompt grounding. Reservations
// are folded in so the model can answer "who is free" without a tool call.
func RosterCSV(officers []types.Officer, reservations []types.Reservation) string {
	resByID := make(map[string]types.Reservation, len(reservations))
	for _, r := range reservations {
		resByID[r.OfficerID] = r
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "name", "level", "power", "synergy_group", "ownership", "reserved_for", "locked"})
	for _, o := range officers {
		res := resByID[o.ID]
		_ = w.Write([]string{
			o.ID,
			o.Name,
			strconv.Itoa(o.UserLevel),
			strconv.Itoa(o.UserPower),
			o.SynergyID,
			o.OwnershipState,
			res.ReservedFor,
			strconv.FormatBool(res.Locked),
		})
	}
	w.Flush()
	return buf.String()
}

// BuildSystemPrompt constructs the strict system prompt. The rules carry
// over from the original assistant: answer only from the provided roster,
// admit unknowns, cite officers by name, no fluff.
func BuildSystemPrompt(rosterCSV string, intentKeys []string) string {
	return fmt.Sprintf(`You are Majel, the fleet intelligence assistant.

DATA SOURCE:
You have access to the player's officer roster below in CSV format, and to
tools that score crews against it.

RULES:
1. TRUTH: Use ONLY the provided roster data and tool results to answer questions about officers.
2. UNKNOWN: If the answer is not in the roster or a tool result, state "Data not available in current roster." Do not guess from outside lore.
3. CREWS: For any "who should I crew" question, call the recommend_crew tool instead of improvising. Pass one of the known intent keys: %s.
4. UNCERTAINTY: Always repeat a recommendation's confidence level and reasons verbatim so the player can judge trustworthiness.
5. DETERMINISM: Be concise and factual. No fluff.

--- BEGIN ROSTER DATA ---
%s--- END ROSTER DATA ---
`, formatIntentKeys(intentKeys), rosterCSV)
}

func formatIntentKeys(keys []string) string {
	if len(keys) == 0 {
		return "(none loaded)"
	}
	out := ""
	for i, k := range keys {
		if i > 0 {
			out += ", "
		}
		out += k
	}
	return out
}
