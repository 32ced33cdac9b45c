package crew

import (
	"sort"
	"strings"

	"github.com/admiralguff/majel/internal/types"
)

// candidate is one officer's memoized score for a specific crew slot within
// a single call.
type candidate struct {
	officer     types.Officer
	eval        types.OfficerEvaluation
	readiness   float64
	reservation float64
	viable      bool
	total       float64
}

// Recommend searches the (captain, bridge, bridge) trio space for the given
// pool and intent and returns a ranked, deduplicated, confidence-filtered
// shortlist.
//
// Fewer than three eligible officers is not an error: the result is simply
// empty. An unknown intent key is fatal to the call.
func (e *Engine) Recommend(req Request, pool []types.Officer, reservations []types.Reservation) ([]types.CrewRecommendation, error) {
	intent, ok := e.catalog.Intent(req.IntentKey)
	if !ok {
		return nil, &UnknownIntentError{Key: req.IntentKey}
	}

	eligible := make([]types.Officer, 0, len(pool))
	for _, o := range pool {
		if o.Owned() {
			eligible = append(eligible, o)
		}
	}
	if len(eligible) < 3 {
		return []types.CrewRecommendation{}, nil
	}

	ctx := BuildContext(intent, req.ShipClass, req.TargetClass, req.ContextOverrides)
	group := classifyIntent(req.IntentKey, ctx)
	c := e.contract

	resByID := make(map[string]*types.Reservation, len(reservations))
	for i := range reservations {
		resByID[reservations[i].OfficerID] = &reservations[i]
	}

	maxPower := 1
	for _, o := range eligible {
		if o.UserPower > maxPower {
			maxPower = o.UserPower
		}
	}

	// Per-call memoization keyed officerID+slot, so the pairwise loop reuses
	// the evaluations from the ranking passes.
	evalCache := make(map[string]types.OfficerEvaluation)
	score := func(o types.Officer, slot CrewSlot) candidate {
		key := o.ID + "|" + string(slot)
		eval, ok := evalCache[key]
		if !ok {
			eval = evaluateOfficer(o.ID, e.catalog.AbilitiesFor(o.ID), ctx, intent.Weights, slot, c)
			evalCache[key] = eval
		}
		cand := candidate{
			officer:     o,
			eval:        eval,
			readiness:   readinessBonus(o, maxPower, c),
			reservation: reservationPenalty(resByID[o.ID], c),
		}
		cand.total = roundScore(eval.TotalScore + cand.readiness - cand.reservation)
		return cand
	}

	captains := make([]candidate, 0, len(eligible))
	for _, o := range eligible {
		cand := score(o, SlotCaptain)
		cand.viable = isCaptainViable(e.catalog.AbilitiesFor(o.ID), ctx, intent.Weights, group, e.allow, c)
		captains = append(captains, cand)
	}
	sortCandidates(captains, true)

	candidates, pinnedNotViable, fallbackUsed, err := e.selectCaptains(req.CaptainID, captains)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(eligible))
	for _, o := range eligible {
		names[o.ID] = o.Name
	}

	seen := make(map[string]bool)
	var recs []types.CrewRecommendation

	for _, captain := range candidates {
		bridge := make([]candidate, 0, len(eligible)-1)
		for _, o := range eligible {
			if o.ID == captain.officer.ID {
				continue
			}
			bridge = append(bridge, score(o, SlotBridge))
		}
		sortCandidates(bridge, false)
		if len(bridge) > c.BridgeCandidates {
			bridge = bridge[:c.BridgeCandidates]
		}

		for i := 0; i < len(bridge); i++ {
			for j := i + 1; j < len(bridge); j++ {
				b1, b2 := bridge[i], bridge[j]

				key := trioKey(captain.officer.ID, b1.officer.ID, b2.officer.ID)
				if seen[key] {
					continue
				}
				seen[key] = true

				pairs := synergyPairs([3]types.Officer{captain.officer, b1.officer, b2.officer})
				mult := synergyMultiplier(pairs, c)
				total := roundScore((captain.total + b1.total + b2.total) * mult)

				entries := captain.eval.AllEntries()
				entries = append(entries, b1.eval.AllEntries()...)
				entries = append(entries, b2.eval.AllEntries()...)
				confidence := estimateConfidence(entries, c)

				recs = append(recs, types.CrewRecommendation{
					CaptainID:  captain.officer.ID,
					Bridge1ID:  b1.officer.ID,
					Bridge2ID:  b2.officer.ID,
					TotalScore: total,
					Confidence: confidence,
					Reasons: buildReasons(reasonInput{
						captain:         captain,
						bridge:          [2]candidate{b1, b2},
						names:           names,
						intentKey:       req.IntentKey,
						synergyPairs:    pairs,
						pinnedNotViable: pinnedNotViable,
						fallbackUsed:    fallbackUsed,
						contract:        c,
					}),
					Factors: map[string]float64{
						"captain_score":       captain.total,
						"bridge_score":        roundScore(b1.total + b2.total),
						"readiness_bonus":     roundScore(captain.readiness + b1.readiness + b2.readiness),
						"reservation_penalty": roundScore(captain.reservation + b1.reservation + b2.reservation),
						"synergy_multiplier":  mult,
					},
				})
			}
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].TotalScore != recs[j].TotalScore {
			return recs[i].TotalScore > recs[j].TotalScore
		}
		return recKey(recs[i]) < recKey(recs[j])
	})

	if req.MinConfidence != "" {
		kept := recs[:0]
		for _, r := range recs {
			if r.Confidence.Rank() >= req.MinConfidence.Rank() {
				kept = append(kept, r)
			}
		}
		recs = kept
	}

	limit := req.Limit
	if limit <= 0 {
		limit = c.DefaultLimit
	}
	if limit > c.MaxLimit {
		limit = c.MaxLimit
	}
	if len(recs) > limit {
		recs = recs[:limit]
	}
	if recs == nil {
		recs = []types.CrewRecommendation{}
	}
	return recs, nil
}

// selectCaptains picks the candidate captains: an explicit pin is always
// honored (even when not viable), otherwise the top-K viable captains, and
// when nobody is viable the top overall scorers with a fallback flag the
// rationale surfaces.
func (e *Engine) selectCaptains(pinID string, captains []candidate) (selected []candidate, pinnedNotViable, fallbackUsed bool, err error) {
	if pinID != "" {
		for _, cand := range captains {
			if cand.officer.ID == pinID {
				return []candidate{cand}, !cand.viable, false, nil
			}
		}
		return nil, false, false, &PinnedCaptainError{CaptainID: pinID}
	}

	for _, cand := range captains {
		if cand.viable && len(selected) < e.contract.CaptainCandidates {
			selected = append(selected, cand)
		}
	}
	if len(selected) > 0 {
		return selected, false, false, nil
	}

	n := e.contract.FallbackCaptains
	if n > len(captains) {
		n = len(captains)
	}
	return captains[:n], false, true, nil
}

// sortCandidates orders candidates best-first: viable captains ahead of
// non-viable ones (captain pass only), then total descending, then officer
// ID for a deterministic tie-break.
func sortCandidates(cands []candidate, viableFirst bool) {
	sort.SliceStable(cands, func(i, j int) bool {
		if viableFirst && cands[i].viable != cands[j].viable {
			return cands[i].viable
		}
		if cands[i].total != cands[j].total {
			return cands[i].total > cands[j].total
		}
		return cands[i].officer.ID < cands[j].officer.ID
	})
}

// trioKey builds the dedup key: captain plus the bridge pair in sorted order,
// so (b1,b2) and (b2,b1) collapse.
func trioKey(captainID, b1, b2 string) string {
	if b2 < b1 {
		b1, b2 = b2, b1
	}
	return captainID + "|" + b1 + "|" + b2
}

func recKey(r types.CrewRecommendation) string {
	return strings.Join([]string{r.CaptainID, r.Bridge1ID, r.Bridge2ID}, "|")
}
