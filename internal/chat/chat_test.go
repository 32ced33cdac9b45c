package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admiralguff/majel/internal/crew"
	"github.com/admiralguff/majel/internal/types"
)

type stubCatalog struct {
	abilities map[string][]types.Ability
	intents   map[string]types.Intent
}

func (s stubCatalog) AbilitiesFor(officerID string) []types.Ability { return s.abilities[officerID] }

func (s stubCatalog) Intent(key string) (types.Intent, bool) {
	intent, ok := s.intents[key]
	return intent, ok
}

func floatPtr(v float64) *float64 { return &v }

func testOfficers() []types.Officer {
	return []types.Officer{
		{ID: "kirk", Name: "James Kirk", UserLevel: 40, UserPower: 900, OwnershipState: types.OwnershipOwned},
		{ID: "spock", Name: "Spock", UserLevel: 35, UserPower: 800, SynergyID: "tos", OwnershipState: types.OwnershipOwned},
		{ID: "uhura", Name: "Nyota Uhura", UserLevel: 30, UserPower: 700, OwnershipState: types.OwnershipOwned},
		{ID: "khan", Name: "Khan", UserLevel: 60, UserPower: 5000, OwnershipState: types.OwnershipUnowned},
	}
}

func testToolset() *Toolset {
	cat := stubCatalog{
		abilities: map[string][]types.Ability{
			"kirk": {
				{Name: "Maneuver", Slot: types.SlotCaptainManeuver, Effects: []types.Effect{
					{EffectKey: "damage_dealt", Magnitude: floatPtr(0.5)},
				}},
			},
			"spock": {
				{Name: "Logic", Slot: types.SlotOfficerAbility, Effects: []types.Effect{
					{EffectKey: "shield_mitigation", Magnitude: floatPtr(0.3)},
				}},
			},
			"uhura": {
				{Name: "Hailing Frequencies", Slot: types.SlotOfficerAbility, Effects: []types.Effect{
					{EffectKey: "damage_dealt", Magnitude: floatPtr(0.2)},
				}},
			},
		},
		intents: map[string]types.Intent{
			"pvp": {
				Key:            "pvp",
				DefaultContext: types.TargetContext{TargetKind: types.TargetPlayerShip},
				Weights:        map[string]float64{"damage_dealt": 1.0, "shield_mitigation": 0.8},
			},
		},
	}
	engine := crew.New(cat, crew.DefaultContract(), crew.DefaultAllowlists())
	officers := testOfficers()
	reservations := []types.Reservation{{OfficerID: "spock", ReservedFor: "mining", Locked: true}}
	return NewToolset(engine, officers, reservations, []string{"pvp"})
}

func TestRosterCSV_FoldsReservations(t *testing.T) {
	officers := testOfficers()
	reservations := []types.Reservation{{OfficerID: "spock", ReservedFor: "mining", Locked: true}}

	csv := RosterCSV(officers, reservations)

	lines := strings.Split(strings.TrimSpace(csv), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "id,name,level,power,synergy_group,ownership,reserved_for,locked", lines[0])
	assert.Equal(t, "spock,Spock,35,800,tos,owned,mining,true", lines[2])
	assert.Equal(t, "kirk,James Kirk,40,900,,owned,,false", lines[1])
}

func TestBuildSystemPrompt_CarriesRulesAndRoster(t *testing.T) {
	csv := RosterCSV(testOfficers(), nil)

	prompt := BuildSystemPrompt(csv, []string{"pvp", "mining-lat"})

	assert.Contains(t, prompt, "TRUTH:")
	assert.Contains(t, prompt, "Data not available in current roster.")
	assert.Contains(t, prompt, "recommend_crew")
	assert.Contains(t, prompt, "pvp, mining-lat")
	assert.Contains(t, prompt, "--- BEGIN ROSTER DATA ---")
	assert.Contains(t, prompt, "James Kirk")
}

func TestBuildSystemPrompt_NoIntents(t *testing.T) {
	prompt := BuildSystemPrompt("", nil)
	assert.Contains(t, prompt, "(none loaded)")
}

func TestToolset_Declarations(t *testing.T) {
	tools := testToolset().Declarations()

	require.Len(t, tools, 1)
	decls := tools[0].FunctionDeclarations
	require.Len(t, decls, 2)
	assert.Equal(t, "recommend_crew", decls[0].Name)
	assert.Equal(t, []string{"intent_key"}, decls[0].Parameters.Required)
	assert.Equal(t, "list_roster", decls[1].Name)
}

func TestDispatch_RecommendCrew(t *testing.T) {
	ts := testToolset()

	// The model sends JSON numbers as float64.
	result := ts.Dispatch("recommend_crew", map[string]any{
		"intent_key": "pvp",
		"limit":      float64(1),
	})

	require.NotContains(t, result, "error")
	recs, ok := result["recommendations"].([]any)
	require.True(t, ok)
	require.Len(t, recs, 1)

	rec := recs[0].(map[string]any)
	assert.Equal(t, "James Kirk", rec["captain"])
	assert.NotEmpty(t, rec["confidence"])
	assert.NotEmpty(t, rec["reasons"])
}

func TestDispatch_UnknownIntentReturnedAsValue(t *testing.T) {
	ts := testToolset()

	result := ts.Dispatch("recommend_crew", map[string]any{"intent_key": "warp-core-breach"})

	errMsg, ok := result["error"].(string)
	require.True(t, ok)
	assert.Contains(t, errMsg, "unknown intent")
}

func TestDispatch_UnknownToolReturnedAsValue(t *testing.T) {
	result := testToolset().Dispatch("self_destruct", nil)

	errMsg, ok := result["error"].(string)
	require.True(t, ok)
	assert.Contains(t, errMsg, "unknown tool")
}

func TestDispatch_ListRosterSkipsUnowned(t *testing.T) {
	result := testToolset().Dispatch("list_roster", nil)

	officers, ok := result["officers"].([]any)
	require.True(t, ok)
	require.Len(t, officers, 3)
	for _, o := range officers {
		assert.NotEqual(t, "khan", o.(map[string]any)["id"])
	}
}

func TestDispatch_TooFewOfficersNoted(t *testing.T) {
	ts := testToolset()
	small := NewToolset(ts.engine, ts.officers[:2], nil, ts.intentKeys)

	result := small.Dispatch("recommend_crew", map[string]any{"intent_key": "pvp"})

	assert.Contains(t, result, "note")
	assert.Empty(t, result["recommendations"])
}
