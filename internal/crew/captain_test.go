package crew

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/admiralguff/majel/internal/types"
)

func TestClassifyIntent_EconomyTokens(t *testing.T) {
	assert.Equal(t, GroupEconomy, classifyIntent("mining-lat", hostileContext()))
	assert.Equal(t, GroupEconomy, classifyIntent("cargo_run", hostileContext()))
	assert.Equal(t, GroupEconomy, classifyIntent("warp-range", hostileContext()))
}

func TestClassifyIntent_TargetKindFallback(t *testing.T) {
	assert.Equal(t, GroupCombat, classifyIntent("pvp", types.TargetContext{TargetKind: types.TargetPlayerShip}))
	assert.Equal(t, GroupCombat, classifyIntent("grinding", types.TargetContext{TargetKind: types.TargetHostile}))
	assert.Equal(t, GroupCombat, classifyIntent("takedown", types.TargetContext{TargetKind: types.TargetArmada}))
	assert.Equal(t, GroupEconomy, classifyIntent("idle", types.TargetContext{TargetKind: "asteroid_field"}))
}

func TestIsCaptainViable_AllowlistedEffect(t *testing.T) {
	abilities := []types.Ability{
		{Name: "Maneuver", Slot: types.SlotCaptainManeuver, Effects: []types.Effect{
			{EffectKey: "critical_chance", Magnitude: mag(0.1)},
		}},
	}

	viable := isCaptainViable(abilities, hostileContext(), map[string]float64{}, GroupCombat, DefaultAllowlists(), DefaultContract())
	assert.True(t, viable)
}

func TestIsCaptainViable_NonZeroWeightEscapeHatch(t *testing.T) {
	// Not on any allowlist, but the intent explicitly weights it.
	abilities := []types.Ability{
		{Name: "Maneuver", Slot: types.SlotCaptainManeuver, Effects: []types.Effect{
			{EffectKey: "isolytic_damage", Magnitude: mag(0.1)},
		}},
	}
	weights := map[string]float64{"isolytic_damage": 0.8}

	viable := isCaptainViable(abilities, hostileContext(), weights, GroupCombat, DefaultAllowlists(), DefaultContract())
	assert.True(t, viable)
}

func TestIsCaptainViable_MetaAmplifierCountsForAnyGroup(t *testing.T) {
	abilities := []types.Ability{
		{Name: "Maneuver", Slot: types.SlotCaptainManeuver, Effects: []types.Effect{
			{EffectKey: "officer_ability_effectiveness", Magnitude: mag(0.2)},
		}},
	}

	assert.True(t, isCaptainViable(abilities, hostileContext(), map[string]float64{}, GroupCombat, DefaultAllowlists(), DefaultContract()))
	assert.True(t, isCaptainViable(abilities, hostileContext(), map[string]float64{}, GroupEconomy, DefaultAllowlists(), DefaultContract()))
}

func TestIsCaptainViable_WrongGroupNotViable(t *testing.T) {
	// A real mining maneuver is irrelevant for a combat intent.
	abilities := []types.Ability{
		{Name: "Maneuver", Slot: types.SlotCaptainManeuver, Effects: []types.Effect{
			{EffectKey: "mining_rate", Magnitude: mag(0.5)},
		}},
	}

	viable := isCaptainViable(abilities, hostileContext(), map[string]float64{}, GroupCombat, DefaultAllowlists(), DefaultContract())
	assert.False(t, viable)
}

func TestIsCaptainViable_BlockedEffectsNotViable(t *testing.T) {
	abilities := []types.Ability{
		{Name: "Maneuver", Slot: types.SlotCaptainManeuver, Effects: []types.Effect{
			{EffectKey: "damage_dealt", Magnitude: mag(0.5), AppliesToKinds: []string{"station"}},
		}},
	}

	viable := isCaptainViable(abilities, hostileContext(), map[string]float64{"damage_dealt": 1.0}, GroupCombat, DefaultAllowlists(), DefaultContract())
	assert.False(t, viable)
}

func TestIsCaptainViable_InertManeuverNotViable(t *testing.T) {
	abilities := []types.Ability{
		{Name: "Maneuver", Slot: types.SlotCaptainManeuver, IsInert: true, Effects: []types.Effect{
			{EffectKey: "damage_dealt", Magnitude: mag(0.5)},
		}},
	}

	viable := isCaptainViable(abilities, hostileContext(), map[string]float64{"damage_dealt": 1.0}, GroupCombat, DefaultAllowlists(), DefaultContract())
	assert.False(t, viable)
}

func TestIsCaptainViable_NoManeuverNotViable(t *testing.T) {
	abilities := []types.Ability{
		{Name: "Ability", Slot: types.SlotOfficerAbility, Effects: []types.Effect{
			{EffectKey: "damage_dealt", Magnitude: mag(0.5)},
		}},
	}

	viable := isCaptainViable(abilities, hostileContext(), map[string]float64{"damage_dealt": 1.0}, GroupCombat, DefaultAllowlists(), DefaultContract())
	assert.False(t, viable)
}
