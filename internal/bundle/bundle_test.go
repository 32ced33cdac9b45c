package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admiralguff/majel/internal/crew"
	"github.com/admiralguff/majel/internal/types"
)

const validBundle = `{
	"catalog_version": "2026.08.1",
	"officers": {
		"kirk": [
			{
				"name": "Corbomite Maneuver",
				"slot": "captain_maneuver",
				"effects": [
					{"effect_key": "shield_mitigation", "magnitude": 0.4, "applies_to_kinds": ["hostile", "player_ship"]}
				]
			},
			{
				"name": "Bold Gambit",
				"slot": "officer_ability",
				"effects": [
					{"effect_key": "damage_dealt", "magnitude": null}
				]
			}
		]
	},
	"intents": {
		"pvp": {
			"default_context": {"target_kind": "player_ship"},
			"weights": {"damage_dealt": 1.0, "shield_mitigation": 0.8}
		},
		"mining-lat": {
			"default_context": {"target_kind": "asteroid_field", "target_tags": ["resource_latinum"]},
			"weights": {"mining_rate": 1.0}
		}
	}
}`

func TestParse_ValidBundle(t *testing.T) {
	b, err := Parse([]byte(validBundle))
	require.NoError(t, err)

	assert.Equal(t, "2026.08.1", b.Version())
	assert.Equal(t, []string{"mining-lat", "pvp"}, b.IntentKeys())

	abilities := b.AbilitiesFor("kirk")
	require.Len(t, abilities, 2)
	assert.Equal(t, types.SlotCaptainManeuver, abilities[0].Slot)
	assert.Nil(t, abilities[1].Effects[0].Magnitude)

	assert.Nil(t, b.AbilitiesFor("nobody"))

	intent, ok := b.Intent("pvp")
	require.True(t, ok)
	assert.Equal(t, "pvp", intent.Key)
	assert.Equal(t, types.TargetPlayerShip, intent.DefaultContext.TargetKind)
	assert.Equal(t, 1.0, intent.Weights["damage_dealt"])

	_, ok = b.Intent("warp-core-breach")
	assert.False(t, ok)
}

func TestParse_DefaultsWithoutOverrides(t *testing.T) {
	b, err := Parse([]byte(validBundle))
	require.NoError(t, err)

	assert.Equal(t, crew.DefaultContract(), b.Contract())
	assert.Equal(t, crew.DefaultAllowlists(), b.Allowlists())
}

func TestParse_ContractOverridesMergeOverDefaults(t *testing.T) {
	withContract := `{
		"catalog_version": "1",
		"officers": {},
		"intents": {},
		"contract": {"score_scale": 100.0, "default_limit": 3}
	}`

	b, err := Parse([]byte(withContract))
	require.NoError(t, err)

	c := b.Contract()
	assert.Equal(t, 100.0, c.ScoreScale)
	assert.Equal(t, 3, c.DefaultLimit)
	// Untouched constants keep their defaults.
	assert.Equal(t, crew.DefaultContract().SynergyBonusPerPair, c.SynergyBonusPerPair)
}

func TestParse_AllowlistOverridesReplaceDefaults(t *testing.T) {
	withAllowlists := `{
		"catalog_version": "1",
		"officers": {},
		"intents": {},
		"captain_allowlists": {
			"combat": ["damage_dealt"],
			"economy": ["mining_rate"],
			"meta": []
		}
	}`

	b, err := Parse([]byte(withAllowlists))
	require.NoError(t, err)

	allow := b.Allowlists()
	assert.Equal(t, []string{"damage_dealt"}, allow.Combat)
	assert.Equal(t, []string{"mining_rate"}, allow.Economy)
	assert.Empty(t, allow.Meta)
}

func TestParse_MissingRequiredFields(t *testing.T) {
	_, err := Parse([]byte(`{"officers": {}, "intents": {}}`))

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "catalog_version")
}

func TestParse_RejectsBadSlot(t *testing.T) {
	bad := `{
		"catalog_version": "1",
		"officers": {
			"kirk": [{"name": "X", "slot": "warp_core", "effects": [{"effect_key": "damage_dealt"}]}]
		},
		"intents": {}
	}`

	_, err := Parse([]byte(bad))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestParse_RejectsUnknownTopLevelField(t *testing.T) {
	bad := `{
		"catalog_version": "1",
		"officers": {},
		"intents": {},
		"extras": true
	}`

	_, err := Parse([]byte(bad))
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{not json`))
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(validBundle), 0o600))

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2026.08.1", b.Version())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestNewEngine_RecommendsFromBundleCatalog(t *testing.T) {
	full := `{
		"catalog_version": "1",
		"officers": {
			"kirk": [
				{"name": "Maneuver", "slot": "captain_maneuver", "effects": [{"effect_key": "damage_dealt", "magnitude": 0.5}]}
			],
			"spock": [
				{"name": "Logic", "slot": "officer_ability", "effects": [{"effect_key": "shield_mitigation", "magnitude": 0.3}]}
			],
			"uhura": [
				{"name": "Hailing Frequencies", "slot": "officer_ability", "effects": [{"effect_key": "damage_dealt", "magnitude": 0.2}]}
			]
		},
		"intents": {
			"pvp": {
				"default_context": {"target_kind": "player_ship"},
				"weights": {"damage_dealt": 1.0, "shield_mitigation": 0.8}
			}
		}
	}`

	b, err := Parse([]byte(full))
	require.NoError(t, err)

	pool := []types.Officer{
		{ID: "kirk", Name: "Kirk", UserLevel: 40, UserPower: 900, OwnershipState: types.OwnershipOwned},
		{ID: "spock", Name: "Spock", UserLevel: 35, UserPower: 800, OwnershipState: types.OwnershipOwned},
		{ID: "uhura", Name: "Uhura", UserLevel: 30, UserPower: 700, OwnershipState: types.OwnershipOwned},
	}

	recs, err := b.NewEngine().Recommend(crew.Request{IntentKey: "pvp"}, pool, nil)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "kirk", recs[0].CaptainID)
}
