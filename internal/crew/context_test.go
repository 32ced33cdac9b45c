package crew

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/admiralguff/majel/internal/types"
)

func miningIntent() types.Intent {
	return types.Intent{
		Key: "mining",
		DefaultContext: types.TargetContext{
			TargetKind: "asteroid_field",
			Engagement: "passive",
			TargetTags: []string{"resource_latinum"},
		},
		Weights: map[string]float64{"mining_rate": 1.0},
	}
}

func TestBuildContext_DefaultsUntouchedWithoutOverrides(t *testing.T) {
	intent := miningIntent()

	ctx := BuildContext(intent, "", "", nil)

	assert.Equal(t, intent.DefaultContext, ctx)
	// The default context itself must not be aliased.
	ctx.AddTag("mutation")
	assert.NotContains(t, intent.DefaultContext.TargetTags, "mutation")
}

func TestBuildContext_ShipClassSetsFieldAndTag(t *testing.T) {
	ctx := BuildContext(miningIntent(), "Survey", "", nil)

	assert.Equal(t, "survey", ctx.ShipContext.ShipClass)
	assert.Contains(t, ctx.TargetTags, "ship_survey")
}

func TestBuildContext_TargetClassBecomesTag(t *testing.T) {
	ctx := BuildContext(miningIntent(), "", "Explorer", nil)

	assert.Contains(t, ctx.TargetTags, "target_explorer")
}

func TestBuildContext_SpecialOverrideKeys(t *testing.T) {
	overrides := map[string]string{
		"target_kind": "Hostile",
		"engagement":  "Burning",
		"ship_class":  "interceptor",
	}

	ctx := BuildContext(miningIntent(), "", "", overrides)

	assert.Equal(t, types.TargetHostile, ctx.TargetKind)
	assert.Equal(t, "burning", ctx.Engagement)
	assert.Equal(t, "interceptor", ctx.ShipContext.ShipClass)
	assert.Contains(t, ctx.TargetTags, "ship_interceptor")
}

func TestBuildContext_FreeFormOverrideReplacesSameKeyTag(t *testing.T) {
	intent := miningIntent()
	intent.DefaultContext.TargetTags = []string{"resource_latinum", "system_deep_space"}

	ctx := BuildContext(intent, "", "", map[string]string{"resource": "gas"})

	assert.Contains(t, ctx.TargetTags, "resource_gas")
	assert.NotContains(t, ctx.TargetTags, "resource_latinum")
	assert.Contains(t, ctx.TargetTags, "system_deep_space")
}

func TestBuildContext_TagsStayDeduplicated(t *testing.T) {
	intent := miningIntent()
	intent.DefaultContext.TargetTags = []string{"resource_latinum"}

	ctx := BuildContext(intent, "", "", map[string]string{"resource": "latinum"})

	count := 0
	for _, tag := range ctx.TargetTags {
		if tag == "resource_latinum" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuildContext_EmptyOverrideValueIgnored(t *testing.T) {
	ctx := BuildContext(miningIntent(), "", "", map[string]string{"engagement": ""})

	assert.Equal(t, "passive", ctx.Engagement)
}

func TestBuildContext_Deterministic(t *testing.T) {
	overrides := map[string]string{
		"resource":    "gas",
		"system":      "neutral_zone",
		"engagement":  "contested",
		"target_kind": "hostile",
	}

	first := BuildContext(miningIntent(), "survey", "explorer", overrides)
	second := BuildContext(miningIntent(), "survey", "explorer", overrides)

	assert.Equal(t, first, second)
}
