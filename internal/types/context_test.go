package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetContext_AddTagDeduplicates(t *testing.T) {
	ctx := TargetContext{TargetKind: TargetHostile}

	ctx.AddTag("ship_survey")
	ctx.AddTag("ship_survey")
	ctx.AddTag("")
	ctx.AddTag("target_explorer")

	assert.Equal(t, []string{"ship_survey", "target_explorer"}, ctx.TargetTags)
}

func TestTargetContext_HasTag(t *testing.T) {
	ctx := TargetContext{TargetTags: []string{"ship_survey"}}

	assert.True(t, ctx.HasTag("ship_survey"))
	assert.False(t, ctx.HasTag("ship_interceptor"))
}

func TestTargetContext_CloneIsIndependent(t *testing.T) {
	original := TargetContext{
		TargetKind: TargetHostile,
		TargetTags: []string{"target_explorer"},
	}

	clone := original.Clone()
	clone.AddTag("ship_survey")
	clone.TargetKind = TargetStation

	assert.Equal(t, []string{"target_explorer"}, original.TargetTags)
	assert.Equal(t, TargetHostile, original.TargetKind)
	assert.Equal(t, []string{"target_explorer", "ship_survey"}, clone.TargetTags)
}

func TestOfficer_Owned(t *testing.T) {
	assert.True(t, Officer{OwnershipState: OwnershipOwned}.Owned())
	assert.True(t, Officer{OwnershipState: OwnershipTarget}.Owned())
	assert.False(t, Officer{OwnershipState: OwnershipUnowned}.Owned())
	assert.False(t, Officer{}.Owned())
}

func TestConfidence_Rank(t *testing.T) {
	assert.Equal(t, 2, ConfidenceHigh.Rank())
	assert.Equal(t, 1, ConfidenceMedium.Rank())
	assert.Equal(t, 0, ConfidenceLow.Rank())
	assert.Equal(t, -1, Confidence("bogus").Rank())
}
