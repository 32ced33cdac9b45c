package crew

import (
	"sort"
	"strings"

	"github.com/admiralguff/majel/internal/types"
)

// BuildContext layers caller overrides over an intent's default context.
// Ship class and target class map to their context fields plus a semantic
// tag; free-form overrides become "<key>_<value>" tags. A later override for
// the same key replaces the earlier tag, so the tag set accumulates without
// ever holding two values for one override key.
func BuildContext(intent types.Intent, shipClass, targetClass string, overrides map[string]string) types.TargetContext {
	ctx := intent.DefaultContext.Clone()

	if shipClass != "" {
		applyShipClass(&ctx, shipClass)
	}
	if targetClass != "" {
		applyTaggedOverride(&ctx, "target", targetClass)
	}

	// Map iteration order is random; apply overrides in sorted key order so
	// identical inputs always build an identical context.
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := overrides[key]
		if value == "" {
			continue
		}
		switch key {
		case "target_kind":
			ctx.TargetKind = types.TargetKind(normalizeToken(value))
		case "engagement":
			ctx.Engagement = normalizeToken(value)
		case "ship_class":
			applyShipClass(&ctx, value)
		case "target_class":
			applyTaggedOverride(&ctx, "target", value)
		default:
			applyTaggedOverride(&ctx, normalizeToken(key), value)
		}
	}

	return ctx
}

func applyShipClass(ctx *types.TargetContext, class string) {
	ctx.ShipContext.ShipClass = normalizeToken(class)
	applyTaggedOverride(ctx, "ship", class)
}

// applyTaggedOverride sets the single semantic tag for an override key,
// dropping any previous tag carrying the same prefix.
func applyTaggedOverride(ctx *types.TargetContext, prefix, value string) {
	tagPrefix := prefix + "_"
	kept := ctx.TargetTags[:0]
	for _, t := range ctx.TargetTags {
		if !strings.HasPrefix(t, tagPrefix) {
			kept = append(kept, t)
		}
	}
	ctx.TargetTags = kept
	ctx.AddTag(tagPrefix + normalizeToken(value))
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
