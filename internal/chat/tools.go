package chat

import (
	"fmt"

	"github.com/google/generative-ai-go/genai"

	"github.com/admiralguff/majel/internal/crew"
	"github.com/admiralguff/majel/internal/types"
)

// Tool names exposed to the model.
const (
	toolRecommendCrew = "recommend_crew"
	toolListRoster    = "list_roster"
)

// Toolset binds the assistant's callable functions to one user's resolved
// data. The engine call itself stays synchronous and stateless; the toolset
// just adapts arguments and results to the model's function-calling shape.
type Toolset struct {
	engine       *crew.Engine
	officers     []types.Officer
	reservations []types.Reservation
	intentKeys   []string
}

// NewToolset creates a toolset over a resolved officer pool.
func NewToolset(engine *crew.Engine, officers []types.Officer, reservations []types.Reservation, intentKeys []string) *Toolset {
	return &Toolset{
		engine:       engine,
		officers:     officers,
		reservations: reservations,
		intentKeys:   intentKeys,
	}
}

// IntentKeys returns the intent keys the toolset advertises.
func (t *Toolset) IntentKeys() []string {
	return t.intentKeys
}

// Officers returns the bound officer pool.
func (t *Toolset) Officers() []types.Officer {
	return t.officers
}

// Reservations returns the bound reservations.
func (t *Toolset) Reservations() []types.Reservation {
	return t.reservations
}

// Declarations returns the genai tool declarations for this toolset.
func (t *Toolset) Declarations() []*genai.Tool {
	return []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        toolRecommendCrew,
				Description: "Score the player's owned officers for a named activity and return ranked captain+bridge trios with confidence and reasons.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"intent_key": {
							Type:        genai.TypeString,
							Description: "The activity to crew for, e.g. pvp or mining-lat.",
						},
						"ship_class": {
							Type:        genai.TypeString,
							Description: "Optional class of the player's ship (explorer, interceptor, battleship, survey).",
						},
						"target_class": {
							Type:        genai.TypeString,
							Description: "Optional class of the target ship.",
						},
						"captain_id": {
							Type:        genai.TypeString,
							Description: "Optional officer id to pin as captain.",
						},
						"limit": {
							Type:        genai.TypeInteger,
							Description: "Maximum number of recommendations to return.",
						},
					},
					Required: []string{"intent_key"},
				},
			},
			{
				Name:        toolListRoster,
				Description: "List the player's owned officers with level, power, and synergy group.",
				Parameters: &genai.Schema{
					Type:       genai.TypeObject,
					Properties: map[string]*genai.Schema{},
				},
			},
		},
	}}
}

// Dispatch executes a named tool call. Errors are returned as values so the
// model can relay them instead of the session aborting.
func (t *Toolset) Dispatch(name string, args map[string]any) map[string]any {
	switch name {
	case toolRecommendCrew:
		return t.recommendCrew(args)
	case toolListRoster:
		return t.listRoster()
	default:
		return map[string]any{"error": fmt.Sprintf("unknown tool %q", name)}
	}
}

func (t *Toolset) recommendCrew(args map[string]any) map[string]any {
	req := crew.Request{
		IntentKey:   stringArg(args, "intent_key"),
		ShipClass:   stringArg(args, "ship_class"),
		TargetClass: stringArg(args, "target_class"),
		CaptainID:   stringArg(args, "captain_id"),
		Limit:       intArg(args, "limit"),
	}

	recs, err := t.engine.Recommend(req, t.officers, t.reservations)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	if len(recs) == 0 {
		return map[string]any{
			"recommendations": []any{},
			"note":            "fewer than three eligible officers, or nothing passed the confidence filter",
		}
	}

	names := make(map[string]string, len(t.officers))
	for _, o := range t.officers {
		names[o.ID] = o.Name
	}

	out := make([]any, 0, len(recs))
	for _, r := range recs {
		out = append(out, map[string]any{
			"captain":     names[r.CaptainID],
			"bridge":      []string{names[r.Bridge1ID], names[r.Bridge2ID]},
			"total_score": r.TotalScore,
			"confidence":  string(r.Confidence),
			"reasons":     r.Reasons,
		})
	}
	return map[string]any{"recommendations": out}
}

func (t *Toolset) listRoster() map[string]any {
	out := make([]any, 0, len(t.officers))
	for _, o := range t.officers {
		if !o.Owned() {
			continue
		}
		out = append(out, map[string]any{
			"id":            o.ID,
			"name":          o.Name,
			"level":         o.UserLevel,
			"power":         o.UserPower,
			"synergy_group": o.SynergyID,
		})
	}
	return map[string]any{"officers": out}
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}
