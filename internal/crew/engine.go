package crew

import "github.com/admiralguff/majel/internal/types"

// Catalog is the read-only effect catalog the engine scores against. The
// bundle package provides the production implementation; tests supply fakes.
type Catalog interface {
	// AbilitiesFor returns the abilities of one officer, or nil when the
	// catalog has no data for the ID.
	AbilitiesFor(officerID string) []types.Ability
	// Intent resolves an intent key to its default context and weights.
	Intent(key string) (types.Intent, bool)
}

// Engine is the crew recommendation engine. It holds only immutable
// configuration; every call constructs and discards its own intermediate
// state, so concurrent calls need no locking.
type Engine struct {
	catalog  Catalog
	contract Contract
	allow    Allowlists
}

// New creates an engine over the given catalog and scoring configuration.
func New(catalog Catalog, contract Contract, allow Allowlists) *Engine {
	return &Engine{catalog: catalog, contract: contract, allow: allow}
}

// Request are the caller parameters for one recommendation call.
type Request struct {
	IntentKey        string            `json:"intent_key" validate:"required"`
	ShipClass        string            `json:"ship_class,omitempty"`
	TargetClass      string            `json:"target_class,omitempty"`
	ContextOverrides map[string]string `json:"context_overrides,omitempty"`
	CaptainID        string            `json:"captain_id,omitempty"`
	MinConfidence    types.Confidence  `json:"min_confidence,omitempty" validate:"omitempty,oneof=high medium low"`
	Limit            int               `json:"limit,omitempty" validate:"omitempty,min=1,max=25"`
}

// Contract returns the engine's scoring constants.
func (e *Engine) Contract() Contract {
	return e.contract
}
