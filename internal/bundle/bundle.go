// Package bundle loads the precomputed effect catalog: per-officer ability
// effects, per-intent default contexts and weight vectors, captain-viability
// allowlists, and optional scoring-contract overrides. A bundle is validated
// against a JSON Schema on load and immutable afterwards.
package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/admiralguff/majel/internal/crew"
	"github.com/admiralguff/majel/internal/types"
)

// Bundle is the loaded effect catalog. It satisfies crew.Catalog.
type Bundle struct {
	version    string
	officers   map[string][]types.Ability
	intents    map[string]types.Intent
	allowlists crew.Allowlists
	contract   crew.Contract
}

// file is the on-disk bundle layout.
type file struct {
	CatalogVersion string                       `json:"catalog_version"`
	Officers       map[string][]types.Ability   `json:"officers"`
	Intents        map[string]fileIntent        `json:"intents"`
	Allowlists     *crew.Allowlists             `json:"captain_allowlists,omitempty"`
	Contract       *json.RawMessage             `json:"contract,omitempty"`
}

type fileIntent struct {
	DefaultContext types.TargetContext `json:"default_context"`
	Weights        map[string]float64  `json:"weights"`
}

// Load reads, validates, and parses a bundle file.
func Load(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle %s: %w", path, err)
	}
	return Parse(data)
}

// Parse validates raw bundle JSON against the embedded schema and builds the
// immutable catalog.
func Parse(data []byte) (*Bundle, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse bundle JSON: %w", err)
	}

	b := &Bundle{
		version:    f.CatalogVersion,
		officers:   f.Officers,
		intents:    make(map[string]types.Intent, len(f.Intents)),
		allowlists: crew.DefaultAllowlists(),
		contract:   crew.DefaultContract(),
	}
	if b.officers == nil {
		b.officers = map[string][]types.Ability{}
	}

	for key, in := range f.Intents {
		b.intents[key] = types.Intent{
			Key:            key,
			DefaultContext: in.DefaultContext,
			Weights:        in.Weights,
		}
	}

	if f.Allowlists != nil {
		b.allowlists = *f.Allowlists
	}
	if f.Contract != nil {
		// Unmarshal over the defaults so a bundle may override constants
		// selectively.
		if err := json.Unmarshal(*f.Contract, &b.contract); err != nil {
			return nil, fmt.Errorf("failed to parse contract overrides: %w", err)
		}
	}

	return b, nil
}

// Version returns the catalog version string.
func (b *Bundle) Version() string {
	return b.version
}

// AbilitiesFor returns the abilities for one officer, or nil when the
// catalog has no record.
func (b *Bundle) AbilitiesFor(officerID string) []types.Ability {
	return b.officers[officerID]
}

// Intent resolves an intent key.
func (b *Bundle) Intent(key string) (types.Intent, bool) {
	in, ok := b.intents[key]
	return in, ok
}

// IntentKeys lists the known intents in sorted order.
func (b *Bundle) IntentKeys() []string {
	keys := make([]string, 0, len(b.intents))
	for k := range b.intents {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Allowlists returns the captain-viability allowlists.
func (b *Bundle) Allowlists() crew.Allowlists {
	return b.allowlists
}

// Contract returns the scoring constants, bundle overrides applied.
func (b *Bundle) Contract() crew.Contract {
	return b.contract
}

// NewEngine wires a recommendation engine over this bundle.
func (b *Bundle) NewEngine() *crew.Engine {
	return crew.New(b, b.contract, b.allowlists)
}
