// Package roster loads an offline roster file so the CLI can score crews
// without a database connection.
package roster

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/admiralguff/majel/internal/types"
)

// File is the on-disk offline roster layout.
type File struct {
	Officers     []types.Officer     `json:"officers"`
	Reservations []types.Reservation `json:"reservations,omitempty"`
}

// Load reads and parses a roster JSON file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse roster JSON: %w", err)
	}
	if len(f.Officers) == 0 {
		return nil, fmt.Errorf("roster %s contains no officers", path)
	}

	return &f, nil
}
