package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/admiralguff/majel/internal/types"
)

// ListDocks returns the user's saved loadouts in slot order.
func (s *Store) ListDocks(ctx context.Context, userID uuid.UUID) ([]types.Dock, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, slot, name, COALESCE(intent_key, ''), captain_id, bridge1_id, bridge2_id
		 FROM docks
		 WHERE user_id = $1
		 ORDER BY slot`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list docks: %w", err)
	}
	defer rows.Close()

	var docks []types.Dock
	for rows.Next() {
		var d types.Dock
		if err := rows.Scan(&d.ID, &d.Slot, &d.Name, &d.IntentKey, &d.CaptainID, &d.Bridge1ID, &d.Bridge2ID); err != nil {
			return nil, fmt.Errorf("failed to scan dock: %w", err)
		}
		docks = append(docks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read docks: %w", err)
	}
	return docks, nil
}

// PutDock saves a loadout into a dock slot, replacing any existing one.
func (s *Store) PutDock(ctx context.Context, userID uuid.UUID, d types.Dock) (uuid.UUID, error) {
	id := d.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO docks (id, user_id, slot, name, intent_key, captain_id, bridge1_id, bridge2_id)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8)
		 ON CONFLICT (user_id, slot)
		 DO UPDATE SET name = $4, intent_key = NULLIF($5, ''), captain_id = $6,
		               bridge1_id = $7, bridge2_id = $8, updated_at = NOW()`,
		id, userID, d.Slot, d.Name, d.IntentKey, d.CaptainID, d.Bridge1ID, d.Bridge2ID,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to put dock %d: %w", d.Slot, err)
	}
	return id, nil
}

// DeleteDock clears a dock slot.
func (s *Store) DeleteDock(ctx context.Context, userID uuid.UUID, slot int) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM docks WHERE user_id = $1 AND slot = $2`,
		userID, slot,
	)
	if err != nil {
		return fmt.Errorf("failed to delete dock %d: %w", slot, err)
	}
	return nil
}
