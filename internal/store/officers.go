package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/admiralguff/majel/internal/types"
)

// ListOfficers returns the user's roster: every reference officer joined
// with the user's ownership overlay. Officers without an overlay row come
// back unowned.
func (s *Store) ListOfficers(ctx context.Context, userID uuid.UUID) ([]types.Officer, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT o.id, o.name, COALESCE(o.synergy_id, ''),
		        COALESCE(uo.user_level, 0), COALESCE(uo.user_power, 0),
		        COALESCE(uo.ownership_state, 'unowned')
		 FROM officers o
		 LEFT JOIN user_officers uo ON uo.officer_id = o.id AND uo.user_id = $1
		 ORDER BY o.name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list officers: %w", err)
	}
	defer rows.Close()

	var officers []types.Officer
	for rows.Next() {
		var o types.Officer
		if err := rows.Scan(&o.ID, &o.Name, &o.SynergyID, &o.UserLevel, &o.UserPower, &o.OwnershipState); err != nil {
			return nil, fmt.Errorf("failed to scan officer: %w", err)
		}
		officers = append(officers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read officers: %w", err)
	}
	return officers, nil
}

// GetOfficer returns one roster entry, or nil when the officer ID is not in
// the reference catalog.
func (s *Store) GetOfficer(ctx context.Context, userID uuid.UUID, officerID string) (*types.Officer, error) {
	var o types.Officer
	err := s.pool.QueryRow(ctx,
		`SELECT o.id, o.name, COALESCE(o.synergy_id, ''),
		        COALESCE(uo.user_level, 0), COALESCE(uo.user_power, 0),
		        COALESCE(uo.ownership_state, 'unowned')
		 FROM officers o
		 LEFT JOIN user_officers uo ON uo.officer_id = o.id AND uo.user_id = $1
		 WHERE o.id = $2`,
		userID, officerID,
	).Scan(&o.ID, &o.Name, &o.SynergyID, &o.UserLevel, &o.UserPower, &o.OwnershipState)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get officer %s: %w", officerID, err)
	}
	return &o, nil
}

// UpsertOfficer writes the user's ownership overlay for one officer.
func (s *Store) UpsertOfficer(ctx context.Context, userID uuid.UUID, officerID, ownershipState string, userLevel, userPower int) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO user_officers (user_id, officer_id, ownership_state, user_level, user_power)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (user_id, officer_id)
		 DO UPDATE SET ownership_state = $3, user_level = $4, user_power = $5, updated_at = NOW()`,
		userID, officerID, ownershipState, userLevel, userPower,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert officer %s: %w", officerID, err)
	}
	return nil
}

// RemoveOfficer drops the overlay row, returning the officer to unowned.
func (s *Store) RemoveOfficer(ctx context.Context, userID uuid.UUID, officerID string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM user_officers WHERE user_id = $1 AND officer_id = $2`,
		userID, officerID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove officer %s: %w", officerID, err)
	}
	return nil
}
