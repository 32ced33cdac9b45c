package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/admiralguff/majel/internal/types"
)

// ListReservations returns every reservation the user holds.
func (s *Store) ListReservations(ctx context.Context, userID uuid.UUID) ([]types.Reservation, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT officer_id, reserved_for, locked
		 FROM officer_reservations
		 WHERE user_id = $1
		 ORDER BY officer_id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	defer rows.Close()

	var reservations []types.Reservation
	for rows.Next() {
		var r types.Reservation
		if err := rows.Scan(&r.OfficerID, &r.ReservedFor, &r.Locked); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reservations: %w", err)
	}
	return reservations, nil
}

// PutReservation creates or updates the reservation for one officer.
func (s *Store) PutReservation(ctx context.Context, userID uuid.UUID, r types.Reservation) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO officer_reservations (user_id, officer_id, reserved_for, locked)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, officer_id)
		 DO UPDATE SET reserved_for = $3, locked = $4, updated_at = NOW()`,
		userID, r.OfficerID, r.ReservedFor, r.Locked,
	)
	if err != nil {
		return fmt.Errorf("failed to put reservation for %s: %w", r.OfficerID, err)
	}
	return nil
}

// DeleteReservation releases an officer.
func (s *Store) DeleteReservation(ctx context.Context, userID uuid.UUID, officerID string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM officer_reservations WHERE user_id = $1 AND officer_id = $2`,
		userID, officerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete reservation for %s: %w", officerID, err)
	}
	return nil
}
