package server

import (
	"encoding/json"
	"net/http"

	"github.com/admiralguff/majel/internal/types"
)

// ReservationRequest marks an officer as held for an activity or dock.
type ReservationRequest struct {
	ReservedFor string `json:"reserved_for" validate:"required"`
	Locked      bool   `json:"locked"`
}

// handleListReservations returns the user's reservations.
func (s *Server) handleListReservations(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}

	reservations, err := s.store.ListReservations(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"reservations": reservations,
		"count":        len(reservations),
	})
}

// handlePutReservation creates or updates one reservation.
func (s *Server) handlePutReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}
	officerID := r.PathValue("officer_id")

	var req ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	reservation := types.Reservation{
		OfficerID:   officerID,
		ReservedFor: req.ReservedFor,
		Locked:      req.Locked,
	}
	if err := s.store.PutReservation(r.Context(), userID, reservation); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, reservation)
}

// handleDeleteReservation releases an officer.
func (s *Server) handleDeleteReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}
	officerID := r.PathValue("officer_id")

	if err := s.store.DeleteReservation(r.Context(), userID, officerID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
