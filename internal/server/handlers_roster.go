package server

import (
	"encoding/json"
	"net/http"
)

// OfficerUpsertRequest is the ownership overlay payload.
type OfficerUpsertRequest struct {
	OwnershipState string `json:"ownership_state" validate:"required,oneof=owned target unowned"`
	UserLevel      int    `json:"user_level" validate:"min=0,max=60"`
	UserPower      int    `json:"user_power" validate:"min=0"`
}

// handleListOfficers returns the user's full roster.
func (s *Server) handleListOfficers(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}

	officers, err := s.store.ListOfficers(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"officers": officers,
		"count":    len(officers),
	})
}

// handleUpsertOfficer writes the ownership overlay for one officer.
func (s *Server) handleUpsertOfficer(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}
	officerID := r.PathValue("officer_id")

	var req OfficerUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	// Reject IDs the reference catalog has never heard of.
	existing, err := s.store.GetOfficer(r.Context(), userID, officerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if existing == nil {
		err := &ErrOfficerNotFound{OfficerID: officerID}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.store.UpsertOfficer(r.Context(), userID, officerID, req.OwnershipState, req.UserLevel, req.UserPower); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	updated, err := s.store.GetOfficer(r.Context(), userID, officerID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleRemoveOfficer returns an officer to unowned.
func (s *Server) handleRemoveOfficer(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}
	officerID := r.PathValue("officer_id")

	if err := s.store.RemoveOfficer(r.Context(), userID, officerID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
