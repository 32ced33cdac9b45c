package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/admiralguff/majel/internal/types"
)

// DockRequest saves a trio into a dock slot, usually straight from a
// recommendation.
type DockRequest struct {
	Name      string `json:"name" validate:"required"`
	IntentKey string `json:"intent_key,omitempty"`
	CaptainID string `json:"captain_id" validate:"required"`
	Bridge1ID string `json:"bridge1_id" validate:"required,nefield=CaptainID"`
	Bridge2ID string `json:"bridge2_id" validate:"required,nefield=CaptainID,nefield=Bridge1ID"`
}

// handleListDocks returns the user's saved loadouts.
func (s *Server) handleListDocks(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}

	docks, err := s.store.ListDocks(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"docks": docks,
		"count": len(docks),
	})
}

// handlePutDock saves a loadout into a dock slot.
func (s *Server) handlePutDock(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}
	slot, err := strconv.Atoi(r.PathValue("slot"))
	if err != nil || slot < 1 {
		s.errorResponse(w, http.StatusBadRequest, "Invalid dock slot")
		return
	}

	var req DockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	dock := types.Dock{
		Slot:      slot,
		Name:      req.Name,
		IntentKey: req.IntentKey,
		CaptainID: req.CaptainID,
		Bridge1ID: req.Bridge1ID,
		Bridge2ID: req.Bridge2ID,
	}
	id, err := s.store.PutDock(r.Context(), userID, dock)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	dock.ID = id

	s.jsonResponse(w, http.StatusOK, dock)
}

// handleDeleteDock clears a dock slot.
func (s *Server) handleDeleteDock(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}
	slot, err := strconv.Atoi(r.PathValue("slot"))
	if err != nil || slot < 1 {
		s.errorResponse(w, http.StatusBadRequest, "Invalid dock slot")
		return
	}

	if err := s.store.DeleteDock(r.Context(), userID, slot); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
