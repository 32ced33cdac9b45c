package server

import (
	"encoding/json"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/admiralguff/majel/internal/crew"
	"github.com/admiralguff/majel/internal/types"
)

// handleRecommend resolves the user's roster and reservations, then runs the
// synchronous recommendation engine over them.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.parseUserID(w, r)
	if !ok {
		return
	}

	var req crew.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	// The engine itself never does I/O; fetch its inputs concurrently first.
	var (
		officers     []types.Officer
		reservations []types.Reservation
	)
	g, gCtx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		officers, err = s.store.ListOfficers(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		reservations, err = s.store.ListReservations(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	recs, err := s.engine.Recommend(req, officers, reservations)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"intent_key":      req.IntentKey,
		"recommendations": recs,
		"count":           len(recs),
	})
}

// handleListIntents exposes the bundle's intents so clients can populate
// activity pickers.
func (s *Server) handleListIntents(w http.ResponseWriter, _ *http.Request) {
	keys := s.catalog.IntentKeys()
	intents := make([]map[string]any, 0, len(keys))
	for _, key := range keys {
		in, ok := s.catalog.Intent(key)
		if !ok {
			continue
		}
		intents = append(intents, map[string]any{
			"key":             in.Key,
			"default_context": in.DefaultContext,
		})
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"catalog_version": s.catalog.Version(),
		"intents":         intents,
	})
}
