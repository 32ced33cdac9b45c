package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/admiralguff/majel/internal/crew"
	"github.com/admiralguff/majel/internal/server/ratelimit"
	"github.com/admiralguff/majel/internal/types"
)

// Store is the persistence surface the handlers need. *store.Store satisfies
// it; tests substitute in-memory fakes.
type Store interface {
	ListOfficers(ctx context.Context, userID uuid.UUID) ([]types.Officer, error)
	GetOfficer(ctx context.Context, userID uuid.UUID, officerID string) (*types.Officer, error)
	UpsertOfficer(ctx context.Context, userID uuid.UUID, officerID, ownershipState string, userLevel, userPower int) error
	RemoveOfficer(ctx context.Context, userID uuid.UUID, officerID string) error

	ListReservations(ctx context.Context, userID uuid.UUID) ([]types.Reservation, error)
	PutReservation(ctx context.Context, userID uuid.UUID, r types.Reservation) error
	DeleteReservation(ctx context.Context, userID uuid.UUID, officerID string) error

	ListDocks(ctx context.Context, userID uuid.UUID) ([]types.Dock, error)
	PutDock(ctx context.Context, userID uuid.UUID, d types.Dock) (uuid.UUID, error)
	DeleteDock(ctx context.Context, userID uuid.UUID, slot int) error
}

// Catalog is the read-only view of the effect bundle the API exposes.
// *bundle.Bundle satisfies it.
type Catalog interface {
	Version() string
	IntentKeys() []string
	Intent(key string) (types.Intent, bool)
}

// Server is the HTTP server.
type Server struct {
	httpServer  *http.Server
	store       Store
	catalog     Catalog
	engine      *crew.Engine
	validate    *validator.Validate
	rateLimiter *ratelimit.Limiter
	logger      *zap.Logger
}

// Config holds server configuration.
type Config struct {
	Port int
}

// New creates a new server instance over an already-connected store and a
// loaded bundle.
func New(cfg Config, st Store, catalog Catalog, engine *crew.Engine, logger *zap.Logger) *Server {
	s := &Server{
		store:       st,
		catalog:     catalog,
		engine:      engine,
		validate:    validator.New(),
		rateLimiter: ratelimit.NewLimiter(ratelimit.LoadConfig()),
		logger:      logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /intents", s.handleListIntents)

	mux.HandleFunc("POST /users/{id}/recommendations", s.handleRecommend)

	mux.HandleFunc("GET /users/{id}/officers", s.handleListOfficers)
	mux.HandleFunc("PUT /users/{id}/officers/{officer_id}", s.handleUpsertOfficer)
	mux.HandleFunc("DELETE /users/{id}/officers/{officer_id}", s.handleRemoveOfficer)

	mux.HandleFunc("GET /users/{id}/reservations", s.handleListReservations)
	mux.HandleFunc("PUT /users/{id}/reservations/{officer_id}", s.handlePutReservation)
	mux.HandleFunc("DELETE /users/{id}/reservations/{officer_id}", s.handleDeleteReservation)

	mux.HandleFunc("GET /users/{id}/docks", s.handleListDocks)
	mux.HandleFunc("PUT /users/{id}/docks/{slot}", s.handlePutDock)
	mux.HandleFunc("DELETE /users/{id}/docks/{slot}", s.handleDeleteDock)

	handler := s.withCORS(s.withRateLimit(s.withLogging(mux)))

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler exposes the configured handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-stop
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting keyed by remote address.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, remaining := s.rateLimiter.Allow(r.RemoteAddr)
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		if !allowed {
			s.errorResponse(w, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":          "ok",
		"catalog_version": s.catalog.Version(),
	})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// parseUserID pulls the user UUID out of the path.
func (s *Server) parseUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return uuid.Nil, false
	}
	return userID, true
}
