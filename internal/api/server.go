// Package api exposes the HTTP interface for the recipe search service.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealscout/recipe-scout/internal/metrics"
	"github.com/mealscout/recipe-scout/internal/recipe"
)

// Searcher serves one recipe search. Satisfied by *search.Service.
type Searcher interface {
	Search(ctx context.Context, params recipe.SearchParams) recipe.SearchResponse
}

// CircuitReader reports per-origin breaker state. Satisfied by
// *fetch.BreakerRegistry.
type CircuitReader interface {
	Snapshot() []recipe.CircuitSnapshot
}

// HealthReader reports rolling adapter stats and recent run logs.
// Satisfied by *scrape.HealthTracker.
type HealthReader interface {
	AdapterStats() []recipe.AdapterStats
	RecentRuns(n int) []recipe.RunLog
}

// Server wires HTTP handlers to the search service and the diagnostics
// sources.
type Server struct {
	router   chi.Router
	searcher Searcher
	circuits CircuitReader
	health   HealthReader
	logger   *zap.Logger
}

const defaultRunLimit = 10

// NewServer constructs a Server with middleware and routes.
func NewServer(searcher Searcher, circuits CircuitReader, health HealthReader, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		searcher: searcher,
		circuits: circuits,
		health:   health,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))
	r.Use(recoverMiddleware(logger))
	r.Use(timeoutMiddleware(60 * time.Second))

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/search", s.search)
		r.Route("/diagnostics", func(r chi.Router) {
			r.Get("/circuits", s.diagnosticsCircuits)
			r.Get("/adapters", s.diagnosticsAdapters)
			r.Get("/runs", s.diagnosticsRuns)
		})
	})

	s.router = r
	return s
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, s.logger)
}

func (s *Server) readyz(w http.ResponseWriter, _ *http.Request) {
	// All state is in-process; once we serve traffic we are ready.
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, s.logger)
}

type searchRequest struct {
	Ingredients   string   `json:"ingredients"`
	TimeAvailable string   `json:"time_available"`
	Cuisine       string   `json:"cuisine"`
	Strictness    string   `json:"strictness"`
	RelatedTerms  []string `json:"related_terms"`
}

// search handles one query. The only client errors are malformed JSON
// and a missing ingredients field; everything downstream degrades to a
// usable response instead of failing.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON", s.logger)
		return
	}
	if strings.TrimSpace(req.Ingredients) == "" {
		writeError(w, http.StatusBadRequest, "ingredients required", s.logger)
		return
	}

	resp := s.searcher.Search(r.Context(), recipe.SearchParams{
		Ingredients:   req.Ingredients,
		TimeAvailable: req.TimeAvailable,
		Cuisine:       req.Cuisine,
		Strictness:    recipe.Strictness(req.Strictness),
		RelatedTerms:  req.RelatedTerms,
	})
	writeJSON(w, http.StatusOK, resp, s.logger)
}

func (s *Server) diagnosticsCircuits(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"circuits": s.circuits.Snapshot()}, s.logger)
}

func (s *Server) diagnosticsAdapters(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"adapters": s.health.AdapterStats()}, s.logger)
}

func (s *Server) diagnosticsRuns(w http.ResponseWriter, r *http.Request) {
	limit := defaultRunLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": s.health.RecentRuns(limit)}, s.logger)
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func loggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.status),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}

func recoverMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered", zap.Any("error", rec))
					writeError(w, http.StatusInternalServerError, "internal server error", logger)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func timeoutMiddleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, "request timed out")
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

type requestIDKey struct{}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("write JSON failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string, logger *zap.Logger) {
	writeJSON(w, status, map[string]string{"error": msg}, logger)
}
