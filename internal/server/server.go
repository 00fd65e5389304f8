package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"shopsync/internal/scheduler"
	"shopsync/internal/service"
)

// SyncTrigger starts a sync run; Running reports whether one is live.
type SyncTrigger interface {
	Sync(ctx context.Context) error
	Running() bool
}

// Server exposes the operational surface: trigger a sync, poll its
// progress, inspect scheduled jobs.
type Server struct {
	trigger  SyncTrigger
	progress service.ProgressStore
	sched    *scheduler.Scheduler
	logger   *slog.Logger
}

func New(trigger SyncTrigger, progress service.ProgressStore, sched *scheduler.Scheduler, logger *slog.Logger) *Server {
	return &Server{
		trigger:  trigger,
		progress: progress,
		sched:    sched,
		logger:   logger.With("component", "http"),
	}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/sync", s.handleTriggerSync)
		r.Get("/sync/status", s.handleSyncStatus)
		r.Get("/jobs", s.handleJobs)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleTriggerSync starts a run unless one is already active. The run
// itself proceeds in the background; callers poll the status endpoint.
func (s *Server) handleTriggerSync(w http.ResponseWriter, r *http.Request) {
	if s.trigger.Running() {
		s.writeJSON(w, http.StatusConflict, map[string]string{"error": "sync already in progress"})
		return
	}

	go func() {
		if err := s.trigger.Sync(context.Background()); err != nil {
			s.logger.Error("triggered sync failed", "error", err)
		}
	}()

	s.writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

// handleSyncStatus returns the current progress row verbatim for
// polling UIs. Readers may see any valid intermediate state.
func (s *Server) handleSyncStatus(w http.ResponseWriter, r *http.Request) {
	progress, err := s.progress.GetCurrent(r.Context())
	if err != nil {
		s.logger.Error("failed to load sync progress", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load progress"})
		return
	}
	if progress == nil {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "no sync has run yet"})
		return
	}
	s.writeJSON(w, http.StatusOK, progress)
}

func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.sched.Status())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
