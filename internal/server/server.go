// Package server implements fundictl serve: a local HTTP server exposing
// the viewer's dashboard state as JSON for widgets and scripts.
//
// The server periodically re-fetches the viewer's jobs from the platform
// and serves derived view-model output (per-role summary counts and
// display statuses). Handlers only ever read the held snapshot; a fetch
// failure degrades to the last good snapshot marked failed/stale.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/internal/server/middleware"
	"github.com/fundiconnect/fundictl/pkg/marketplace"
	"github.com/fundiconnect/fundictl/pkg/remote"
	"github.com/fundiconnect/fundictl/pkg/viewmodel"
)

// Version is reported by the /version endpoint. Set at build time.
var Version = "dev"

// Config configures a Server.
type Config struct {
	Host     string
	Port     int
	ViewerID string

	// FetchJobs loads the viewer's jobs from the platform.
	FetchJobs remote.FetchFunc[[]marketplace.Job]

	// RefreshInterval is the background re-fetch cadence and the snapshot
	// staleness horizon. Zero disables background refresh.
	RefreshInterval time.Duration

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server is the local dashboard server.
type Server struct {
	cfg    Config
	jobs   *remote.Resource[[]marketplace.Job]
	router chi.Router
}

// New creates a Server. FetchJobs is required.
func New(cfg Config) (*Server, error) {
	jobs, err := remote.New(cfg.FetchJobs, cfg.RefreshInterval)
	if err != nil {
		return nil, fmt.Errorf("job resource: %w", err)
	}

	s := &Server{cfg: cfg, jobs: jobs}
	s.router = s.buildRouter()
	return s, nil
}

// Handler returns the HTTP handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Port returns the configured listen port.
func (s *Server) Port() int {
	return s.cfg.Port
}

// Run fetches an initial snapshot, starts the refresh loop, and serves
// until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.jobs.Refresh(ctx); err != nil {
		// Not fatal: serve the failed state and keep retrying on the
		// refresh cadence.
		observability.ServerLogger.Warn("Initial job fetch failed", zap.Error(err))
	}

	if s.cfg.RefreshInterval > 0 {
		go s.refreshLoop(ctx)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		observability.ServerLogger.Info("Dashboard server listening",
			zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.RefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.jobs.Refresh(ctx); err != nil {
				observability.ServerLogger.Warn("Job refresh failed", zap.Error(err))
			}
		}
	}
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		middleware.WriteError(w, req, http.StatusNotFound, "NOT_FOUND", "no such endpoint")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		middleware.WriteError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/jobs", s.handleJobs)
	})
	return r
}

// summaryResponse is the /api/v1/summary payload.
type summaryResponse struct {
	State     remote.State         `json:"state"`
	FetchedAt *time.Time           `json:"fetchedAt,omitempty"`
	Error     string               `json:"error,omitempty"`
	Counts    viewmodel.RoleCounts `json:"counts"`
}

// jobView is one entry of the /api/v1/jobs payload: the raw snapshot
// reduced to what a dashboard widget renders.
type jobView struct {
	ID            string                    `json:"id"`
	Title         string                    `json:"title"`
	Role          viewmodel.Role            `json:"role"`
	Status        marketplace.JobStatus     `json:"status"`
	DisplayStatus viewmodel.DisplayStatus   `json:"displayStatus"`
	Style         viewmodel.StatusStyle     `json:"style"`
	Payment       marketplace.PaymentStatus `json:"paymentStatus,omitempty"`
	Proposals     int                       `json:"proposals"`
	UpdatedAt     time.Time                 `json:"updatedAt,omitempty"`
}

// jobsResponse is the /api/v1/jobs payload.
type jobsResponse struct {
	State remote.State `json:"state"`
	Error string       `json:"error,omitempty"`
	Jobs  []jobView    `json:"jobs"`
}
