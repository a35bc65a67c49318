package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/fundiconnect/fundictl/internal/observability"
	"github.com/fundiconnect/fundictl/internal/server/middleware"
	"github.com/fundiconnect/fundictl/pkg/remote"
	"github.com/fundiconnect/fundictl/pkg/viewmodel"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		// Headers are already sent; the response cannot be repaired.
		observability.ServerLogger.Warn("Failed to encode response",
			zap.String("path", r.URL.Path),
			zap.String("request_id", middleware.RequestIDFrom(r.Context())),
			zap.Error(err))
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"version": Version})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	snap := s.jobs.Snapshot()

	resp := summaryResponse{
		State:  snap.State,
		Counts: viewmodel.Summarize(snap.Value, s.cfg.ViewerID),
	}
	if !snap.FetchedAt.IsZero() {
		fetched := snap.FetchedAt
		resp.FetchedAt = &fetched
	}
	if snap.Err != nil {
		resp.Error = snap.Err.Error()
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	snap := s.jobs.Snapshot()

	if snap.State == remote.StateIdle || snap.State == remote.StateLoading {
		writeJSON(w, r, http.StatusOK, jobsResponse{State: snap.State, Jobs: []jobView{}})
		return
	}

	views := make([]jobView, 0, len(snap.Value))
	for i := range snap.Value {
		job := &snap.Value[i]
		role := viewmodel.DisplayRole(job, s.cfg.ViewerID)
		display, style := viewmodel.ResolveStyle(job.Status, role)
		views = append(views, jobView{
			ID:            job.ID,
			Title:         job.Title(),
			Role:          role,
			Status:        job.Status,
			DisplayStatus: display,
			Style:         style,
			Payment:       job.Payment.Status,
			Proposals:     len(job.Proposals),
			UpdatedAt:     job.UpdatedAt,
		})
	}

	resp := jobsResponse{State: snap.State, Jobs: views}
	if snap.Err != nil {
		resp.Error = snap.Err.Error()
	}
	writeJSON(w, r, http.StatusOK, resp)
}
