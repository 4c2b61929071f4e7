// Package handlers exposes the engine's HTTP API.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	courseservice "github.com/fairway-collective/league-engine/app/modules/course/application"
	leagueservice "github.com/fairway-collective/league-engine/app/modules/league/application"
	matchservice "github.com/fairway-collective/league-engine/app/modules/match/application"
	standingsservice "github.com/fairway-collective/league-engine/app/modules/standings/application"
	"github.com/fairway-collective/league-engine/app/observability/attr"
	"github.com/fairway-collective/league-engine/app/shared"
)

// Handlers bundles the HTTP endpoints over the application services.
type Handlers struct {
	courses   courseservice.Service
	league    leagueservice.Service
	matches   matchservice.Service
	standings standingsservice.Service
	jobs      *river.Client[pgx.Tx]
	logger    *slog.Logger
}

// NewHandlers creates a new Handlers. jobs may be nil when the background
// queue is disabled; standings exports then run inline.
func NewHandlers(
	courses courseservice.Service,
	league leagueservice.Service,
	matches matchservice.Service,
	standings standingsservice.Service,
	jobs *river.Client[pgx.Tx],
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		courses:   courses,
		league:    league,
		matches:   matches,
		standings: standings,
		jobs:      jobs,
		logger:    logger,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON serializes v with the given status.
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", attr.Error(err))
	}
}

// writeError maps the error taxonomy onto HTTP statuses. Conflicts are
// retryable, so they carry a Retry-After hint.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case shared.IsInvalidInput(err):
		status = http.StatusBadRequest
	case shared.IsNotFound(err):
		status = http.StatusNotFound
	case shared.IsFailedPrecondition(err):
		status = http.StatusConflict
	case shared.IsConflict(err):
		status = http.StatusTooManyRequests
		w.Header().Set("Retry-After", "1")
	}

	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "Request failed",
			attr.Error(err),
			attr.String("path", r.URL.Path),
		)
		h.writeJSON(w, status, errorResponse{Error: "internal error"})
		return
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeJSON parses the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return shared.InvalidInputf("malformed request body: %v", err)
	}
	return nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, shared.InvalidInputf("invalid %s: %v", name, err)
	}
	return id, nil
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
