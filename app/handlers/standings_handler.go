package handlers

import (
	"net/http"

	standingsservice "github.com/fairway-collective/league-engine/app/modules/standings/application"
	"github.com/fairway-collective/league-engine/app/observability/attr"
)

// GetStandings handles GET /api/v1/seasons/{seasonID}/standings.
func (h *Handlers) GetStandings(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathUUID(r, "seasonID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	rows, err := h.standings.Standings(r.Context(), seasonID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rows)
}

// ExportStandings handles POST /api/v1/seasons/{seasonID}/standings/export.
// With the queue available the export runs in the background; otherwise it
// runs inline and returns the written path.
func (h *Handlers) ExportStandings(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathUUID(r, "seasonID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if h.jobs != nil {
		if _, err := h.jobs.Insert(r.Context(), standingsservice.ExportStandingsArgs{SeasonID: seasonID}, nil); err != nil {
			h.writeError(w, r, err)
			return
		}
		h.logger.InfoContext(r.Context(), "Standings export enqueued", attr.UUID("season_id", seasonID))
		h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "queued"})
		return
	}

	path, err := h.standings.ExportWorkbook(r.Context(), seasonID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"path": path})
}

// HandicapTrend handles GET /api/v1/seasons/{seasonID}/players/{playerID}/trend.
func (h *Handlers) HandicapTrend(w http.ResponseWriter, r *http.Request) {
	seasonID, err := pathUUID(r, "seasonID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	playerID, err := pathUUID(r, "playerID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	png, err := h.standings.HandicapTrend(r.Context(), seasonID, playerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to write chart response", attr.Error(err))
	}
}
