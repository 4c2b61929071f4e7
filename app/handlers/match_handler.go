package handlers

import (
	"net/http"

	matchservice "github.com/fairway-collective/league-engine/app/modules/match/application"
)

// CreateMatchDay handles POST /api/v1/match-days.
func (h *Handlers) CreateMatchDay(w http.ResponseWriter, r *http.Request) {
	var input matchservice.CreateMatchDayInput
	if err := decodeJSON(r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	day, err := h.matches.CreateMatchDay(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, day)
}

// GetMatchDay handles GET /api/v1/match-days/{matchDayID}.
func (h *Handlers) GetMatchDay(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "matchDayID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	day, err := h.matches.GetMatchDay(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, day)
}

// DeleteMatchDay handles DELETE /api/v1/match-days/{matchDayID}.
func (h *Handlers) DeleteMatchDay(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "matchDayID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.matches.DeleteMatchDay(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}

// ScheduleMatch handles POST /api/v1/match-days/{matchDayID}/matches.
func (h *Handlers) ScheduleMatch(w http.ResponseWriter, r *http.Request) {
	dayID, err := pathUUID(r, "matchDayID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var input matchservice.ScheduleMatchInput
	if err := decodeJSON(r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}
	input.MatchDayID = dayID

	match, err := h.matches.ScheduleMatch(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, match)
}

// ProcessMatch handles POST /api/v1/matches/{matchID}/process.
func (h *Handlers) ProcessMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := pathUUID(r, "matchID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var input matchservice.ProcessMatchInput
	if err := decodeJSON(r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}
	input.MatchID = matchID

	result, err := h.matches.ProcessMatch(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// GetMatchResult handles GET /api/v1/matches/{matchID}.
func (h *Handlers) GetMatchResult(w http.ResponseWriter, r *http.Request) {
	matchID, err := pathUUID(r, "matchID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.matches.MatchResult(r.Context(), matchID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// GetStrokeAllocation handles GET /api/v1/matches/{matchID}/strokes.
func (h *Handlers) GetStrokeAllocation(w http.ResponseWriter, r *http.Request) {
	matchID, err := pathUUID(r, "matchID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	allocation, err := h.matches.StrokeAllocation(r.Context(), matchID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, allocation)
}
