package handlers

import (
	"net/http"

	leagueservice "github.com/fairway-collective/league-engine/app/modules/league/application"
)

// CreateSeason handles POST /api/v1/seasons.
func (h *Handlers) CreateSeason(w http.ResponseWriter, r *http.Request) {
	var input leagueservice.CreateSeasonInput
	if err := decodeJSON(r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	season, err := h.league.CreateSeason(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, season)
}

// AddMembership handles POST /api/v1/memberships.
func (h *Handlers) AddMembership(w http.ResponseWriter, r *http.Request) {
	var input leagueservice.AddMembershipInput
	if err := decodeJSON(r, &input); err != nil {
		h.writeError(w, r, err)
		return
	}

	membership, err := h.league.AddMembership(r.Context(), input)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, membership)
}

// PlayerHandicap handles GET /api/v1/seasons/{seasonID}/players/{playerID}/handicap.
func (h *Handlers) PlayerHandicap(w http.ResponseWriter, r *http.Request) {
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

	handicap, err := h.league.PlayerHandicap(r.Context(), seasonID, playerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, handicap)
}
