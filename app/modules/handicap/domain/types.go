package handicapdomain

import (
	"time"

	"github.com/google/uuid"
)

// DifferentialEntry is one ingested differential in a player's season
// history. Keyed by match so idempotent re-processing replaces in place.
type DifferentialEntry struct {
	SeasonID  uuid.UUID `json:"season_id"`
	PlayerID  uuid.UUID `json:"player_id"`
	MatchID   uuid.UUID `json:"match_id"`
	Value     float64   `json:"value"`
	RoundDate time.Time `json:"round_date"`
}

// Record is the per (season, player) handicap snapshot, recomputed on every
// non-absent round ingestion and read back for subsequent matches.
type Record struct {
	SeasonID        uuid.UUID `json:"season_id"`
	PlayerID        uuid.UUID `json:"player_id"`
	Index           float64   `json:"index"`
	CourseHandicap  int       `json:"course_handicap"`
	PlayingHandicap int       `json:"playing_handicap"`
	// Provisional reports whether the index is still the admin-entered
	// starting handicap rather than computed from rounds.
	Provisional bool      `json:"provisional"`
	UpdatedAt   time.Time `json:"updated_at"`
}
