// Package leaguedomain holds league membership and season types. The
// identity provider owns accounts; this module only knows the resolved
// player IDs and their league-scoped attributes.
package leaguedomain

import (
	"time"

	"github.com/google/uuid"
)

// Season scopes handicap history: a player's index is computed independently
// per season. At most one season is active per league, enforced by the admin
// tooling that activates seasons.
type Season struct {
	ID       uuid.UUID `json:"id"`
	LeagueID uuid.UUID `json:"league_id"`
	Name     string    `json:"name"`
	StartsOn time.Time `json:"starts_on"`
	EndsOn   time.Time `json:"ends_on"`
	Active   bool      `json:"active"`
}

// Membership ties a player to a league. ProvisionalHandicap is the
// admin-entered starting handicap used until the player's first real round
// of the active season; it is shadowed by computed history, never
// overwritten.
type Membership struct {
	ID                  uuid.UUID `json:"id"`
	LeagueID            uuid.UUID `json:"league_id"`
	PlayerID            uuid.UUID `json:"player_id"`
	DisplayName         string    `json:"display_name"`
	ProvisionalHandicap float64   `json:"provisional_handicap"`
	JoinedAt            time.Time `json:"joined_at"`
}
