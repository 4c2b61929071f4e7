package standingsdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// StandingsRow is one player's materialized season standing. Rebuilt wholesale
// from completed matches; never updated incrementally.
type StandingsRow struct {
	bun.BaseModel `bun:"table:season_standings,alias:ss"`

	SeasonID      uuid.UUID `bun:"season_id,pk,type:uuid"`
	PlayerID      uuid.UUID `bun:"player_id,pk,type:uuid"`
	MatchesPlayed int       `bun:"matches_played,notnull"`
	Points        int       `bun:"points,notnull"`
	Absences      int       `bun:"absences,notnull"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
