package handicapdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	handicapdomain "github.com/fairway-collective/league-engine/app/modules/handicap/domain"
)

// Differential is one ingested differential row. The autoincrement id
// doubles as the ingestion-order tiebreaker for same-date rounds; the upsert
// keyed on (season, player, match) preserves it across re-processing.
type Differential struct {
	bun.BaseModel `bun:"table:differentials,alias:d"`

	ID        int64     `bun:"id,pk,autoincrement"`
	SeasonID  uuid.UUID `bun:"season_id,notnull,type:uuid"`
	PlayerID  uuid.UUID `bun:"player_id,notnull,type:uuid"`
	MatchID   uuid.UUID `bun:"match_id,notnull,type:uuid"`
	Value     float64   `bun:"value,notnull"`
	RoundDate time.Time `bun:"round_date,notnull"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// HandicapRecord is the per (season, player) snapshot row.
type HandicapRecord struct {
	bun.BaseModel `bun:"table:handicap_records,alias:h"`

	SeasonID        uuid.UUID `bun:"season_id,pk,type:uuid"`
	PlayerID        uuid.UUID `bun:"player_id,pk,type:uuid"`
	Index           float64   `bun:"handicap_index,notnull"`
	CourseHandicap  int       `bun:"course_handicap,notnull"`
	PlayingHandicap int       `bun:"playing_handicap,notnull"`
	Provisional     bool      `bun:"provisional,notnull,default:false"`
	UpdatedAt       time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

func recordToDomain(r *HandicapRecord) *handicapdomain.Record {
	if r == nil {
		return nil
	}
	return &handicapdomain.Record{
		SeasonID:        r.SeasonID,
		PlayerID:        r.PlayerID,
		Index:           r.Index,
		CourseHandicap:  r.CourseHandicap,
		PlayingHandicap: r.PlayingHandicap,
		Provisional:     r.Provisional,
		UpdatedAt:       r.UpdatedAt,
	}
}
