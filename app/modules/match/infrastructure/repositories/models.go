package matchdb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	matchdomain "github.com/fairway-collective/league-engine/app/modules/match/domain"
)

// MatchDay is the persistence model for match days.
type MatchDay struct {
	bun.BaseModel `bun:"table:match_days,alias:md"`

	ID       uuid.UUID                 `bun:"id,pk,type:uuid"`
	SeasonID uuid.UUID                 `bun:"season_id,notnull,type:uuid"`
	CourseID uuid.UUID                 `bun:"course_id,notnull,type:uuid"`
	PlayDate time.Time                 `bun:"play_date,notnull"`
	Status   matchdomain.MatchDayStatus `bun:"status,notnull,default:'SCHEDULED'"`
}

// Match is the persistence model for matches.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:mt"`

	ID         uuid.UUID               `bun:"id,pk,type:uuid"`
	MatchDayID uuid.UUID               `bun:"match_day_id,notnull,type:uuid"`
	PlayerAID  uuid.UUID               `bun:"player_a_id,notnull,type:uuid"`
	PlayerBID  uuid.UUID               `bun:"player_b_id,notnull,type:uuid"`
	Status     matchdomain.MatchStatus `bun:"status,notnull,default:'SCHEDULED'"`
	PointsA    int                     `bun:"points_a,notnull,default:0"`
	PointsB    int                     `bun:"points_b,notnull,default:0"`
	AbsentA    bool                    `bun:"absent_a,notnull,default:false"`
	AbsentB    bool                    `bun:"absent_b,notnull,default:false"`
}

// Round is the persistence model for per-player match rounds. Score arrays
// are stored as JSONB; one row per (match, player), replaced wholesale on
// re-processing.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`

	ID              uuid.UUID              `bun:"id,pk,type:uuid"`
	MatchID         uuid.UUID              `bun:"match_id,notnull,type:uuid"`
	PlayerID        uuid.UUID              `bun:"player_id,notnull,type:uuid"`
	Absent          bool                   `bun:"absent,notnull,default:false"`
	PlayingHandicap int                    `bun:"playing_handicap,notnull"`
	IndexSnapshot   float64                `bun:"index_snapshot,notnull"`
	Gross           matchdomain.HoleScores `bun:"gross,notnull,type:jsonb"`
	Strokes         matchdomain.HoleScores `bun:"strokes,notnull,type:jsonb"`
	Net             matchdomain.HoleScores `bun:"net,notnull,type:jsonb"`
	HolePoints      matchdomain.HoleScores `bun:"hole_points,notnull,type:jsonb"`
	GrossTotal      int                    `bun:"gross_total,notnull"`
	StrokesTotal    int                    `bun:"strokes_total,notnull"`
	NetTotal        int                    `bun:"net_total,notnull"`
	BonusPoints     int                    `bun:"bonus_points,notnull"`
	TotalPoints     int                    `bun:"total_points,notnull"`
	Differential    *float64               `bun:"differential"`
	CreatedAt       time.Time              `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func matchDayToDomain(m *MatchDay) *matchdomain.MatchDay {
	if m == nil {
		return nil
	}
	return &matchdomain.MatchDay{
		ID:       m.ID,
		SeasonID: m.SeasonID,
		CourseID: m.CourseID,
		PlayDate: m.PlayDate,
		Status:   m.Status,
	}
}

func matchToDomain(m *Match) *matchdomain.Match {
	if m == nil {
		return nil
	}
	return &matchdomain.Match{
		ID:         m.ID,
		MatchDayID: m.MatchDayID,
		PlayerAID:  m.PlayerAID,
		PlayerBID:  m.PlayerBID,
		Status:     m.Status,
		PointsA:    m.PointsA,
		PointsB:    m.PointsB,
		AbsentA:    m.AbsentA,
		AbsentB:    m.AbsentB,
	}
}

func roundToModel(r matchdomain.Round) *Round {
	return &Round{
		ID:              r.ID,
		MatchID:         r.MatchID,
		PlayerID:        r.PlayerID,
		Absent:          r.Absent,
		PlayingHandicap: r.PlayingHandicap,
		IndexSnapshot:   r.IndexSnapshot,
		Gross:           r.Gross,
		Strokes:         r.Strokes,
		Net:             r.Net,
		HolePoints:      r.HolePoints,
		GrossTotal:      r.GrossTotal,
		StrokesTotal:    r.StrokesTotal,
		NetTotal:        r.NetTotal,
		BonusPoints:     r.BonusPoints,
		TotalPoints:     r.TotalPoints,
		Differential:    r.Differential,
	}
}

func roundToDomain(r *Round) matchdomain.Round {
	return matchdomain.Round{
		ID:              r.ID,
		MatchID:         r.MatchID,
		PlayerID:        r.PlayerID,
		Absent:          r.Absent,
		PlayingHandicap: r.PlayingHandicap,
		IndexSnapshot:   r.IndexSnapshot,
		Gross:           r.Gross,
		Strokes:         r.Strokes,
		Net:             r.Net,
		HolePoints:      r.HolePoints,
		GrossTotal:      r.GrossTotal,
		StrokesTotal:    r.StrokesTotal,
		NetTotal:        r.NetTotal,
		BonusPoints:     r.BonusPoints,
		TotalPoints:     r.TotalPoints,
		Differential:    r.Differential,
	}
}
