package leaguedb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	leaguedomain "github.com/fairway-collective/league-engine/app/modules/league/domain"
)

// Season is the persistence model for league seasons.
type Season struct {
	bun.BaseModel `bun:"table:seasons,alias:s"`

	ID       uuid.UUID `bun:"id,pk,type:uuid"`
	LeagueID uuid.UUID `bun:"league_id,notnull,type:uuid"`
	Name     string    `bun:"name,notnull"`
	StartsOn time.Time `bun:"starts_on,notnull"`
	EndsOn   time.Time `bun:"ends_on,notnull"`
	Active   bool      `bun:"active,notnull,default:false"`
}

// Membership is the persistence model for league memberships.
type Membership struct {
	bun.BaseModel `bun:"table:memberships,alias:m"`

	ID                  uuid.UUID `bun:"id,pk,type:uuid"`
	LeagueID            uuid.UUID `bun:"league_id,notnull,type:uuid"`
	PlayerID            uuid.UUID `bun:"player_id,notnull,type:uuid"`
	DisplayName         string    `bun:"display_name,notnull"`
	ProvisionalHandicap float64   `bun:"provisional_handicap,notnull,default:0"`
	JoinedAt            time.Time `bun:"joined_at,nullzero,notnull,default:current_timestamp"`
}

func seasonToDomain(s *Season) *leaguedomain.Season {
	if s == nil {
		return nil
	}
	return &leaguedomain.Season{
		ID:       s.ID,
		LeagueID: s.LeagueID,
		Name:     s.Name,
		StartsOn: s.StartsOn,
		EndsOn:   s.EndsOn,
		Active:   s.Active,
	}
}

func membershipToDomain(m *Membership) *leaguedomain.Membership {
	if m == nil {
		return nil
	}
	return &leaguedomain.Membership{
		ID:                  m.ID,
		LeagueID:            m.LeagueID,
		PlayerID:            m.PlayerID,
		DisplayName:         m.DisplayName,
		ProvisionalHandicap: m.ProvisionalHandicap,
		JoinedAt:            m.JoinedAt,
	}
}
