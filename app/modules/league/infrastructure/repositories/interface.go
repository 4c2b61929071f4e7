package leaguedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	leaguedomain "github.com/fairway-collective/league-engine/app/modules/league/domain"
)

// Repository provides season and membership lookups. The db argument lets
// callers pass a transaction; nil falls back to the repository's pool.
type Repository interface {
	CreateSeason(ctx context.Context, db bun.IDB, season leaguedomain.Season) error
	GetSeason(ctx context.Context, db bun.IDB, id uuid.UUID) (*leaguedomain.Season, error)
	CreateMembership(ctx context.Context, db bun.IDB, membership leaguedomain.Membership) error
	// GetMembership looks up a player's membership in a league; missing
	// membership is a NotFound condition.
	GetMembership(ctx context.Context, db bun.IDB, leagueID, playerID uuid.UUID) (*leaguedomain.Membership, error)
}
