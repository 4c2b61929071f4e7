package standingsdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	standingsdomain "github.com/fairway-collective/league-engine/app/modules/standings/domain"
)

// Repository stores the standings projection. The db argument lets callers
// pass a transaction; nil falls back to the repository's pool.
type Repository interface {
	// ReplaceSeason swaps the season's rows for a freshly built projection.
	ReplaceSeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID, rows []standingsdomain.Row) error
	// ListSeason returns the season's standings, best first.
	ListSeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]standingsdomain.Row, error)
}
