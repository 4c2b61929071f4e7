package handicapdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	handicapdomain "github.com/fairway-collective/league-engine/app/modules/handicap/domain"
)

// Repository stores differential history and handicap snapshots. The db
// argument lets callers pass a transaction; nil falls back to the
// repository's pool.
type Repository interface {
	// UpsertDifferential inserts a differential, replacing the value for the
	// same (season, player, match) on re-processing without disturbing the
	// original ingestion order.
	UpsertDifferential(ctx context.Context, db bun.IDB, entry handicapdomain.DifferentialEntry) error
	// ListDifferentials returns a player's season history ordered by round
	// date, ties broken by ingestion order.
	ListDifferentials(ctx context.Context, db bun.IDB, seasonID, playerID uuid.UUID) ([]handicapdomain.DifferentialEntry, error)
	UpsertRecord(ctx context.Context, db bun.IDB, record handicapdomain.Record) error
	GetRecord(ctx context.Context, db bun.IDB, seasonID, playerID uuid.UUID) (*handicapdomain.Record, error)
}
