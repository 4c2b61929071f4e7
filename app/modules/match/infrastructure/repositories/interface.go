package matchdb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	matchdomain "github.com/fairway-collective/league-engine/app/modules/match/domain"
)

// Repository stores match days, matches, and rounds. The db argument lets
// callers pass a transaction; nil falls back to the repository's pool.
type Repository interface {
	CreateMatchDay(ctx context.Context, db bun.IDB, day matchdomain.MatchDay) error
	GetMatchDay(ctx context.Context, db bun.IDB, id uuid.UUID) (*matchdomain.MatchDay, error)
	UpdateMatchDayStatus(ctx context.Context, db bun.IDB, id uuid.UUID, status matchdomain.MatchDayStatus) error
	// ListCompletedMatchDaysBefore returns a season's COMPLETED match days
	// strictly earlier than the given date. Used by the sequencer to decide
	// what to lock.
	ListCompletedMatchDaysBefore(ctx context.Context, db bun.IDB, seasonID uuid.UUID, before time.Time) ([]matchdomain.MatchDay, error)
	// DeleteMatchDay removes a scheduled match day and its matches.
	DeleteMatchDay(ctx context.Context, db bun.IDB, id uuid.UUID) error

	CreateMatch(ctx context.Context, db bun.IDB, match matchdomain.Match) error
	GetMatch(ctx context.Context, db bun.IDB, id uuid.UUID) (*matchdomain.Match, error)
	// SaveMatchResult writes the point totals, absence flags, and COMPLETED
	// status after processing.
	SaveMatchResult(ctx context.Context, db bun.IDB, match matchdomain.Match) error
	CountScoredMatches(ctx context.Context, db bun.IDB, matchDayID uuid.UUID) (int, error)
	// ListCompletedMatchesForSeason returns every completed match in the
	// season, joined through match days. Feeds the standings projection.
	ListCompletedMatchesForSeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]matchdomain.Match, error)

	// ReplaceRounds swaps the stored round pair for a match. Re-processing
	// replaces, never appends.
	ReplaceRounds(ctx context.Context, db bun.IDB, matchID uuid.UUID, rounds []matchdomain.Round) error
	ListRoundsForMatch(ctx context.Context, db bun.IDB, matchID uuid.UUID) ([]matchdomain.Round, error)
}
