package handicapservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	handicapdomain "github.com/fairway-collective/league-engine/app/modules/handicap/domain"
)

// Service is the handicap module's application interface. The db argument on
// mutating calls lets the match processor run them inside its transaction.
type Service interface {
	// PlayingHandicapFor resolves a player's current index and playing
	// handicap for a course of the given slope, falling back to the
	// provisional handicap when no qualifying rounds exist.
	PlayingHandicapFor(ctx context.Context, db bun.IDB, seasonID, playerID uuid.UUID, provisional float64, slopeRating int) (Snapshot, error)
	// IngestDifferential appends (or replaces, keyed by match) a
	// differential and recomputes the player's handicap record.
	IngestDifferential(ctx context.Context, db bun.IDB, entry handicapdomain.DifferentialEntry, provisional float64, slopeRating int) (handicapdomain.Record, error)
	// Record returns the stored snapshot, synthesizing a provisional one
	// when the player has no computed history yet.
	Record(ctx context.Context, seasonID, playerID uuid.UUID, provisional float64) (handicapdomain.Record, error)
	// History returns the player's season differentials in ingestion order.
	History(ctx context.Context, seasonID, playerID uuid.UUID) ([]handicapdomain.DifferentialEntry, error)
}

// Snapshot is a point-in-time handicap resolution for one player and course.
type Snapshot struct {
	Index           float64 `json:"index"`
	CourseHandicap  int     `json:"course_handicap"`
	PlayingHandicap int     `json:"playing_handicap"`
	Provisional     bool    `json:"provisional"`
}
