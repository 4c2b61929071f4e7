package matchservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	matchdomain "github.com/fairway-collective/league-engine/app/modules/match/domain"
	"github.com/fairway-collective/league-engine/app/observability/attr"
)

// advanceSequence moves the day to COMPLETED on its first scored match and
// locks every earlier completed day in the season. Runs inside the processing
// transaction; idempotent under re-processing.
func (s *MatchService) advanceSequence(ctx context.Context, tx bun.IDB, day matchdomain.MatchDay) ([]uuid.UUID, error) {
	if day.Status == matchdomain.MatchDayStatusScheduled {
		if err := s.matchRepo.UpdateMatchDayStatus(ctx, tx, day.ID, matchdomain.MatchDayStatusCompleted); err != nil {
			return nil, fmt.Errorf("failed to complete match day: %w", err)
		}
	}

	earlier, err := s.matchRepo.ListCompletedMatchDaysBefore(ctx, tx, day.SeasonID, day.PlayDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list earlier match days: %w", err)
	}

	locked := make([]uuid.UUID, 0, len(earlier))
	for _, prev := range earlier {
		if err := s.matchRepo.UpdateMatchDayStatus(ctx, tx, prev.ID, matchdomain.MatchDayStatusLocked); err != nil {
			return nil, fmt.Errorf("failed to lock match day %s: %w", prev.ID, err)
		}
		locked = append(locked, prev.ID)
		s.logger.InfoContext(ctx, "Match day locked",
			attr.UUID("match_day_id", prev.ID),
			attr.UUID("season_id", day.SeasonID),
		)
	}
	return locked, nil
}
