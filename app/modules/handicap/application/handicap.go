package handicapservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	handicapdomain "github.com/fairway-collective/league-engine/app/modules/handicap/domain"
	"github.com/fairway-collective/league-engine/app/observability/attr"
	"github.com/fairway-collective/league-engine/app/shared"
)

// PlayingHandicapFor computes the handicap a player carries into a round on a
// course of the given slope. The result reflects history as of this call, so
// the match processor invokes it before ingesting the round being scored.
func (s *HandicapService) PlayingHandicapFor(ctx context.Context, db bun.IDB, seasonID, playerID uuid.UUID, provisional float64, slopeRating int) (Snapshot, error) {
	return withTelemetry(ctx, s, "handicap.playing_handicap_for", func(ctx context.Context) (Snapshot, error) {
		if slopeRating <= 0 {
			return Snapshot{}, shared.InvalidInputf("slope rating must be positive, got %d", slopeRating)
		}

		entries, err := s.repo.ListDifferentials(ctx, db, seasonID, playerID)
		if err != nil {
			return Snapshot{}, fmt.Errorf("failed to list differentials: %w", err)
		}

		index := handicapdomain.Index(values(entries), provisional)
		return Snapshot{
			Index:           index,
			CourseHandicap:  handicapdomain.CourseHandicap(index, slopeRating),
			PlayingHandicap: handicapdomain.PlayingHandicap(index, slopeRating),
			Provisional:     len(entries) == 0,
		}, nil
	})
}

// IngestDifferential stores one round's differential and recomputes the
// player's handicap record from the updated history. Re-ingesting the same
// match replaces the prior value in place, so re-processing a corrected match
// never double-counts a round.
func (s *HandicapService) IngestDifferential(ctx context.Context, db bun.IDB, entry handicapdomain.DifferentialEntry, provisional float64, slopeRating int) (handicapdomain.Record, error) {
	return withTelemetry(ctx, s, "handicap.ingest_differential", func(ctx context.Context) (handicapdomain.Record, error) {
		if entry.SeasonID == uuid.Nil || entry.PlayerID == uuid.Nil || entry.MatchID == uuid.Nil {
			return handicapdomain.Record{}, shared.InvalidInputf("differential entry requires season, player, and match IDs")
		}
		if slopeRating <= 0 {
			return handicapdomain.Record{}, shared.InvalidInputf("slope rating must be positive, got %d", slopeRating)
		}

		if err := s.repo.UpsertDifferential(ctx, db, entry); err != nil {
			return handicapdomain.Record{}, fmt.Errorf("failed to upsert differential: %w", err)
		}

		entries, err := s.repo.ListDifferentials(ctx, db, entry.SeasonID, entry.PlayerID)
		if err != nil {
			return handicapdomain.Record{}, fmt.Errorf("failed to list differentials: %w", err)
		}

		index := handicapdomain.Index(values(entries), provisional)
		record := handicapdomain.Record{
			SeasonID:        entry.SeasonID,
			PlayerID:        entry.PlayerID,
			Index:           index,
			CourseHandicap:  handicapdomain.CourseHandicap(index, slopeRating),
			PlayingHandicap: handicapdomain.PlayingHandicap(index, slopeRating),
			Provisional:     len(entries) == 0,
			UpdatedAt:       s.clock().UTC(),
		}

		if err := s.repo.UpsertRecord(ctx, db, record); err != nil {
			return handicapdomain.Record{}, fmt.Errorf("failed to upsert handicap record: %w", err)
		}

		s.metrics.RecordHandicapUpdated(ctx, entry.SeasonID.String())
		s.logger.InfoContext(ctx, "Handicap record recomputed",
			attr.UUID("season_id", entry.SeasonID),
			attr.UUID("player_id", entry.PlayerID),
			attr.Float64("index", record.Index),
			attr.Int("rounds", len(entries)),
		)
		return record, nil
	})
}

// Record returns the stored handicap snapshot for a player. Players who have
// not yet completed a round get a synthesized provisional record derived from
// the membership's starting handicap against the baseline slope.
func (s *HandicapService) Record(ctx context.Context, seasonID, playerID uuid.UUID, provisional float64) (handicapdomain.Record, error) {
	return withTelemetry(ctx, s, "handicap.record", func(ctx context.Context) (handicapdomain.Record, error) {
		record, err := s.repo.GetRecord(ctx, nil, seasonID, playerID)
		if err != nil {
			if shared.IsNotFound(err) {
				return handicapdomain.Record{
					SeasonID:        seasonID,
					PlayerID:        playerID,
					Index:           provisional,
					CourseHandicap:  handicapdomain.CourseHandicap(provisional, handicapdomain.BaselineSlope),
					PlayingHandicap: handicapdomain.PlayingHandicap(provisional, handicapdomain.BaselineSlope),
					Provisional:     true,
				}, nil
			}
			return handicapdomain.Record{}, fmt.Errorf("failed to get handicap record: %w", err)
		}
		return *record, nil
	})
}

// History returns the player's season differentials, oldest first.
func (s *HandicapService) History(ctx context.Context, seasonID, playerID uuid.UUID) ([]handicapdomain.DifferentialEntry, error) {
	return withTelemetry(ctx, s, "handicap.history", func(ctx context.Context) ([]handicapdomain.DifferentialEntry, error) {
		entries, err := s.repo.ListDifferentials(ctx, nil, seasonID, playerID)
		if err != nil {
			return nil, fmt.Errorf("failed to list differentials: %w", err)
		}
		return entries, nil
	})
}

func values(entries []handicapdomain.DifferentialEntry) []float64 {
	out := make([]float64, len(entries))
	for i, e := range entries {
		out[i] = e.Value
	}
	return out
}
