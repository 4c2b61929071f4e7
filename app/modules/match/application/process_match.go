package matchservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/fairway-collective/league-engine/app/events"
	coursedomain "github.com/fairway-collective/league-engine/app/modules/course/domain"
	handicapdomain "github.com/fairway-collective/league-engine/app/modules/handicap/domain"
	leaguedomain "github.com/fairway-collective/league-engine/app/modules/league/domain"
	matchdomain "github.com/fairway-collective/league-engine/app/modules/match/domain"
	"github.com/fairway-collective/league-engine/app/observability/attr"
	"github.com/fairway-collective/league-engine/app/shared"
)

// ProcessMatch runs the scoring pipeline. Validation happens before any
// mutation; all writes share one transaction; events publish only after
// commit. Re-processing an unlocked completed match replaces its result.
func (s *MatchService) ProcessMatch(ctx context.Context, input ProcessMatchInput) (*ProcessMatchResult, error) {
	return withTelemetry(ctx, s, "match.process", func(ctx context.Context) (*ProcessMatchResult, error) {
		if input.MatchID == uuid.Nil {
			return nil, shared.InvalidInputf("match ID is required")
		}
		if !input.SideA.Absent {
			if err := input.SideA.HoleScores.ValidateGross(); err != nil {
				return nil, fmt.Errorf("side A: %w", err)
			}
		}
		if !input.SideB.Absent {
			if err := input.SideB.HoleScores.ValidateGross(); err != nil {
				return nil, fmt.Errorf("side B: %w", err)
			}
		}

		match, err := s.matchRepo.GetMatch(ctx, nil, input.MatchID)
		if err != nil {
			return nil, fmt.Errorf("failed to get match: %w", err)
		}

		day, err := s.matchRepo.GetMatchDay(ctx, nil, match.MatchDayID)
		if err != nil {
			if shared.IsNotFound(err) {
				return nil, shared.FailedPreconditionf("match %s references missing match day %s", match.ID, match.MatchDayID)
			}
			return nil, fmt.Errorf("failed to get match day: %w", err)
		}
		if day.Status == matchdomain.MatchDayStatusLocked {
			return nil, shared.FailedPreconditionf("match day %s is locked", day.ID)
		}

		season, err := s.leagueRepo.GetSeason(ctx, nil, day.SeasonID)
		if err != nil {
			return nil, fmt.Errorf("failed to get season: %w", err)
		}
		if !season.Active {
			return nil, shared.FailedPreconditionf("season %s is not active", season.ID)
		}

		course, err := s.courseRepo.Get(ctx, nil, day.CourseID)
		if err != nil {
			return nil, fmt.Errorf("failed to get course: %w", err)
		}

		memberA, err := s.leagueRepo.GetMembership(ctx, nil, season.LeagueID, match.PlayerAID)
		if err != nil {
			return nil, fmt.Errorf("failed to get membership for player A: %w", err)
		}
		memberB, err := s.leagueRepo.GetMembership(ctx, nil, season.LeagueID, match.PlayerBID)
		if err != nil {
			return nil, fmt.Errorf("failed to get membership for player B: %w", err)
		}

		// Handicap ingestion is order-sensitive, so the rest of the pipeline
		// holds the season's processing slot.
		release, err := s.locks.Acquire(ctx, season.ID)
		if err != nil {
			return nil, err
		}
		defer release()

		result := &ProcessMatchResult{}
		err = s.runInTx(ctx, func(ctx context.Context, tx bun.IDB) error {
			return s.processLocked(ctx, tx, *match, *day, *season, *course, *memberA, *memberB, input, result)
		})
		if err != nil {
			return nil, err
		}

		s.publishProcessed(ctx, *day, result)

		s.logger.InfoContext(ctx, "Match processed",
			attr.UUID("match_id", match.ID),
			attr.UUID("season_id", season.ID),
			attr.Int("points_a", result.Match.PointsA),
			attr.Int("points_b", result.Match.PointsB),
			attr.Int("locked_match_days", len(result.LockedMatchDays)),
		)
		return result, nil
	})
}

// processLocked is the transactional body of ProcessMatch. The caller holds
// the season slot.
func (s *MatchService) processLocked(
	ctx context.Context,
	tx bun.IDB,
	match matchdomain.Match,
	day matchdomain.MatchDay,
	season leaguedomain.Season,
	course coursedomain.Course,
	memberA, memberB leaguedomain.Membership,
	input ProcessMatchInput,
	result *ProcessMatchResult,
) error {
	// Another submission may have held the slot between the pre-lock checks
	// and here; day status and season state are authoritative only under it.
	currentDay, err := s.matchRepo.GetMatchDay(ctx, tx, day.ID)
	if err != nil {
		return fmt.Errorf("failed to reload match day: %w", err)
	}
	if currentDay.Status == matchdomain.MatchDayStatusLocked {
		return shared.FailedPreconditionf("match day %s is locked", currentDay.ID)
	}
	day = *currentDay

	currentSeason, err := s.leagueRepo.GetSeason(ctx, tx, season.ID)
	if err != nil {
		return fmt.Errorf("failed to reload season: %w", err)
	}
	if !currentSeason.Active {
		return shared.FailedPreconditionf("season %s is not active", currentSeason.ID)
	}
	season = *currentSeason

	snapA, err := s.handicaps.PlayingHandicapFor(ctx, tx, season.ID, match.PlayerAID, memberA.ProvisionalHandicap, course.SlopeRating)
	if err != nil {
		return fmt.Errorf("failed to resolve handicap for player A: %w", err)
	}
	snapB, err := s.handicaps.PlayingHandicapFor(ctx, tx, season.ID, match.PlayerBID, memberB.ProvisionalHandicap, course.SlopeRating)
	if err != nil {
		return fmt.Errorf("failed to resolve handicap for player B: %w", err)
	}

	grossA := input.SideA.HoleScores
	if input.SideA.Absent {
		grossA = matchdomain.SyntheticRound(snapA.PlayingHandicap, course)
	}
	grossB := input.SideB.HoleScores
	if input.SideB.Absent {
		grossB = matchdomain.SyntheticRound(snapB.PlayingHandicap, course)
	}

	score := matchdomain.ScoreMatch(course,
		matchdomain.SideInput{PlayerID: match.PlayerAID, HoleScores: grossA, Absent: input.SideA.Absent},
		matchdomain.SideInput{PlayerID: match.PlayerBID, HoleScores: grossB, Absent: input.SideB.Absent},
		snapA.PlayingHandicap, snapB.PlayingHandicap,
	)

	roundA, diffA, err := s.buildRound(match.ID, score.A, snapA.Index, course)
	if err != nil {
		return err
	}
	roundB, diffB, err := s.buildRound(match.ID, score.B, snapB.Index, course)
	if err != nil {
		return err
	}

	if err := s.matchRepo.ReplaceRounds(ctx, tx, match.ID, []matchdomain.Round{roundA, roundB}); err != nil {
		return fmt.Errorf("failed to replace rounds: %w", err)
	}

	match.Status = matchdomain.MatchStatusCompleted
	match.PointsA = score.A.TotalPoints
	match.PointsB = score.B.TotalPoints
	match.AbsentA = input.SideA.Absent
	match.AbsentB = input.SideB.Absent
	if err := s.matchRepo.SaveMatchResult(ctx, tx, match); err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}

	// Absent players' synthetic rounds never enter handicap history.
	for _, side := range []struct {
		diff        *float64
		playerID    uuid.UUID
		provisional float64
	}{
		{diffA, match.PlayerAID, memberA.ProvisionalHandicap},
		{diffB, match.PlayerBID, memberB.ProvisionalHandicap},
	} {
		if side.diff == nil {
			continue
		}
		record, err := s.handicaps.IngestDifferential(ctx, tx, handicapdomain.DifferentialEntry{
			SeasonID:  season.ID,
			PlayerID:  side.playerID,
			MatchID:   match.ID,
			Value:     *side.diff,
			RoundDate: day.PlayDate,
		}, side.provisional, course.SlopeRating)
		if err != nil {
			return fmt.Errorf("failed to ingest differential: %w", err)
		}
		result.HandicapUpdates = append(result.HandicapUpdates, record)
	}

	locked, err := s.advanceSequence(ctx, tx, day)
	if err != nil {
		return err
	}

	result.Match = match
	result.Score = score
	result.LockedMatchDays = locked
	return nil
}

// buildRound converts a computed side score into its stored round. Returns
// the differential for present players, nil for absent ones.
func (s *MatchService) buildRound(matchID uuid.UUID, side matchdomain.SideScore, indexSnapshot float64, course coursedomain.Course) (matchdomain.Round, *float64, error) {
	round := matchdomain.Round{
		ID:              uuid.New(),
		MatchID:         matchID,
		PlayerID:        side.PlayerID,
		Absent:          side.Absent,
		PlayingHandicap: side.PlayingHandicap,
		IndexSnapshot:   indexSnapshot,
		Gross:           side.Gross,
		Strokes:         side.Strokes,
		Net:             side.Net,
		HolePoints:      side.HolePoints,
		GrossTotal:      side.GrossTotal,
		StrokesTotal:    side.StrokesTotal,
		NetTotal:        side.NetTotal,
		BonusPoints:     side.BonusPoints,
		TotalPoints:     side.TotalPoints,
	}
	if side.Absent {
		return round, nil, nil
	}

	diff, err := handicapdomain.Differential(side.GrossTotal, course.CourseRating, course.SlopeRating)
	if err != nil {
		return matchdomain.Round{}, nil, fmt.Errorf("failed to compute differential: %w", err)
	}
	round.Differential = &diff
	return round, &diff, nil
}

// publishProcessed emits the post-commit events. Publish failures are logged
// and dropped; the committed result is the source of truth and projections
// rebuild idempotently.
func (s *MatchService) publishProcessed(ctx context.Context, day matchdomain.MatchDay, result *ProcessMatchResult) {
	now := s.clock().UTC()

	if err := s.eventBus.Publish(ctx, events.MatchProcessedSubject, events.MatchProcessedPayloadV1{
		SeasonID:    day.SeasonID,
		MatchDayID:  day.ID,
		MatchID:     result.Match.ID,
		Score:       result.Score,
		ProcessedAt: now,
	}); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish match.processed", attr.Error(err))
	}
	s.metrics.RecordMatchProcessed(ctx, day.SeasonID.String())

	for _, record := range result.HandicapUpdates {
		if err := s.eventBus.Publish(ctx, events.HandicapUpdatedSubject, events.HandicapUpdatedPayloadV1{
			SeasonID:        record.SeasonID,
			PlayerID:        record.PlayerID,
			Index:           record.Index,
			CourseHandicap:  record.CourseHandicap,
			PlayingHandicap: record.PlayingHandicap,
			Provisional:     record.Provisional,
			UpdatedAt:       record.UpdatedAt,
		}); err != nil {
			s.logger.ErrorContext(ctx, "Failed to publish handicap.updated", attr.Error(err))
		}
	}

	for _, dayID := range result.LockedMatchDays {
		if err := s.eventBus.Publish(ctx, events.MatchDayLockedSubject, events.MatchDayLockedPayloadV1{
			SeasonID:   day.SeasonID,
			MatchDayID: dayID,
			LockedAt:   now,
		}); err != nil {
			s.logger.ErrorContext(ctx, "Failed to publish matchday.locked", attr.Error(err))
		}
		s.metrics.RecordMatchDayLocked(ctx, day.SeasonID.String())
	}
}
