package matchservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	matchdomain "github.com/fairway-collective/league-engine/app/modules/match/domain"
	"github.com/fairway-collective/league-engine/app/observability/attr"
	"github.com/fairway-collective/league-engine/app/shared"
)

// CreateMatchDay schedules a date's play on a course for a season.
func (s *MatchService) CreateMatchDay(ctx context.Context, input CreateMatchDayInput) (*matchdomain.MatchDay, error) {
	return withTelemetry(ctx, s, "match.create_match_day", func(ctx context.Context) (*matchdomain.MatchDay, error) {
		if input.SeasonID == uuid.Nil || input.CourseID == uuid.Nil {
			return nil, shared.InvalidInputf("season and course IDs are required")
		}
		if input.PlayDate.IsZero() {
			return nil, shared.InvalidInputf("play date is required")
		}

		season, err := s.leagueRepo.GetSeason(ctx, nil, input.SeasonID)
		if err != nil {
			return nil, fmt.Errorf("failed to get season: %w", err)
		}
		if _, err := s.courseRepo.Get(ctx, nil, input.CourseID); err != nil {
			return nil, fmt.Errorf("failed to get course: %w", err)
		}

		day := matchdomain.MatchDay{
			ID:       uuid.New(),
			SeasonID: season.ID,
			CourseID: input.CourseID,
			PlayDate: input.PlayDate.UTC(),
			Status:   matchdomain.MatchDayStatusScheduled,
		}
		if err := s.matchRepo.CreateMatchDay(ctx, nil, day); err != nil {
			return nil, fmt.Errorf("failed to create match day: %w", err)
		}

		s.logger.InfoContext(ctx, "Match day created",
			attr.UUID("match_day_id", day.ID),
			attr.UUID("season_id", day.SeasonID),
			attr.Time("play_date", day.PlayDate),
		)
		return &day, nil
	})
}

// GetMatchDay returns one match day.
func (s *MatchService) GetMatchDay(ctx context.Context, id uuid.UUID) (*matchdomain.MatchDay, error) {
	return withTelemetry(ctx, s, "match.get_match_day", func(ctx context.Context) (*matchdomain.MatchDay, error) {
		day, err := s.matchRepo.GetMatchDay(ctx, nil, id)
		if err != nil {
			return nil, fmt.Errorf("failed to get match day: %w", err)
		}
		return day, nil
	})
}

// DeleteMatchDay removes a match day that has not been scored. Completed and
// locked days carry results and cannot be deleted.
func (s *MatchService) DeleteMatchDay(ctx context.Context, id uuid.UUID) error {
	_, err := withTelemetry(ctx, s, "match.delete_match_day", func(ctx context.Context) (struct{}, error) {
		day, err := s.matchRepo.GetMatchDay(ctx, nil, id)
		if err != nil {
			return struct{}{}, fmt.Errorf("failed to get match day: %w", err)
		}
		if day.Status != matchdomain.MatchDayStatusScheduled {
			return struct{}{}, shared.FailedPreconditionf("match day %s is %s and cannot be deleted", day.ID, day.Status)
		}
		scored, err := s.matchRepo.CountScoredMatches(ctx, nil, id)
		if err != nil {
			return struct{}{}, fmt.Errorf("failed to count scored matches: %w", err)
		}
		if scored > 0 {
			return struct{}{}, shared.FailedPreconditionf("match day %s has %d scored matches and cannot be deleted", day.ID, scored)
		}
		if err := s.matchRepo.DeleteMatchDay(ctx, nil, id); err != nil {
			return struct{}{}, fmt.Errorf("failed to delete match day: %w", err)
		}
		return struct{}{}, nil
	})
	return err
}

// ScheduleMatch adds one pairing to an unlocked match day.
func (s *MatchService) ScheduleMatch(ctx context.Context, input ScheduleMatchInput) (*matchdomain.Match, error) {
	return withTelemetry(ctx, s, "match.schedule", func(ctx context.Context) (*matchdomain.Match, error) {
		if input.MatchDayID == uuid.Nil {
			return nil, shared.InvalidInputf("match day ID is required")
		}
		if input.PlayerAID == uuid.Nil || input.PlayerBID == uuid.Nil {
			return nil, shared.InvalidInputf("both player IDs are required")
		}
		if input.PlayerAID == input.PlayerBID {
			return nil, shared.InvalidInputf("a player cannot be paired against themselves")
		}

		day, err := s.matchRepo.GetMatchDay(ctx, nil, input.MatchDayID)
		if err != nil {
			return nil, fmt.Errorf("failed to get match day: %w", err)
		}
		if day.Status == matchdomain.MatchDayStatusLocked {
			return nil, shared.FailedPreconditionf("match day %s is locked", day.ID)
		}

		season, err := s.leagueRepo.GetSeason(ctx, nil, day.SeasonID)
		if err != nil {
			return nil, fmt.Errorf("failed to get season: %w", err)
		}
		for _, playerID := range []uuid.UUID{input.PlayerAID, input.PlayerBID} {
			if _, err := s.leagueRepo.GetMembership(ctx, nil, season.LeagueID, playerID); err != nil {
				return nil, fmt.Errorf("failed to get membership for player %s: %w", playerID, err)
			}
		}

		match := matchdomain.Match{
			ID:         uuid.New(),
			MatchDayID: day.ID,
			PlayerAID:  input.PlayerAID,
			PlayerBID:  input.PlayerBID,
			Status:     matchdomain.MatchStatusScheduled,
		}
		if err := s.matchRepo.CreateMatch(ctx, nil, match); err != nil {
			return nil, fmt.Errorf("failed to create match: %w", err)
		}
		return &match, nil
	})
}

// MatchResult returns a match with its stored rounds.
func (s *MatchService) MatchResult(ctx context.Context, matchID uuid.UUID) (*MatchResult, error) {
	return withTelemetry(ctx, s, "match.result", func(ctx context.Context) (*MatchResult, error) {
		match, err := s.matchRepo.GetMatch(ctx, nil, matchID)
		if err != nil {
			return nil, fmt.Errorf("failed to get match: %w", err)
		}
		rounds, err := s.matchRepo.ListRoundsForMatch(ctx, nil, matchID)
		if err != nil {
			return nil, fmt.Errorf("failed to list rounds: %w", err)
		}
		return &MatchResult{Match: *match, Rounds: rounds}, nil
	})
}

// StrokeAllocation previews both sides' strokes from the current handicap
// snapshots. Read-only; the snapshot may drift before the match is actually
// processed if other matches in the season complete first.
func (s *MatchService) StrokeAllocation(ctx context.Context, matchID uuid.UUID) (*StrokeAllocation, error) {
	return withTelemetry(ctx, s, "match.stroke_allocation", func(ctx context.Context) (*StrokeAllocation, error) {
		match, err := s.matchRepo.GetMatch(ctx, nil, matchID)
		if err != nil {
			return nil, fmt.Errorf("failed to get match: %w", err)
		}
		day, err := s.matchRepo.GetMatchDay(ctx, nil, match.MatchDayID)
		if err != nil {
			return nil, fmt.Errorf("failed to get match day: %w", err)
		}
		season, err := s.leagueRepo.GetSeason(ctx, nil, day.SeasonID)
		if err != nil {
			return nil, fmt.Errorf("failed to get season: %w", err)
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

		snapA, err := s.handicaps.PlayingHandicapFor(ctx, nil, season.ID, match.PlayerAID, memberA.ProvisionalHandicap, course.SlopeRating)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve handicap for player A: %w", err)
		}
		snapB, err := s.handicaps.PlayingHandicapFor(ctx, nil, season.ID, match.PlayerBID, memberB.ProvisionalHandicap, course.SlopeRating)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve handicap for player B: %w", err)
		}

		strokesA, strokesB := matchdomain.AllocateStrokes(snapA.PlayingHandicap, snapB.PlayingHandicap, course.HoleDifficulty)
		return &StrokeAllocation{
			MatchID:   match.ID,
			PlayerAID: match.PlayerAID,
			PlayerBID: match.PlayerBID,
			SideA:     snapA,
			SideB:     snapB,
			StrokesA:  strokesA,
			StrokesB:  strokesB,
		}, nil
	})
}
