package matchdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	matchdomain "github.com/fairway-collective/league-engine/app/modules/match/domain"
	"github.com/fairway-collective/league-engine/app/shared"
)

// MatchDBImpl implements Repository on top of bun.
type MatchDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*MatchDBImpl)(nil)

func (r *MatchDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *MatchDBImpl) CreateMatchDay(ctx context.Context, db bun.IDB, day matchdomain.MatchDay) error {
	model := &MatchDay{
		ID:       day.ID,
		SeasonID: day.SeasonID,
		CourseID: day.CourseID,
		PlayDate: day.PlayDate,
		Status:   day.Status,
	}
	if _, err := r.idb(db).NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert match day %s: %w", day.ID, err)
	}
	return nil
}

func (r *MatchDBImpl) GetMatchDay(ctx context.Context, db bun.IDB, id uuid.UUID) (*matchdomain.MatchDay, error) {
	var day MatchDay
	err := r.idb(db).NewSelect().Model(&day).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NotFoundf("match day %s", id)
		}
		return nil, fmt.Errorf("failed to fetch match day %s: %w", id, err)
	}
	return matchDayToDomain(&day), nil
}

func (r *MatchDBImpl) UpdateMatchDayStatus(ctx context.Context, db bun.IDB, id uuid.UUID, status matchdomain.MatchDayStatus) error {
	res, err := r.idb(db).NewUpdate().
		Model((*MatchDay)(nil)).
		Set("status = ?", status).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update match day %s status: %w", id, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return shared.NotFoundf("match day %s", id)
	}
	return nil
}

func (r *MatchDBImpl) ListCompletedMatchDaysBefore(ctx context.Context, db bun.IDB, seasonID uuid.UUID, before time.Time) ([]matchdomain.MatchDay, error) {
	var models []MatchDay
	err := r.idb(db).NewSelect().
		Model(&models).
		Where("season_id = ?", seasonID).
		Where("status = ?", matchdomain.MatchDayStatusCompleted).
		Where("play_date < ?", before).
		Order("play_date ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed match days for season %s: %w", seasonID, err)
	}

	days := make([]matchdomain.MatchDay, 0, len(models))
	for i := range models {
		days = append(days, *matchDayToDomain(&models[i]))
	}
	return days, nil
}

func (r *MatchDBImpl) DeleteMatchDay(ctx context.Context, db bun.IDB, id uuid.UUID) error {
	if _, err := r.idb(db).NewDelete().
		Model((*Match)(nil)).
		Where("match_day_id = ?", id).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete matches for match day %s: %w", id, err)
	}
	if _, err := r.idb(db).NewDelete().
		Model((*MatchDay)(nil)).
		Where("id = ?", id).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete match day %s: %w", id, err)
	}
	return nil
}

func (r *MatchDBImpl) CreateMatch(ctx context.Context, db bun.IDB, match matchdomain.Match) error {
	model := &Match{
		ID:         match.ID,
		MatchDayID: match.MatchDayID,
		PlayerAID:  match.PlayerAID,
		PlayerBID:  match.PlayerBID,
		Status:     match.Status,
	}
	if _, err := r.idb(db).NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert match %s: %w", match.ID, err)
	}
	return nil
}

func (r *MatchDBImpl) GetMatch(ctx context.Context, db bun.IDB, id uuid.UUID) (*matchdomain.Match, error) {
	var match Match
	err := r.idb(db).NewSelect().Model(&match).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NotFoundf("match %s", id)
		}
		return nil, fmt.Errorf("failed to fetch match %s: %w", id, err)
	}
	return matchToDomain(&match), nil
}

func (r *MatchDBImpl) SaveMatchResult(ctx context.Context, db bun.IDB, match matchdomain.Match) error {
	_, err := r.idb(db).NewUpdate().
		Model((*Match)(nil)).
		Set("status = ?", match.Status).
		Set("points_a = ?", match.PointsA).
		Set("points_b = ?", match.PointsB).
		Set("absent_a = ?", match.AbsentA).
		Set("absent_b = ?", match.AbsentB).
		Where("id = ?", match.ID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save result for match %s: %w", match.ID, err)
	}
	return nil
}

func (r *MatchDBImpl) CountScoredMatches(ctx context.Context, db bun.IDB, matchDayID uuid.UUID) (int, error) {
	count, err := r.idb(db).NewSelect().
		Model((*Match)(nil)).
		Where("match_day_id = ?", matchDayID).
		Where("status = ?", matchdomain.MatchStatusCompleted).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count scored matches for match day %s: %w", matchDayID, err)
	}
	return count, nil
}

func (r *MatchDBImpl) ListCompletedMatchesForSeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]matchdomain.Match, error) {
	var models []Match
	err := r.idb(db).NewSelect().
		Model(&models).
		Join("JOIN match_days AS md ON md.id = mt.match_day_id").
		Where("md.season_id = ?", seasonID).
		Where("mt.status = ?", matchdomain.MatchStatusCompleted).
		Order("md.play_date ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed matches for season %s: %w", seasonID, err)
	}

	matches := make([]matchdomain.Match, 0, len(models))
	for i := range models {
		matches = append(matches, *matchToDomain(&models[i]))
	}
	return matches, nil
}

func (r *MatchDBImpl) ReplaceRounds(ctx context.Context, db bun.IDB, matchID uuid.UUID, rounds []matchdomain.Round) error {
	if _, err := r.idb(db).NewDelete().
		Model((*Round)(nil)).
		Where("match_id = ?", matchID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete prior rounds for match %s: %w", matchID, err)
	}

	models := make([]*Round, 0, len(rounds))
	for _, round := range rounds {
		models = append(models, roundToModel(round))
	}
	if _, err := r.idb(db).NewInsert().Model(&models).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert rounds for match %s: %w", matchID, err)
	}
	return nil
}

func (r *MatchDBImpl) ListRoundsForMatch(ctx context.Context, db bun.IDB, matchID uuid.UUID) ([]matchdomain.Round, error) {
	var models []Round
	err := r.idb(db).NewSelect().
		Model(&models).
		Where("match_id = ?", matchID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds for match %s: %w", matchID, err)
	}

	rounds := make([]matchdomain.Round, 0, len(models))
	for i := range models {
		rounds = append(rounds, roundToDomain(&models[i]))
	}
	return rounds, nil
}
