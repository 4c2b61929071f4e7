package handicapdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	handicapdomain "github.com/fairway-collective/league-engine/app/modules/handicap/domain"
	"github.com/fairway-collective/league-engine/app/shared"
)

// HandicapDBImpl implements Repository on top of bun.
type HandicapDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*HandicapDBImpl)(nil)

func (r *HandicapDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *HandicapDBImpl) UpsertDifferential(ctx context.Context, db bun.IDB, entry handicapdomain.DifferentialEntry) error {
	model := &Differential{
		SeasonID:  entry.SeasonID,
		PlayerID:  entry.PlayerID,
		MatchID:   entry.MatchID,
		Value:     entry.Value,
		RoundDate: entry.RoundDate,
	}
	_, err := r.idb(db).NewInsert().
		Model(model).
		On("CONFLICT (season_id, player_id, match_id) DO UPDATE").
		Set("value = EXCLUDED.value, round_date = EXCLUDED.round_date").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert differential for player %s match %s: %w", entry.PlayerID, entry.MatchID, err)
	}
	return nil
}

func (r *HandicapDBImpl) ListDifferentials(ctx context.Context, db bun.IDB, seasonID, playerID uuid.UUID) ([]handicapdomain.DifferentialEntry, error) {
	var models []Differential
	err := r.idb(db).NewSelect().
		Model(&models).
		Where("season_id = ?", seasonID).
		Where("player_id = ?", playerID).
		Order("round_date ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list differentials for player %s: %w", playerID, err)
	}

	entries := make([]handicapdomain.DifferentialEntry, 0, len(models))
	for _, m := range models {
		entries = append(entries, handicapdomain.DifferentialEntry{
			SeasonID:  m.SeasonID,
			PlayerID:  m.PlayerID,
			MatchID:   m.MatchID,
			Value:     m.Value,
			RoundDate: m.RoundDate,
		})
	}
	return entries, nil
}

func (r *HandicapDBImpl) UpsertRecord(ctx context.Context, db bun.IDB, record handicapdomain.Record) error {
	model := &HandicapRecord{
		SeasonID:        record.SeasonID,
		PlayerID:        record.PlayerID,
		Index:           record.Index,
		CourseHandicap:  record.CourseHandicap,
		PlayingHandicap: record.PlayingHandicap,
		Provisional:     record.Provisional,
		UpdatedAt:       record.UpdatedAt,
	}
	_, err := r.idb(db).NewInsert().
		Model(model).
		On("CONFLICT (season_id, player_id) DO UPDATE").
		Set("handicap_index = EXCLUDED.handicap_index").
		Set("course_handicap = EXCLUDED.course_handicap").
		Set("playing_handicap = EXCLUDED.playing_handicap").
		Set("provisional = EXCLUDED.provisional").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert handicap record for player %s: %w", record.PlayerID, err)
	}
	return nil
}

func (r *HandicapDBImpl) GetRecord(ctx context.Context, db bun.IDB, seasonID, playerID uuid.UUID) (*handicapdomain.Record, error) {
	var record HandicapRecord
	err := r.idb(db).NewSelect().
		Model(&record).
		Where("season_id = ?", seasonID).
		Where("player_id = ?", playerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NotFoundf("handicap record for player %s in season %s", playerID, seasonID)
		}
		return nil, fmt.Errorf("failed to fetch handicap record for player %s: %w", playerID, err)
	}
	return recordToDomain(&record), nil
}
