package standingsdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	standingsdomain "github.com/fairway-collective/league-engine/app/modules/standings/domain"
)

// StandingsDBImpl implements Repository on top of bun.
type StandingsDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*StandingsDBImpl)(nil)

func (r *StandingsDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *StandingsDBImpl) ReplaceSeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID, rows []standingsdomain.Row) error {
	idb := r.idb(db)

	if _, err := idb.NewDelete().
		Model((*StandingsRow)(nil)).
		Where("season_id = ?", seasonID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear standings for season %s: %w", seasonID, err)
	}
	if len(rows) == 0 {
		return nil
	}

	models := make([]StandingsRow, 0, len(rows))
	for _, row := range rows {
		models = append(models, StandingsRow{
			SeasonID:      row.SeasonID,
			PlayerID:      row.PlayerID,
			MatchesPlayed: row.MatchesPlayed,
			Points:        row.Points,
			Absences:      row.Absences,
			UpdatedAt:     row.UpdatedAt,
		})
	}
	if _, err := idb.NewInsert().Model(&models).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert standings for season %s: %w", seasonID, err)
	}
	return nil
}

func (r *StandingsDBImpl) ListSeason(ctx context.Context, db bun.IDB, seasonID uuid.UUID) ([]standingsdomain.Row, error) {
	var models []StandingsRow
	err := r.idb(db).NewSelect().
		Model(&models).
		Where("season_id = ?", seasonID).
		Order("points DESC", "player_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list standings for season %s: %w", seasonID, err)
	}

	rows := make([]standingsdomain.Row, 0, len(models))
	for _, m := range models {
		rows = append(rows, standingsdomain.Row{
			SeasonID:      m.SeasonID,
			PlayerID:      m.PlayerID,
			MatchesPlayed: m.MatchesPlayed,
			Points:        m.Points,
			Absences:      m.Absences,
			UpdatedAt:     m.UpdatedAt,
		})
	}
	return rows, nil
}
