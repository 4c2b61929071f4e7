package matchmigrations

import (
	"context"

	"github.com/uptrace/bun"

	matchdb "github.com/fairway-collective/league-engine/app/modules/match/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*matchdb.MatchDay)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*matchdb.Match)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*matchdb.Round)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model((*matchdb.MatchDay)(nil)).
			Index("match_days_season_date_idx").
			Column("season_id", "play_date").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		_, err := db.NewCreateIndex().
			Model((*matchdb.Round)(nil)).
			Index("rounds_match_player_idx").
			Unique().
			Column("match_id", "player_id").
			IfNotExists().
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewDropTable().Model((*matchdb.Round)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*matchdb.Match)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		_, err := db.NewDropTable().Model((*matchdb.MatchDay)(nil)).IfExists().Exec(ctx)
		return err
	})
}
