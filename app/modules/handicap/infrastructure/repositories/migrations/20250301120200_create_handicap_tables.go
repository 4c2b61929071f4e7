package handicapmigrations

import (
	"context"

	"github.com/uptrace/bun"

	handicapdb "github.com/fairway-collective/league-engine/app/modules/handicap/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*handicapdb.Differential)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateIndex().
			Model((*handicapdb.Differential)(nil)).
			Index("differentials_season_player_match_idx").
			Unique().
			Column("season_id", "player_id", "match_id").
			IfNotExists().
			Exec(ctx); err != nil {
			return err
		}
		_, err := db.NewCreateTable().Model((*handicapdb.HandicapRecord)(nil)).IfNotExists().Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewDropTable().Model((*handicapdb.HandicapRecord)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		_, err := db.NewDropTable().Model((*handicapdb.Differential)(nil)).IfExists().Exec(ctx)
		return err
	})
}
