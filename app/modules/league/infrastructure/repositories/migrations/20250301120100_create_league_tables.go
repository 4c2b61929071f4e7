package leaguemigrations

import (
	"context"

	"github.com/uptrace/bun"

	leaguedb "github.com/fairway-collective/league-engine/app/modules/league/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewCreateTable().Model((*leaguedb.Season)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*leaguedb.Membership)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		_, err := db.NewCreateIndex().
			Model((*leaguedb.Membership)(nil)).
			Index("memberships_league_player_idx").
			Unique().
			Column("league_id", "player_id").
			IfNotExists().
			Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		if _, err := db.NewDropTable().Model((*leaguedb.Membership)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		_, err := db.NewDropTable().Model((*leaguedb.Season)(nil)).IfExists().Exec(ctx)
		return err
	})
}
