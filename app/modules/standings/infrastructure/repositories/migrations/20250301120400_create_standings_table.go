package standingsmigrations

import (
	"context"

	"github.com/uptrace/bun"

	standingsdb "github.com/fairway-collective/league-engine/app/modules/standings/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewCreateTable().Model((*standingsdb.StandingsRow)(nil)).IfNotExists().Exec(ctx)
		return err
	}, func(ctx context.Context, db *bun.DB) error {
		_, err := db.NewDropTable().Model((*standingsdb.StandingsRow)(nil)).IfExists().Exec(ctx)
		return err
	})
}
