// Package bundb owns the Postgres connection and hands out the per-module
// repositories bound to it.
package bundb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	coursedb "github.com/fairway-collective/league-engine/app/modules/course/infrastructure/repositories"
	handicapdb "github.com/fairway-collective/league-engine/app/modules/handicap/infrastructure/repositories"
	leaguedb "github.com/fairway-collective/league-engine/app/modules/league/infrastructure/repositories"
	matchdb "github.com/fairway-collective/league-engine/app/modules/match/infrastructure/repositories"
	standingsdb "github.com/fairway-collective/league-engine/app/modules/standings/infrastructure/repositories"
	"github.com/fairway-collective/league-engine/config"
)

// DBService bundles the repositories over one bun.DB pool.
type DBService struct {
	CourseDB    *coursedb.CourseDBImpl
	LeagueDB    *leaguedb.LeagueDBImpl
	HandicapDB  *handicapdb.HandicapDBImpl
	MatchDB     *matchdb.MatchDBImpl
	StandingsDB *standingsdb.StandingsDBImpl
	db          *bun.DB
}

// GetDB returns the underlying connection pool.
func (s *DBService) GetDB() *bun.DB {
	return s.db
}

// Close closes the pool.
func (s *DBService) Close() error {
	return s.db.Close()
}

// NewBunDBService connects to Postgres and wires the repositories.
func NewBunDBService(ctx context.Context, cfg config.PostgresConfig) (*DBService, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := bun.NewDB(sqldb, pgdialect.New())

	db.RegisterModel(
		(*coursedb.Course)(nil),
		(*leaguedb.Season)(nil),
		(*leaguedb.Membership)(nil),
		(*handicapdb.Differential)(nil),
		(*handicapdb.HandicapRecord)(nil),
		(*matchdb.MatchDay)(nil),
		(*matchdb.Match)(nil),
		(*matchdb.Round)(nil),
		(*standingsdb.StandingsRow)(nil),
	)

	return &DBService{
		CourseDB:    &coursedb.CourseDBImpl{DB: db},
		LeagueDB:    &leaguedb.LeagueDBImpl{DB: db},
		HandicapDB:  &handicapdb.HandicapDBImpl{DB: db},
		MatchDB:     &matchdb.MatchDBImpl{DB: db},
		StandingsDB: &standingsdb.StandingsDBImpl{DB: db},
		db:          db,
	}, nil
}
