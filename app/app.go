// Package app wires configuration, storage, messaging, and the HTTP API into
// a runnable engine.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.opentelemetry.io/otel"

	"github.com/fairway-collective/league-engine/app/eventbus"
	"github.com/fairway-collective/league-engine/app/handlers"
	courseservice "github.com/fairway-collective/league-engine/app/modules/course/application"
	handicapservice "github.com/fairway-collective/league-engine/app/modules/handicap/application"
	leagueservice "github.com/fairway-collective/league-engine/app/modules/league/application"
	matchservice "github.com/fairway-collective/league-engine/app/modules/match/application"
	standingsservice "github.com/fairway-collective/league-engine/app/modules/standings/application"
	standingshandlers "github.com/fairway-collective/league-engine/app/modules/standings/infrastructure/handlers"
	standingsrouter "github.com/fairway-collective/league-engine/app/modules/standings/infrastructure/router"
	"github.com/fairway-collective/league-engine/app/observability"
	"github.com/fairway-collective/league-engine/app/observability/attr"
	"github.com/fairway-collective/league-engine/app/shared"
	"github.com/fairway-collective/league-engine/config"
	"github.com/fairway-collective/league-engine/db/bundb"
)

// App owns the engine's long-lived components.
type App struct {
	Config *config.Config

	logger      *slog.Logger
	db          *bundb.DBService
	pgxPool     *pgxpool.Pool
	eventBus    eventbus.EventBus
	riverClient *river.Client[pgx.Tx]
	msgRouter   *message.Router
	httpServer  *http.Server
}

// Initialize builds every component. Nothing is serving yet when it returns.
func (a *App) Initialize(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	a.Config = cfg
	a.logger = logger

	dbService, err := bundb.NewBunDBService(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("failed to initialize database service: %w", err)
	}
	a.db = dbService

	pool, err := pgxpool.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("failed to create pgx pool: %w", err)
	}
	a.pgxPool = pool

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize event bus: %w", err)
	}
	a.eventBus = bus

	registry := prometheus.NewRegistry()
	metrics := observability.NewEngineMetrics(registry)
	tracer := otel.Tracer("league-engine")
	locks := shared.NewSeasonLocks(cfg.Engine.LockWait)

	handicapSvc := handicapservice.NewHandicapService(dbService.HandicapDB, logger, metrics, tracer)
	courseSvc := courseservice.NewCourseService(dbService.CourseDB, logger, metrics)
	leagueSvc := leagueservice.NewLeagueService(dbService.LeagueDB, handicapSvc, logger)
	matchSvc := matchservice.NewMatchService(
		dbService.MatchDB,
		dbService.CourseDB,
		dbService.LeagueDB,
		handicapSvc,
		bus,
		locks,
		logger,
		metrics,
		tracer,
		dbService.GetDB(),
	)
	standingsSvc := standingsservice.NewStandingsService(
		dbService.StandingsDB,
		dbService.MatchDB,
		handicapSvc,
		logger,
		metrics,
		cfg.Engine.ExportDir,
	)

	workers := river.NewWorkers()
	river.AddWorker(workers, standingsservice.NewExportStandingsWorker(standingsSvc, logger))
	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 5},
		},
		Workers: workers,
	})
	if err != nil {
		return fmt.Errorf("failed to create job client: %w", err)
	}
	a.riverClient = riverClient

	msgRouter, err := standingsrouter.NewRouter(
		logger,
		bus.Subscriber(),
		standingshandlers.NewStandingsHandlers(standingsSvc, riverClient, logger),
	)
	if err != nil {
		return fmt.Errorf("failed to build message router: %w", err)
	}
	a.msgRouter = msgRouter

	h := handlers.NewHandlers(courseSvc, leagueSvc, matchSvc, standingsSvc, riverClient, logger)
	a.httpServer = &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           NewRouter(cfg, h, registry),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

// Run serves until ctx is canceled, then shuts everything down.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	if err := a.riverClient.Start(ctx); err != nil {
		return fmt.Errorf("failed to start job client: %w", err)
	}

	go func() {
		if err := a.msgRouter.Run(ctx); err != nil {
			errCh <- fmt.Errorf("message router stopped: %w", err)
		}
	}()

	go func() {
		a.logger.Info("HTTP API listening", attr.String("address", a.httpServer.Addr))
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server stopped: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("Shutdown requested")
		return a.Close()
	case err := <-errCh:
		closeErr := a.Close()
		if closeErr != nil {
			a.logger.Error("Shutdown after failure was not clean", attr.Error(closeErr))
		}
		return err
	}
}

// Close releases every component in reverse dependency order.
func (a *App) Close() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if a.httpServer != nil {
		record(a.httpServer.Shutdown(shutdownCtx))
	}
	if a.msgRouter != nil {
		record(a.msgRouter.Close())
	}
	if a.riverClient != nil {
		record(a.riverClient.Stop(shutdownCtx))
	}
	if a.eventBus != nil {
		record(a.eventBus.Close())
	}
	if a.pgxPool != nil {
		a.pgxPool.Close()
	}
	if a.db != nil {
		record(a.db.Close())
	}
	return firstErr
}
