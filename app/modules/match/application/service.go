// Package matchservice orchestrates score processing: handicap resolution,
// absence synthesis, scoring, persistence, and match-day sequencing run as
// one pipeline under the season's processing slot.
package matchservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fairway-collective/league-engine/app/eventbus"
	coursedb "github.com/fairway-collective/league-engine/app/modules/course/infrastructure/repositories"
	handicapservice "github.com/fairway-collective/league-engine/app/modules/handicap/application"
	leaguedb "github.com/fairway-collective/league-engine/app/modules/league/infrastructure/repositories"
	matchdb "github.com/fairway-collective/league-engine/app/modules/match/infrastructure/repositories"
	"github.com/fairway-collective/league-engine/app/observability"
	"github.com/fairway-collective/league-engine/app/observability/attr"
	"github.com/fairway-collective/league-engine/app/shared"
)

// MatchService implements the Service interface.
type MatchService struct {
	matchRepo  matchdb.Repository
	courseRepo coursedb.Repository
	leagueRepo leaguedb.Repository
	handicaps  handicapservice.Service
	eventBus   eventbus.EventBus
	locks      *shared.SeasonLocks
	logger     *slog.Logger
	metrics    observability.EngineMetrics
	tracer     trace.Tracer
	db         *bun.DB
	clock      func() time.Time
}

// NewMatchService creates a new MatchService.
func NewMatchService(
	matchRepo matchdb.Repository,
	courseRepo coursedb.Repository,
	leagueRepo leaguedb.Repository,
	handicaps handicapservice.Service,
	eventBus eventbus.EventBus,
	locks *shared.SeasonLocks,
	logger *slog.Logger,
	metrics observability.EngineMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		courseRepo: courseRepo,
		leagueRepo: leagueRepo,
		handicaps:  handicaps,
		eventBus:   eventBus,
		locks:      locks,
		logger:     logger,
		metrics:    metrics,
		tracer:     tracer,
		db:         db,
		clock:      time.Now,
	}
}

var _ Service = (*MatchService)(nil)

// runInTx executes fn inside a database transaction. With no pool configured
// (unit tests against fakes) fn runs directly.
func (s *MatchService) runInTx(ctx context.Context, fn func(ctx context.Context, db bun.IDB) error) error {
	if s.db == nil {
		return fn(ctx, nil)
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, tx)
	})
}

// withTelemetry wraps an operation in a span, attempt/success/failure counters,
// and panic recovery.
func withTelemetry[T any](ctx context.Context, s *MatchService, operation string, fn func(ctx context.Context) (T, error)) (result T, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	ctx, span := s.tracer.Start(ctx, operation, trace.WithAttributes(
		attribute.String("operation", operation),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operation)

	defer func() {
		s.metrics.RecordOperationDuration(ctx, operation, time.Since(start))
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operation, r)
			s.logger.ErrorContext(ctx, "Recovered from panic in match operation",
				attr.String("operation", operation),
				attr.Any("panic", r),
			)
			s.metrics.RecordOperationFailure(ctx, operation)
			span.RecordError(err)
			return
		}
		if err != nil {
			s.metrics.RecordOperationFailure(ctx, operation)
			span.RecordError(err)
			return
		}
		s.metrics.RecordOperationSuccess(ctx, operation)
	}()

	result, err = fn(ctx)
	return result, err
}
