// Package handicapservice maintains per-season handicap state: ingesting
// differentials and answering playing-handicap queries.
package handicapservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	handicapdb "github.com/fairway-collective/league-engine/app/modules/handicap/infrastructure/repositories"
	"github.com/fairway-collective/league-engine/app/observability"
	"github.com/fairway-collective/league-engine/app/observability/attr"
)

// HandicapService implements the Service interface.
type HandicapService struct {
	repo    handicapdb.Repository
	logger  *slog.Logger
	metrics observability.EngineMetrics
	tracer  trace.Tracer
	clock   func() time.Time
}

// NewHandicapService creates a new HandicapService.
func NewHandicapService(
	repo handicapdb.Repository,
	logger *slog.Logger,
	metrics observability.EngineMetrics,
	tracer trace.Tracer,
) *HandicapService {
	return &HandicapService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
		clock:   time.Now,
	}
}

var _ Service = (*HandicapService)(nil)

// withTelemetry wraps an operation in a span, attempt/success/failure counters,
// and panic recovery.
func withTelemetry[T any](ctx context.Context, s *HandicapService, operation string, fn func(ctx context.Context) (T, error)) (result T, err error) {
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
			s.logger.ErrorContext(ctx, "Recovered from panic in handicap operation",
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
