// Package attr provides slog attribute helpers shared across services so log
// fields stay consistently named.
package attr

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Float64(key string, value float64) slog.Attr { return slog.Float64(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

func Duration(key string, value time.Duration) slog.Attr { return slog.Duration(key, value) }

func Time(key string, value time.Time) slog.Attr { return slog.Time(key, value) }

func Error(err error) slog.Attr { return slog.Any("error", err) }

func UUID(key string, id uuid.UUID) slog.Attr { return slog.String(key, id.String()) }

type correlationIDKey struct{}

// WithCorrelationID stores a correlation ID on the context for downstream
// log enrichment.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationIDFromContext returns the stored correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// ExtractCorrelationID returns a correlation_id attribute from the context,
// empty-valued when none was set.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	return slog.String("correlation_id", CorrelationIDFromContext(ctx))
}
