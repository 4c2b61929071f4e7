package observability

import (
	"context"
	"net/http"

	"github.com/ThreeDotsLabs/watermill"

	"github.com/fairway-collective/league-engine/app/observability/attr"
)

const correlationIDHeader = "X-Correlation-ID"

// CorrelationMiddleware tags every request context with a correlation ID,
// minting one when the caller did not supply a header.
func CorrelationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(correlationIDHeader)
		if id == "" {
			id = watermill.NewUUID()
		}
		ctx := attr.WithCorrelationID(r.Context(), id)
		w.Header().Set(correlationIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ContextWithCorrelationID is a convenience for message handlers that carry
// the correlation ID in watermill metadata.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return attr.WithCorrelationID(ctx, id)
}
