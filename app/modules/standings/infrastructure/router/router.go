// Package standingsrouter subscribes the standings handlers to the league
// stream.
package standingsrouter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/fairway-collective/league-engine/app/events"
	standingshandlers "github.com/fairway-collective/league-engine/app/modules/standings/infrastructure/handlers"
)

// NewRouter builds the watermill router consuming match.processed.
func NewRouter(logger *slog.Logger, subscriber message.Subscriber, handlers *standingshandlers.StandingsHandlers) (*message.Router, error) {
	watermillLogger := watermill.NewSlogLogger(logger)

	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	router.AddMiddleware(
		middleware.Recoverer,
		middleware.Retry{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			Logger:          watermillLogger,
		}.Middleware,
	)

	router.AddNoPublisherHandler(
		"standings_on_match_processed",
		events.MatchProcessedSubject,
		subscriber,
		handlers.HandleMatchProcessed,
	)
	return router, nil
}
