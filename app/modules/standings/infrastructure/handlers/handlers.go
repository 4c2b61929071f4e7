// Package standingshandlers consumes league events and keeps the standings
// projection current.
package standingshandlers

import (
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	"github.com/fairway-collective/league-engine/app/events"
	standingsservice "github.com/fairway-collective/league-engine/app/modules/standings/application"
	"github.com/fairway-collective/league-engine/app/observability/attr"
)

// StandingsHandlers wires event consumption to the standings service.
type StandingsHandlers struct {
	service standingsservice.Service
	jobs    *river.Client[pgx.Tx]
	logger  *slog.Logger
}

// NewStandingsHandlers creates a new StandingsHandlers. jobs may be nil when
// the background queue is disabled; exports then only run on demand.
func NewStandingsHandlers(service standingsservice.Service, jobs *river.Client[pgx.Tx], logger *slog.Logger) *StandingsHandlers {
	return &StandingsHandlers{service: service, jobs: jobs, logger: logger}
}

// HandleMatchProcessed rebuilds the season's standings and enqueues a
// workbook export. Rebuilds are idempotent, so redelivery is safe; malformed
// payloads are dropped rather than retried forever.
func (h *StandingsHandlers) HandleMatchProcessed(msg *message.Message) error {
	ctx := msg.Context()

	var payload events.MatchProcessedPayloadV1
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		h.logger.ErrorContext(ctx, "Dropping malformed match.processed payload",
			attr.Error(err),
			attr.String("message_id", msg.UUID),
		)
		return nil
	}

	if _, err := h.service.Rebuild(ctx, payload.SeasonID); err != nil {
		return err
	}

	if h.jobs != nil {
		if _, err := h.jobs.Insert(ctx, standingsservice.ExportStandingsArgs{SeasonID: payload.SeasonID}, nil); err != nil {
			// Export is a convenience artifact; a failed enqueue must not
			// nack the rebuild.
			h.logger.ErrorContext(ctx, "Failed to enqueue standings export",
				attr.Error(err),
				attr.UUID("season_id", payload.SeasonID),
			)
		}
	}
	return nil
}
