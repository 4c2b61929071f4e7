package standingsservice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/riverqueue/river"

	"github.com/fairway-collective/league-engine/app/observability/attr"
)

// ExportStandingsArgs asks the background queue to export a season's
// standings workbook.
type ExportStandingsArgs struct {
	SeasonID uuid.UUID `json:"season_id"`
}

func (ExportStandingsArgs) Kind() string { return "standings.export" }

// ExportStandingsWorker runs workbook exports off the request path.
type ExportStandingsWorker struct {
	river.WorkerDefaults[ExportStandingsArgs]

	service Service
	logger  *slog.Logger
}

// NewExportStandingsWorker creates a new ExportStandingsWorker.
func NewExportStandingsWorker(service Service, logger *slog.Logger) *ExportStandingsWorker {
	return &ExportStandingsWorker{service: service, logger: logger}
}

func (w *ExportStandingsWorker) Work(ctx context.Context, job *river.Job[ExportStandingsArgs]) error {
	path, err := w.service.ExportWorkbook(ctx, job.Args.SeasonID)
	if err != nil {
		return fmt.Errorf("failed to export standings for season %s: %w", job.Args.SeasonID, err)
	}

	w.logger.InfoContext(ctx, "Standings export job finished",
		attr.UUID("season_id", job.Args.SeasonID),
		attr.String("path", path),
	)
	return nil
}
