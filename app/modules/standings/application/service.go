// Package standingsservice maintains the season standings projection and its
// export artifacts: the standings workbook and per-player handicap trend
// charts.
package standingsservice

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/xuri/excelize/v2"

	handicapservice "github.com/fairway-collective/league-engine/app/modules/handicap/application"
	matchdb "github.com/fairway-collective/league-engine/app/modules/match/infrastructure/repositories"
	standingsdomain "github.com/fairway-collective/league-engine/app/modules/standings/domain"
	standingsdb "github.com/fairway-collective/league-engine/app/modules/standings/infrastructure/repositories"
	"github.com/fairway-collective/league-engine/app/observability"
	"github.com/fairway-collective/league-engine/app/observability/attr"
	"github.com/fairway-collective/league-engine/app/shared"
)

const standingsSheet = "Standings"

// Service is the standings module's application interface.
type Service interface {
	// Rebuild re-projects the season's standings from its completed matches.
	Rebuild(ctx context.Context, seasonID uuid.UUID) ([]standingsdomain.Row, error)
	Standings(ctx context.Context, seasonID uuid.UUID) ([]standingsdomain.Row, error)
	// ExportWorkbook writes the season standings to an xlsx file under the
	// configured export directory and returns its path.
	ExportWorkbook(ctx context.Context, seasonID uuid.UUID) (string, error)
	// HandicapTrend renders a player's differential history as a PNG chart.
	HandicapTrend(ctx context.Context, seasonID, playerID uuid.UUID) ([]byte, error)
}

// StandingsService implements Service.
type StandingsService struct {
	repo      standingsdb.Repository
	matchRepo matchdb.Repository
	handicaps handicapservice.Service
	logger    *slog.Logger
	metrics   observability.EngineMetrics
	exportDir string
	clock     func() time.Time
}

// NewStandingsService creates a new StandingsService.
func NewStandingsService(
	repo standingsdb.Repository,
	matchRepo matchdb.Repository,
	handicaps handicapservice.Service,
	logger *slog.Logger,
	metrics observability.EngineMetrics,
	exportDir string,
) *StandingsService {
	return &StandingsService{
		repo:      repo,
		matchRepo: matchRepo,
		handicaps: handicaps,
		logger:    logger,
		metrics:   metrics,
		exportDir: exportDir,
		clock:     time.Now,
	}
}

var _ Service = (*StandingsService)(nil)

// Rebuild replaces the season's standings with a projection of its completed
// matches. Idempotent, so redelivered match.processed events are harmless.
func (s *StandingsService) Rebuild(ctx context.Context, seasonID uuid.UUID) ([]standingsdomain.Row, error) {
	s.metrics.RecordOperationAttempt(ctx, "standings.rebuild")

	matches, err := s.matchRepo.ListCompletedMatchesForSeason(ctx, nil, seasonID)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, "standings.rebuild")
		return nil, fmt.Errorf("failed to list completed matches: %w", err)
	}

	rows := standingsdomain.BuildRows(seasonID, matches, s.clock().UTC())
	if err := s.repo.ReplaceSeason(ctx, nil, seasonID, rows); err != nil {
		s.metrics.RecordOperationFailure(ctx, "standings.rebuild")
		return nil, fmt.Errorf("failed to replace standings: %w", err)
	}

	s.metrics.RecordOperationSuccess(ctx, "standings.rebuild")
	s.logger.InfoContext(ctx, "Standings rebuilt",
		attr.UUID("season_id", seasonID),
		attr.Int("players", len(rows)),
	)
	return rows, nil
}

// Standings returns the stored projection, best first.
func (s *StandingsService) Standings(ctx context.Context, seasonID uuid.UUID) ([]standingsdomain.Row, error) {
	rows, err := s.repo.ListSeason(ctx, nil, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to list standings: %w", err)
	}
	return rows, nil
}

// ExportWorkbook writes the season's standings as an xlsx workbook.
func (s *StandingsService) ExportWorkbook(ctx context.Context, seasonID uuid.UUID) (string, error) {
	rows, err := s.repo.ListSeason(ctx, nil, seasonID)
	if err != nil {
		return "", fmt.Errorf("failed to list standings: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", standingsSheet); err != nil {
		return "", fmt.Errorf("failed to name standings sheet: %w", err)
	}
	headers := []string{"Rank", "Player", "Matches", "Points", "Absences"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return "", fmt.Errorf("failed to compute header cell: %w", err)
		}
		if err := f.SetCellValue(standingsSheet, cell, h); err != nil {
			return "", fmt.Errorf("failed to write header %q: %w", h, err)
		}
	}
	for i, row := range rows {
		values := []any{i + 1, row.PlayerID.String(), row.MatchesPlayed, row.Points, row.Absences}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return "", fmt.Errorf("failed to compute cell: %w", err)
			}
			if err := f.SetCellValue(standingsSheet, cell, v); err != nil {
				return "", fmt.Errorf("failed to write standings row: %w", err)
			}
		}
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(s.exportDir, fmt.Sprintf("standings-%s-%s.xlsx", seasonID, s.clock().UTC().Format("20060102T150405Z")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}

	s.logger.InfoContext(ctx, "Standings workbook exported",
		attr.UUID("season_id", seasonID),
		attr.String("path", path),
	)
	return path, nil
}

// HandicapTrend renders the player's differential history over time. Needs at
// least two rounds to draw a line.
func (s *StandingsService) HandicapTrend(ctx context.Context, seasonID, playerID uuid.UUID) ([]byte, error) {
	entries, err := s.handicaps.History(ctx, seasonID, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get differential history: %w", err)
	}
	if len(entries) < 2 {
		return nil, shared.FailedPreconditionf("player %s has %d rounds; at least 2 are needed to chart a trend", playerID, len(entries))
	}

	xs := make([]time.Time, len(entries))
	ys := make([]float64, len(entries))
	for i, e := range entries {
		xs[i] = e.RoundDate
		ys[i] = e.Value
	}

	graph := chart.Chart{
		Title: "Handicap differential trend",
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Differential",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render trend chart: %w", err)
	}
	return buf.Bytes(), nil
}
