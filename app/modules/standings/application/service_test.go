package standingsservice

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/xuri/excelize/v2"

	handicapservice "github.com/fairway-collective/league-engine/app/modules/handicap/application"
	handicapdomain "github.com/fairway-collective/league-engine/app/modules/handicap/domain"
	matchdomain "github.com/fairway-collective/league-engine/app/modules/match/domain"
	standingsdomain "github.com/fairway-collective/league-engine/app/modules/standings/domain"
	"github.com/fairway-collective/league-engine/app/observability"
	"github.com/fairway-collective/league-engine/app/shared"
)

type fakeStandingsRepo struct {
	rows map[uuid.UUID][]standingsdomain.Row
}

func newFakeStandingsRepo() *fakeStandingsRepo {
	return &fakeStandingsRepo{rows: make(map[uuid.UUID][]standingsdomain.Row)}
}

func (f *fakeStandingsRepo) ReplaceSeason(_ context.Context, _ bun.IDB, seasonID uuid.UUID, rows []standingsdomain.Row) error {
	f.rows[seasonID] = rows
	return nil
}

func (f *fakeStandingsRepo) ListSeason(_ context.Context, _ bun.IDB, seasonID uuid.UUID) ([]standingsdomain.Row, error) {
	return f.rows[seasonID], nil
}

// fakeMatchReader stubs the match repository; only the season listing is
// exercised here.
type fakeMatchReader struct {
	matches []matchdomain.Match
}

func (f *fakeMatchReader) CreateMatchDay(context.Context, bun.IDB, matchdomain.MatchDay) error {
	return nil
}

func (f *fakeMatchReader) GetMatchDay(_ context.Context, _ bun.IDB, id uuid.UUID) (*matchdomain.MatchDay, error) {
	return nil, shared.NotFoundf("match day %s not found", id)
}

func (f *fakeMatchReader) UpdateMatchDayStatus(context.Context, bun.IDB, uuid.UUID, matchdomain.MatchDayStatus) error {
	return nil
}

func (f *fakeMatchReader) ListCompletedMatchDaysBefore(context.Context, bun.IDB, uuid.UUID, time.Time) ([]matchdomain.MatchDay, error) {
	return nil, nil
}

func (f *fakeMatchReader) DeleteMatchDay(context.Context, bun.IDB, uuid.UUID) error { return nil }

func (f *fakeMatchReader) CreateMatch(context.Context, bun.IDB, matchdomain.Match) error { return nil }

func (f *fakeMatchReader) GetMatch(_ context.Context, _ bun.IDB, id uuid.UUID) (*matchdomain.Match, error) {
	return nil, shared.NotFoundf("match %s not found", id)
}

func (f *fakeMatchReader) SaveMatchResult(context.Context, bun.IDB, matchdomain.Match) error {
	return nil
}

func (f *fakeMatchReader) CountScoredMatches(context.Context, bun.IDB, uuid.UUID) (int, error) {
	return 0, nil
}

func (f *fakeMatchReader) ListCompletedMatchesForSeason(context.Context, bun.IDB, uuid.UUID) ([]matchdomain.Match, error) {
	return f.matches, nil
}

func (f *fakeMatchReader) ReplaceRounds(context.Context, bun.IDB, uuid.UUID, []matchdomain.Round) error {
	return nil
}

func (f *fakeMatchReader) ListRoundsForMatch(context.Context, bun.IDB, uuid.UUID) ([]matchdomain.Round, error) {
	return nil, nil
}

type fakeHandicaps struct {
	entries []handicapdomain.DifferentialEntry
}

func (f *fakeHandicaps) PlayingHandicapFor(context.Context, bun.IDB, uuid.UUID, uuid.UUID, float64, int) (handicapservice.Snapshot, error) {
	return handicapservice.Snapshot{}, nil
}

func (f *fakeHandicaps) IngestDifferential(_ context.Context, _ bun.IDB, entry handicapdomain.DifferentialEntry, _ float64, _ int) (handicapdomain.Record, error) {
	return handicapdomain.Record{}, nil
}

func (f *fakeHandicaps) Record(context.Context, uuid.UUID, uuid.UUID, float64) (handicapdomain.Record, error) {
	return handicapdomain.Record{}, nil
}

func (f *fakeHandicaps) History(context.Context, uuid.UUID, uuid.UUID) ([]handicapdomain.DifferentialEntry, error) {
	return f.entries, nil
}

func newTestService(t *testing.T, repo *fakeStandingsRepo, matches *fakeMatchReader, handicaps *fakeHandicaps) *StandingsService {
	t.Helper()
	if repo == nil {
		repo = newFakeStandingsRepo()
	}
	if matches == nil {
		matches = &fakeMatchReader{}
	}
	if handicaps == nil {
		handicaps = &fakeHandicaps{}
	}
	s := NewStandingsService(
		repo,
		matches,
		handicaps,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NoOpMetrics{},
		t.TempDir(),
	)
	s.clock = func() time.Time { return time.Date(2026, 6, 10, 20, 0, 0, 0, time.UTC) }
	return s
}

func TestRebuild_ProjectsCompletedMatches(t *testing.T) {
	seasonID := uuid.New()
	playerA := uuid.New()
	playerB := uuid.New()
	repo := newFakeStandingsRepo()
	matches := &fakeMatchReader{matches: []matchdomain.Match{
		{
			ID: uuid.New(), PlayerAID: playerA, PlayerBID: playerB,
			Status: matchdomain.MatchStatusCompleted, PointsA: 16, PointsB: 6,
		},
	}}
	svc := newTestService(t, repo, matches, nil)

	rows, err := svc.Rebuild(context.Background(), seasonID)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, playerA, rows[0].PlayerID)
	assert.Equal(t, 16, rows[0].Points)
	assert.Equal(t, rows, repo.rows[seasonID])
}

func TestExportWorkbook(t *testing.T) {
	seasonID := uuid.New()
	playerID := uuid.New()
	repo := newFakeStandingsRepo()
	repo.rows[seasonID] = []standingsdomain.Row{
		{SeasonID: seasonID, PlayerID: playerID, MatchesPlayed: 3, Points: 44, Absences: 1},
	}
	svc := newTestService(t, repo, nil, nil)

	path, err := svc.ExportWorkbook(context.Background(), seasonID)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(standingsSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Rank", header)

	player, err := f.GetCellValue(standingsSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, playerID.String(), player)

	points, err := f.GetCellValue(standingsSheet, "D2")
	require.NoError(t, err)
	assert.Equal(t, "44", points)
}

func TestHandicapTrend_RendersPNG(t *testing.T) {
	seasonID := uuid.New()
	playerID := uuid.New()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	handicaps := &fakeHandicaps{}
	for i, v := range []float64{9.9, 8.2, 7.4} {
		handicaps.entries = append(handicaps.entries, handicapdomain.DifferentialEntry{
			SeasonID:  seasonID,
			PlayerID:  playerID,
			MatchID:   uuid.New(),
			Value:     v,
			RoundDate: base.AddDate(0, 0, i*7),
		})
	}
	svc := newTestService(t, nil, nil, handicaps)

	png, err := svc.HandicapTrend(context.Background(), seasonID, playerID)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestHandicapTrend_NeedsTwoRounds(t *testing.T) {
	svc := newTestService(t, nil, nil, &fakeHandicaps{})

	_, err := svc.HandicapTrend(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.True(t, shared.IsFailedPrecondition(err))
}
