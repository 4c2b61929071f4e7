package leagueservice

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	handicapservice "github.com/fairway-collective/league-engine/app/modules/handicap/application"
	handicapdomain "github.com/fairway-collective/league-engine/app/modules/handicap/domain"
	leaguedomain "github.com/fairway-collective/league-engine/app/modules/league/domain"
	"github.com/fairway-collective/league-engine/app/shared"
)

type fakeLeagueRepo struct {
	seasons     map[uuid.UUID]leaguedomain.Season
	memberships map[string]leaguedomain.Membership
}

func newFakeLeagueRepo() *fakeLeagueRepo {
	return &fakeLeagueRepo{
		seasons:     make(map[uuid.UUID]leaguedomain.Season),
		memberships: make(map[string]leaguedomain.Membership),
	}
}

func key(leagueID, playerID uuid.UUID) string {
	return leagueID.String() + "/" + playerID.String()
}

func (f *fakeLeagueRepo) CreateSeason(_ context.Context, _ bun.IDB, season leaguedomain.Season) error {
	f.seasons[season.ID] = season
	return nil
}

func (f *fakeLeagueRepo) GetSeason(_ context.Context, _ bun.IDB, id uuid.UUID) (*leaguedomain.Season, error) {
	season, ok := f.seasons[id]
	if !ok {
		return nil, shared.NotFoundf("season %s not found", id)
	}
	return &season, nil
}

func (f *fakeLeagueRepo) CreateMembership(_ context.Context, _ bun.IDB, membership leaguedomain.Membership) error {
	f.memberships[key(membership.LeagueID, membership.PlayerID)] = membership
	return nil
}

func (f *fakeLeagueRepo) GetMembership(_ context.Context, _ bun.IDB, leagueID, playerID uuid.UUID) (*leaguedomain.Membership, error) {
	membership, ok := f.memberships[key(leagueID, playerID)]
	if !ok {
		return nil, shared.NotFoundf("player %s is not a member of league %s", playerID, leagueID)
	}
	return &membership, nil
}

type fakeHandicaps struct {
	records map[string]handicapdomain.Record
	history map[string][]handicapdomain.DifferentialEntry
}

func (f *fakeHandicaps) PlayingHandicapFor(_ context.Context, _ bun.IDB, _, _ uuid.UUID, provisional float64, _ int) (handicapservice.Snapshot, error) {
	return handicapservice.Snapshot{Index: provisional, Provisional: true}, nil
}

func (f *fakeHandicaps) IngestDifferential(_ context.Context, _ bun.IDB, entry handicapdomain.DifferentialEntry, _ float64, _ int) (handicapdomain.Record, error) {
	return handicapdomain.Record{SeasonID: entry.SeasonID, PlayerID: entry.PlayerID}, nil
}

func (f *fakeHandicaps) Record(_ context.Context, seasonID, playerID uuid.UUID, provisional float64) (handicapdomain.Record, error) {
	if record, ok := f.records[key(seasonID, playerID)]; ok {
		return record, nil
	}
	return handicapdomain.Record{
		SeasonID:    seasonID,
		PlayerID:    playerID,
		Index:       provisional,
		Provisional: true,
	}, nil
}

func (f *fakeHandicaps) History(_ context.Context, seasonID, playerID uuid.UUID) ([]handicapdomain.DifferentialEntry, error) {
	return f.history[key(seasonID, playerID)], nil
}

func newTestService(repo *fakeLeagueRepo, handicaps *fakeHandicaps) *LeagueService {
	if handicaps == nil {
		handicaps = &fakeHandicaps{}
	}
	s := NewLeagueService(repo, handicaps, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.clock = func() time.Time { return time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestCreateSeason(t *testing.T) {
	repo := newFakeLeagueRepo()
	svc := newTestService(repo, nil)

	season, err := svc.CreateSeason(context.Background(), CreateSeasonInput{
		LeagueID: uuid.New(),
		Name:     "  Summer 2026  ",
		StartsOn: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EndsOn:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Active:   true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Summer 2026", season.Name)
	assert.True(t, season.Active)
	_, ok := repo.seasons[season.ID]
	assert.True(t, ok)
}

func TestCreateSeason_Validation(t *testing.T) {
	svc := newTestService(newFakeLeagueRepo(), nil)

	tests := []struct {
		name  string
		input CreateSeasonInput
	}{
		{"missing league", CreateSeasonInput{Name: "Summer"}},
		{"blank name", CreateSeasonInput{LeagueID: uuid.New(), Name: "   "}},
		{
			"ends before it starts",
			CreateSeasonInput{
				LeagueID: uuid.New(),
				Name:     "Summer",
				StartsOn: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
				EndsOn:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateSeason(context.Background(), tt.input)
			require.Error(t, err)
			assert.True(t, shared.IsInvalidInput(err))
		})
	}
}

func TestAddMembership(t *testing.T) {
	repo := newFakeLeagueRepo()
	svc := newTestService(repo, nil)
	leagueID := uuid.New()
	playerID := uuid.New()

	membership, err := svc.AddMembership(context.Background(), AddMembershipInput{
		LeagueID:            leagueID,
		PlayerID:            playerID,
		DisplayName:         gofakeit.Name(),
		ProvisionalHandicap: 12.5,
	})
	require.NoError(t, err)

	assert.Equal(t, 12.5, membership.ProvisionalHandicap)
	assert.Equal(t, time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC), membership.JoinedAt)
	_, ok := repo.memberships[key(leagueID, playerID)]
	assert.True(t, ok)
}

func TestPlayerHandicap_NonMemberNotFound(t *testing.T) {
	repo := newFakeLeagueRepo()
	seasonID := uuid.New()
	repo.seasons[seasonID] = leaguedomain.Season{ID: seasonID, LeagueID: uuid.New(), Active: true}
	svc := newTestService(repo, nil)

	_, err := svc.PlayerHandicap(context.Background(), seasonID, uuid.New())
	require.Error(t, err)
	assert.True(t, shared.IsNotFound(err))
}

func TestPlayerHandicap_FallsBackToProvisional(t *testing.T) {
	repo := newFakeLeagueRepo()
	leagueID := uuid.New()
	seasonID := uuid.New()
	playerID := uuid.New()
	repo.seasons[seasonID] = leaguedomain.Season{ID: seasonID, LeagueID: leagueID, Active: true}
	repo.memberships[key(leagueID, playerID)] = leaguedomain.Membership{
		LeagueID:            leagueID,
		PlayerID:            playerID,
		ProvisionalHandicap: 18.0,
	}
	svc := newTestService(repo, &fakeHandicaps{})

	handicap, err := svc.PlayerHandicap(context.Background(), seasonID, playerID)
	require.NoError(t, err)

	assert.True(t, handicap.Record.Provisional)
	assert.Equal(t, 18.0, handicap.Record.Index)
	assert.Empty(t, handicap.History)
}
