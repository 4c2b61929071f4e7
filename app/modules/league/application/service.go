// Package leagueservice manages seasons and memberships and answers
// player-facing handicap queries by joining membership data with the
// handicap module.
package leagueservice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	handicapservice "github.com/fairway-collective/league-engine/app/modules/handicap/application"
	handicapdomain "github.com/fairway-collective/league-engine/app/modules/handicap/domain"
	leaguedomain "github.com/fairway-collective/league-engine/app/modules/league/domain"
	leaguedb "github.com/fairway-collective/league-engine/app/modules/league/infrastructure/repositories"
	"github.com/fairway-collective/league-engine/app/observability/attr"
	"github.com/fairway-collective/league-engine/app/shared"
)

// Service is the league module's application interface.
type Service interface {
	CreateSeason(ctx context.Context, input CreateSeasonInput) (*leaguedomain.Season, error)
	AddMembership(ctx context.Context, input AddMembershipInput) (*leaguedomain.Membership, error)
	// PlayerHandicap returns a member's current handicap record for a
	// season. Unknown members get ErrNotFound; members without history get
	// their provisional record.
	PlayerHandicap(ctx context.Context, seasonID, playerID uuid.UUID) (*PlayerHandicap, error)
}

// CreateSeasonInput names a new season and its date range.
type CreateSeasonInput struct {
	LeagueID uuid.UUID `json:"league_id"`
	Name     string    `json:"name"`
	StartsOn time.Time `json:"starts_on"`
	EndsOn   time.Time `json:"ends_on"`
	Active   bool      `json:"active"`
}

// AddMembershipInput registers a player with a league.
type AddMembershipInput struct {
	LeagueID            uuid.UUID `json:"league_id"`
	PlayerID            uuid.UUID `json:"player_id"`
	DisplayName         string    `json:"display_name"`
	ProvisionalHandicap float64   `json:"provisional_handicap"`
}

// PlayerHandicap is the player-facing handicap view: the record plus the
// differential history behind it.
type PlayerHandicap struct {
	Record  handicapdomain.Record              `json:"record"`
	History []handicapdomain.DifferentialEntry `json:"history"`
}

// LeagueService implements Service.
type LeagueService struct {
	repo      leaguedb.Repository
	handicaps handicapservice.Service
	logger    *slog.Logger
	clock     func() time.Time
}

// NewLeagueService creates a new LeagueService.
func NewLeagueService(repo leaguedb.Repository, handicaps handicapservice.Service, logger *slog.Logger) *LeagueService {
	return &LeagueService{
		repo:      repo,
		handicaps: handicaps,
		logger:    logger,
		clock:     time.Now,
	}
}

var _ Service = (*LeagueService)(nil)

// CreateSeason stores a new season.
func (s *LeagueService) CreateSeason(ctx context.Context, input CreateSeasonInput) (*leaguedomain.Season, error) {
	if input.LeagueID == uuid.Nil {
		return nil, shared.InvalidInputf("league ID is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, shared.InvalidInputf("season name is required")
	}
	if !input.EndsOn.IsZero() && input.EndsOn.Before(input.StartsOn) {
		return nil, shared.InvalidInputf("season cannot end before it starts")
	}

	season := leaguedomain.Season{
		ID:       uuid.New(),
		LeagueID: input.LeagueID,
		Name:     strings.TrimSpace(input.Name),
		StartsOn: input.StartsOn,
		EndsOn:   input.EndsOn,
		Active:   input.Active,
	}
	if err := s.repo.CreateSeason(ctx, nil, season); err != nil {
		return nil, fmt.Errorf("failed to create season: %w", err)
	}

	s.logger.InfoContext(ctx, "Season created",
		attr.UUID("season_id", season.ID),
		attr.UUID("league_id", season.LeagueID),
		attr.String("name", season.Name),
	)
	return &season, nil
}

// AddMembership registers a player with a league, recording the starting
// handicap used until real rounds accumulate.
func (s *LeagueService) AddMembership(ctx context.Context, input AddMembershipInput) (*leaguedomain.Membership, error) {
	if input.LeagueID == uuid.Nil || input.PlayerID == uuid.Nil {
		return nil, shared.InvalidInputf("league and player IDs are required")
	}
	if strings.TrimSpace(input.DisplayName) == "" {
		return nil, shared.InvalidInputf("display name is required")
	}

	membership := leaguedomain.Membership{
		ID:                  uuid.New(),
		LeagueID:            input.LeagueID,
		PlayerID:            input.PlayerID,
		DisplayName:         strings.TrimSpace(input.DisplayName),
		ProvisionalHandicap: input.ProvisionalHandicap,
		JoinedAt:            s.clock().UTC(),
	}
	if err := s.repo.CreateMembership(ctx, nil, membership); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}
	return &membership, nil
}

// PlayerHandicap resolves the member's record and history for one season.
func (s *LeagueService) PlayerHandicap(ctx context.Context, seasonID, playerID uuid.UUID) (*PlayerHandicap, error) {
	season, err := s.repo.GetSeason(ctx, nil, seasonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get season: %w", err)
	}
	membership, err := s.repo.GetMembership(ctx, nil, season.LeagueID, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	record, err := s.handicaps.Record(ctx, seasonID, playerID, membership.ProvisionalHandicap)
	if err != nil {
		return nil, fmt.Errorf("failed to get handicap record: %w", err)
	}
	history, err := s.handicaps.History(ctx, seasonID, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get differential history: %w", err)
	}
	return &PlayerHandicap{Record: record, History: history}, nil
}
