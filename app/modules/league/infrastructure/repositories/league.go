package leaguedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	leaguedomain "github.com/fairway-collective/league-engine/app/modules/league/domain"
	"github.com/fairway-collective/league-engine/app/shared"
)

// LeagueDBImpl implements Repository on top of bun.
type LeagueDBImpl struct {
	DB *bun.DB
}

var _ Repository = (*LeagueDBImpl)(nil)

func (r *LeagueDBImpl) idb(db bun.IDB) bun.IDB {
	if db != nil {
		return db
	}
	return r.DB
}

func (r *LeagueDBImpl) CreateSeason(ctx context.Context, db bun.IDB, season leaguedomain.Season) error {
	model := &Season{
		ID:       season.ID,
		LeagueID: season.LeagueID,
		Name:     season.Name,
		StartsOn: season.StartsOn,
		EndsOn:   season.EndsOn,
		Active:   season.Active,
	}
	if _, err := r.idb(db).NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert season %s: %w", season.ID, err)
	}
	return nil
}

func (r *LeagueDBImpl) GetSeason(ctx context.Context, db bun.IDB, id uuid.UUID) (*leaguedomain.Season, error) {
	var season Season
	err := r.idb(db).NewSelect().Model(&season).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NotFoundf("season %s", id)
		}
		return nil, fmt.Errorf("failed to fetch season %s: %w", id, err)
	}
	return seasonToDomain(&season), nil
}

func (r *LeagueDBImpl) CreateMembership(ctx context.Context, db bun.IDB, membership leaguedomain.Membership) error {
	model := &Membership{
		ID:                  membership.ID,
		LeagueID:            membership.LeagueID,
		PlayerID:            membership.PlayerID,
		DisplayName:         membership.DisplayName,
		ProvisionalHandicap: membership.ProvisionalHandicap,
		JoinedAt:            membership.JoinedAt,
	}
	if _, err := r.idb(db).NewInsert().Model(model).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert membership for player %s: %w", membership.PlayerID, err)
	}
	return nil
}

func (r *LeagueDBImpl) GetMembership(ctx context.Context, db bun.IDB, leagueID, playerID uuid.UUID) (*leaguedomain.Membership, error) {
	var membership Membership
	err := r.idb(db).NewSelect().
		Model(&membership).
		Where("league_id = ?", leagueID).
		Where("player_id = ?", playerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.NotFoundf("player %s has no membership in league %s", playerID, leagueID)
		}
		return nil, fmt.Errorf("failed to fetch membership for player %s: %w", playerID, err)
	}
	return membershipToDomain(&membership), nil
}
