package handicapservice

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	handicapdomain "github.com/fairway-collective/league-engine/app/modules/handicap/domain"
	"github.com/fairway-collective/league-engine/app/shared"
)

// fakeHandicapRepo is an in-memory Repository. Function fields override the
// default behavior for failure-path tests.
type fakeHandicapRepo struct {
	differentials []handicapdomain.DifferentialEntry
	records       map[string]handicapdomain.Record

	upsertDifferentialFn func(ctx context.Context, db bun.IDB, entry handicapdomain.DifferentialEntry) error
	listDifferentialsFn  func(ctx context.Context, db bun.IDB, seasonID, playerID uuid.UUID) ([]handicapdomain.DifferentialEntry, error)
	upsertRecordFn       func(ctx context.Context, db bun.IDB, record handicapdomain.Record) error
	getRecordFn          func(ctx context.Context, db bun.IDB, seasonID, playerID uuid.UUID) (*handicapdomain.Record, error)
}

func newFakeHandicapRepo() *fakeHandicapRepo {
	return &fakeHandicapRepo{records: make(map[string]handicapdomain.Record)}
}

func recordKey(seasonID, playerID uuid.UUID) string {
	return seasonID.String() + "/" + playerID.String()
}

func (f *fakeHandicapRepo) UpsertDifferential(ctx context.Context, db bun.IDB, entry handicapdomain.DifferentialEntry) error {
	if f.upsertDifferentialFn != nil {
		return f.upsertDifferentialFn(ctx, db, entry)
	}
	for i, existing := range f.differentials {
		if existing.SeasonID == entry.SeasonID && existing.PlayerID == entry.PlayerID && existing.MatchID == entry.MatchID {
			f.differentials[i].Value = entry.Value
			f.differentials[i].RoundDate = entry.RoundDate
			return nil
		}
	}
	f.differentials = append(f.differentials, entry)
	return nil
}

func (f *fakeHandicapRepo) ListDifferentials(ctx context.Context, db bun.IDB, seasonID, playerID uuid.UUID) ([]handicapdomain.DifferentialEntry, error) {
	if f.listDifferentialsFn != nil {
		return f.listDifferentialsFn(ctx, db, seasonID, playerID)
	}
	var out []handicapdomain.DifferentialEntry
	for _, e := range f.differentials {
		if e.SeasonID == seasonID && e.PlayerID == playerID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RoundDate.Before(out[j].RoundDate)
	})
	return out, nil
}

func (f *fakeHandicapRepo) UpsertRecord(ctx context.Context, db bun.IDB, record handicapdomain.Record) error {
	if f.upsertRecordFn != nil {
		return f.upsertRecordFn(ctx, db, record)
	}
	f.records[recordKey(record.SeasonID, record.PlayerID)] = record
	return nil
}

func (f *fakeHandicapRepo) GetRecord(ctx context.Context, db bun.IDB, seasonID, playerID uuid.UUID) (*handicapdomain.Record, error) {
	if f.getRecordFn != nil {
		return f.getRecordFn(ctx, db, seasonID, playerID)
	}
	record, ok := f.records[recordKey(seasonID, playerID)]
	if !ok {
		return nil, shared.NotFoundf("handicap record for player %s not found", playerID)
	}
	return &record, nil
}
