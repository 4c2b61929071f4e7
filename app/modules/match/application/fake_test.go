package matchservice

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	coursedomain "github.com/fairway-collective/league-engine/app/modules/course/domain"
	handicapservice "github.com/fairway-collective/league-engine/app/modules/handicap/application"
	handicapdomain "github.com/fairway-collective/league-engine/app/modules/handicap/domain"
	leaguedomain "github.com/fairway-collective/league-engine/app/modules/league/domain"
	matchdomain "github.com/fairway-collective/league-engine/app/modules/match/domain"
	"github.com/fairway-collective/league-engine/app/observability"
	"github.com/fairway-collective/league-engine/app/shared"
)

// fakeMatchRepo is an in-memory match Repository.
type fakeMatchRepo struct {
	days    map[uuid.UUID]matchdomain.MatchDay
	matches map[uuid.UUID]matchdomain.Match
	rounds  map[uuid.UUID][]matchdomain.Round

	saveMatchResultFn func(ctx context.Context, db bun.IDB, match matchdomain.Match) error
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{
		days:    make(map[uuid.UUID]matchdomain.MatchDay),
		matches: make(map[uuid.UUID]matchdomain.Match),
		rounds:  make(map[uuid.UUID][]matchdomain.Round),
	}
}

func (f *fakeMatchRepo) CreateMatchDay(_ context.Context, _ bun.IDB, day matchdomain.MatchDay) error {
	f.days[day.ID] = day
	return nil
}

func (f *fakeMatchRepo) GetMatchDay(_ context.Context, _ bun.IDB, id uuid.UUID) (*matchdomain.MatchDay, error) {
	day, ok := f.days[id]
	if !ok {
		return nil, shared.NotFoundf("match day %s not found", id)
	}
	return &day, nil
}

func (f *fakeMatchRepo) UpdateMatchDayStatus(_ context.Context, _ bun.IDB, id uuid.UUID, status matchdomain.MatchDayStatus) error {
	day, ok := f.days[id]
	if !ok {
		return shared.NotFoundf("match day %s not found", id)
	}
	day.Status = status
	f.days[id] = day
	return nil
}

func (f *fakeMatchRepo) ListCompletedMatchDaysBefore(_ context.Context, _ bun.IDB, seasonID uuid.UUID, before time.Time) ([]matchdomain.MatchDay, error) {
	var out []matchdomain.MatchDay
	for _, day := range f.days {
		if day.SeasonID == seasonID && day.Status == matchdomain.MatchDayStatusCompleted && day.PlayDate.Before(before) {
			out = append(out, day)
		}
	}
	return out, nil
}

func (f *fakeMatchRepo) DeleteMatchDay(_ context.Context, _ bun.IDB, id uuid.UUID) error {
	delete(f.days, id)
	return nil
}

func (f *fakeMatchRepo) CreateMatch(_ context.Context, _ bun.IDB, match matchdomain.Match) error {
	f.matches[match.ID] = match
	return nil
}

func (f *fakeMatchRepo) GetMatch(_ context.Context, _ bun.IDB, id uuid.UUID) (*matchdomain.Match, error) {
	match, ok := f.matches[id]
	if !ok {
		return nil, shared.NotFoundf("match %s not found", id)
	}
	return &match, nil
}

func (f *fakeMatchRepo) SaveMatchResult(ctx context.Context, db bun.IDB, match matchdomain.Match) error {
	if f.saveMatchResultFn != nil {
		return f.saveMatchResultFn(ctx, db, match)
	}
	f.matches[match.ID] = match
	return nil
}

func (f *fakeMatchRepo) CountScoredMatches(_ context.Context, _ bun.IDB, matchDayID uuid.UUID) (int, error) {
	count := 0
	for _, m := range f.matches {
		if m.MatchDayID == matchDayID && m.Status == matchdomain.MatchStatusCompleted {
			count++
		}
	}
	return count, nil
}

func (f *fakeMatchRepo) ListCompletedMatchesForSeason(_ context.Context, _ bun.IDB, seasonID uuid.UUID) ([]matchdomain.Match, error) {
	var out []matchdomain.Match
	for _, m := range f.matches {
		day, ok := f.days[m.MatchDayID]
		if ok && day.SeasonID == seasonID && m.Status == matchdomain.MatchStatusCompleted {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMatchRepo) ReplaceRounds(_ context.Context, _ bun.IDB, matchID uuid.UUID, rounds []matchdomain.Round) error {
	f.rounds[matchID] = rounds
	return nil
}

func (f *fakeMatchRepo) ListRoundsForMatch(_ context.Context, _ bun.IDB, matchID uuid.UUID) ([]matchdomain.Round, error) {
	return f.rounds[matchID], nil
}

// fakeCourseRepo is an in-memory course Repository.
type fakeCourseRepo struct {
	courses map[uuid.UUID]coursedomain.Course
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{courses: make(map[uuid.UUID]coursedomain.Course)}
}

func (f *fakeCourseRepo) Create(_ context.Context, _ bun.IDB, course coursedomain.Course) error {
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseRepo) Get(_ context.Context, _ bun.IDB, id uuid.UUID) (*coursedomain.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, shared.NotFoundf("course %s not found", id)
	}
	return &course, nil
}

func (f *fakeCourseRepo) List(_ context.Context, _ bun.IDB) ([]coursedomain.Course, error) {
	var out []coursedomain.Course
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

// fakeLeagueRepo is an in-memory league Repository.
type fakeLeagueRepo struct {
	seasons     map[uuid.UUID]leaguedomain.Season
	memberships map[string]leaguedomain.Membership

	getMembershipFn func(ctx context.Context, db bun.IDB, leagueID, playerID uuid.UUID) (*leaguedomain.Membership, error)
}

func newFakeLeagueRepo() *fakeLeagueRepo {
	return &fakeLeagueRepo{
		seasons:     make(map[uuid.UUID]leaguedomain.Season),
		memberships: make(map[string]leaguedomain.Membership),
	}
}

func membershipKey(leagueID, playerID uuid.UUID) string {
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
	f.memberships[membershipKey(membership.LeagueID, membership.PlayerID)] = membership
	return nil
}

func (f *fakeLeagueRepo) GetMembership(ctx context.Context, db bun.IDB, leagueID, playerID uuid.UUID) (*leaguedomain.Membership, error) {
	if f.getMembershipFn != nil {
		return f.getMembershipFn(ctx, db, leagueID, playerID)
	}
	membership, ok := f.memberships[membershipKey(leagueID, playerID)]
	if !ok {
		return nil, shared.NotFoundf("player %s is not a member of league %s", playerID, leagueID)
	}
	return &membership, nil
}

// fakeHandicaps implements the handicap Service against an in-memory history,
// reusing the real domain math so snapshots evolve the way production would.
type fakeHandicaps struct {
	entries []handicapdomain.DifferentialEntry
}

func (f *fakeHandicaps) history(seasonID, playerID uuid.UUID) []float64 {
	var out []float64
	for _, e := range f.entries {
		if e.SeasonID == seasonID && e.PlayerID == playerID {
			out = append(out, e.Value)
		}
	}
	return out
}

func (f *fakeHandicaps) PlayingHandicapFor(_ context.Context, _ bun.IDB, seasonID, playerID uuid.UUID, provisional float64, slopeRating int) (handicapservice.Snapshot, error) {
	values := f.history(seasonID, playerID)
	index := handicapdomain.Index(values, provisional)
	return handicapservice.Snapshot{
		Index:           index,
		CourseHandicap:  handicapdomain.CourseHandicap(index, slopeRating),
		PlayingHandicap: handicapdomain.PlayingHandicap(index, slopeRating),
		Provisional:     len(values) == 0,
	}, nil
}

func (f *fakeHandicaps) IngestDifferential(_ context.Context, _ bun.IDB, entry handicapdomain.DifferentialEntry, provisional float64, slopeRating int) (handicapdomain.Record, error) {
	replaced := false
	for i, existing := range f.entries {
		if existing.SeasonID == entry.SeasonID && existing.PlayerID == entry.PlayerID && existing.MatchID == entry.MatchID {
			f.entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		f.entries = append(f.entries, entry)
	}

	values := f.history(entry.SeasonID, entry.PlayerID)
	index := handicapdomain.Index(values, provisional)
	return handicapdomain.Record{
		SeasonID:        entry.SeasonID,
		PlayerID:        entry.PlayerID,
		Index:           index,
		CourseHandicap:  handicapdomain.CourseHandicap(index, slopeRating),
		PlayingHandicap: handicapdomain.PlayingHandicap(index, slopeRating),
	}, nil
}

func (f *fakeHandicaps) Record(_ context.Context, seasonID, playerID uuid.UUID, provisional float64) (handicapdomain.Record, error) {
	index := handicapdomain.Index(f.history(seasonID, playerID), provisional)
	return handicapdomain.Record{SeasonID: seasonID, PlayerID: playerID, Index: index}, nil
}

func (f *fakeHandicaps) History(_ context.Context, seasonID, playerID uuid.UUID) ([]handicapdomain.DifferentialEntry, error) {
	var out []handicapdomain.DifferentialEntry
	for _, e := range f.entries {
		if e.SeasonID == seasonID && e.PlayerID == playerID {
			out = append(out, e)
		}
	}
	return out, nil
}

// fakeEventBus records publishes.
type fakeEventBus struct {
	published []publishedEvent
}

type publishedEvent struct {
	subject string
	payload any
}

func (f *fakeEventBus) Publish(_ context.Context, subject string, payload any) error {
	f.published = append(f.published, publishedEvent{subject: subject, payload: payload})
	return nil
}

func (f *fakeEventBus) Subscriber() message.Subscriber { return nil }

func (f *fakeEventBus) Close() error { return nil }

func (f *fakeEventBus) subjects() []string {
	out := make([]string, len(f.published))
	for i, e := range f.published {
		out[i] = e.subject
	}
	return out
}

// fixture bundles a service wired to fakes plus the IDs of a ready-to-score
// match: an active season, two members, a course, a scheduled day and match.
type fixture struct {
	svc      *MatchService
	matches  *fakeMatchRepo
	courses  *fakeCourseRepo
	league   *fakeLeagueRepo
	handicap *fakeHandicaps
	bus      *fakeEventBus

	leagueID uuid.UUID
	seasonID uuid.UUID
	courseID uuid.UUID
	dayID    uuid.UUID
	matchID  uuid.UUID
	playerA  uuid.UUID
	playerB  uuid.UUID
}

func testCourse(id uuid.UUID) coursedomain.Course {
	return coursedomain.Course{
		ID:             id,
		Name:           "Willow Creek",
		Par:            36,
		CourseRating:   34.5,
		SlopeRating:    120,
		HolePars:       [coursedomain.NumHoles]int{4, 4, 3, 4, 5, 3, 4, 4, 5},
		HoleDifficulty: [coursedomain.NumHoles]int{3, 7, 1, 9, 5, 2, 8, 4, 6},
	}
}

func newFixture(lockWait time.Duration) *fixture {
	f := &fixture{
		matches:  newFakeMatchRepo(),
		courses:  newFakeCourseRepo(),
		league:   newFakeLeagueRepo(),
		handicap: &fakeHandicaps{},
		bus:      &fakeEventBus{},
		leagueID: uuid.New(),
		seasonID: uuid.New(),
		courseID: uuid.New(),
		dayID:    uuid.New(),
		matchID:  uuid.New(),
		playerA:  uuid.New(),
		playerB:  uuid.New(),
	}

	f.league.seasons[f.seasonID] = leaguedomain.Season{
		ID:       f.seasonID,
		LeagueID: f.leagueID,
		Name:     "Summer 2026",
		Active:   true,
	}
	f.league.memberships[membershipKey(f.leagueID, f.playerA)] = leaguedomain.Membership{
		LeagueID:            f.leagueID,
		PlayerID:            f.playerA,
		ProvisionalHandicap: 10.0,
	}
	f.league.memberships[membershipKey(f.leagueID, f.playerB)] = leaguedomain.Membership{
		LeagueID:            f.leagueID,
		PlayerID:            f.playerB,
		ProvisionalHandicap: 4.0,
	}
	f.courses.courses[f.courseID] = testCourse(f.courseID)
	f.matches.days[f.dayID] = matchdomain.MatchDay{
		ID:       f.dayID,
		SeasonID: f.seasonID,
		CourseID: f.courseID,
		PlayDate: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		Status:   matchdomain.MatchDayStatusScheduled,
	}
	f.matches.matches[f.matchID] = matchdomain.Match{
		ID:         f.matchID,
		MatchDayID: f.dayID,
		PlayerAID:  f.playerA,
		PlayerBID:  f.playerB,
		Status:     matchdomain.MatchStatusScheduled,
	}

	f.svc = NewMatchService(
		f.matches,
		f.courses,
		f.league,
		f.handicap,
		f.bus,
		shared.NewSeasonLocks(lockWait),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		observability.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
		nil,
	)
	f.svc.clock = func() time.Time { return time.Date(2026, 6, 10, 20, 0, 0, 0, time.UTC) }
	return f
}
