package matchservice

import (
	"context"
	"time"

	"github.com/google/uuid"

	handicapservice "github.com/fairway-collective/league-engine/app/modules/handicap/application"
	handicapdomain "github.com/fairway-collective/league-engine/app/modules/handicap/domain"
	matchdomain "github.com/fairway-collective/league-engine/app/modules/match/domain"
)

// Service is the match module's application interface.
type Service interface {
	// ProcessMatch runs the full scoring pipeline for one match: resolve
	// handicaps, synthesize absent rounds, score, persist, ingest
	// differentials, and advance the match-day sequence. Serialized per
	// season; a concurrent submission for the same season gets ErrConflict.
	ProcessMatch(ctx context.Context, input ProcessMatchInput) (*ProcessMatchResult, error)
	// StrokeAllocation previews the per-hole strokes both players would
	// receive if the match were scored now.
	StrokeAllocation(ctx context.Context, matchID uuid.UUID) (*StrokeAllocation, error)

	CreateMatchDay(ctx context.Context, input CreateMatchDayInput) (*matchdomain.MatchDay, error)
	GetMatchDay(ctx context.Context, id uuid.UUID) (*matchdomain.MatchDay, error)
	// DeleteMatchDay removes a match day that has not been scored yet.
	DeleteMatchDay(ctx context.Context, id uuid.UUID) error

	ScheduleMatch(ctx context.Context, input ScheduleMatchInput) (*matchdomain.Match, error)
	// MatchResult returns a processed match with its stored rounds.
	MatchResult(ctx context.Context, matchID uuid.UUID) (*MatchResult, error)
}

// SideSubmission is one side's raw scorecard for processing. Absent sides
// carry no scores; the engine synthesizes a round for them.
type SideSubmission struct {
	HoleScores matchdomain.HoleScores `json:"hole_scores"`
	Absent     bool                   `json:"absent"`
}

// ProcessMatchInput identifies the match and carries both scorecards in the
// match's A/B player order.
type ProcessMatchInput struct {
	MatchID uuid.UUID      `json:"match_id"`
	SideA   SideSubmission `json:"side_a"`
	SideB   SideSubmission `json:"side_b"`
}

// ProcessMatchResult is everything a processed match changed.
type ProcessMatchResult struct {
	Match           matchdomain.Match       `json:"match"`
	Score           matchdomain.MatchScore  `json:"score"`
	HandicapUpdates []handicapdomain.Record `json:"handicap_updates"`
	LockedMatchDays []uuid.UUID             `json:"locked_match_days"`
}

// StrokeAllocation is the preview of strokes for a scheduled match.
type StrokeAllocation struct {
	MatchID   uuid.UUID                `json:"match_id"`
	PlayerAID uuid.UUID                `json:"player_a_id"`
	PlayerBID uuid.UUID                `json:"player_b_id"`
	SideA     handicapservice.Snapshot `json:"side_a"`
	SideB     handicapservice.Snapshot `json:"side_b"`
	StrokesA  matchdomain.HoleScores   `json:"strokes_a"`
	StrokesB  matchdomain.HoleScores   `json:"strokes_b"`
}

// CreateMatchDayInput schedules a date's play on a course.
type CreateMatchDayInput struct {
	SeasonID uuid.UUID `json:"season_id"`
	CourseID uuid.UUID `json:"course_id"`
	PlayDate time.Time `json:"play_date"`
}

// ScheduleMatchInput adds one pairing to a match day.
type ScheduleMatchInput struct {
	MatchDayID uuid.UUID `json:"match_day_id"`
	PlayerAID  uuid.UUID `json:"player_a_id"`
	PlayerBID  uuid.UUID `json:"player_b_id"`
}

// MatchResult is a match with its stored rounds.
type MatchResult struct {
	Match  matchdomain.Match   `json:"match"`
	Rounds []matchdomain.Round `json:"rounds"`
}
