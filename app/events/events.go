// Package events defines the subjects and payloads the engine publishes on
// the league stream. Payloads are versioned; consumers must tolerate unknown
// fields.
package events

import (
	"time"

	"github.com/google/uuid"

	matchdomain "github.com/fairway-collective/league-engine/app/modules/match/domain"
)

// StreamName is the JetStream stream carrying all league subjects.
const StreamName = "league"

const (
	MatchProcessedSubject  = "league.match.processed"
	HandicapUpdatedSubject = "league.handicap.updated"
	MatchDayLockedSubject  = "league.matchday.locked"
)

// MatchProcessedPayloadV1 is emitted after a match's scores are fully
// processed and persisted. Re-processing emits it again with the replacing
// result; consumers must treat it as a full snapshot, not a delta.
type MatchProcessedPayloadV1 struct {
	SeasonID    uuid.UUID             `json:"season_id"`
	MatchDayID  uuid.UUID             `json:"match_day_id"`
	MatchID     uuid.UUID             `json:"match_id"`
	Score       matchdomain.MatchScore `json:"score"`
	ProcessedAt time.Time             `json:"processed_at"`
}

// HandicapUpdatedPayloadV1 is emitted for each present player whose handicap
// record was recomputed by a processed match.
type HandicapUpdatedPayloadV1 struct {
	SeasonID        uuid.UUID `json:"season_id"`
	PlayerID        uuid.UUID `json:"player_id"`
	Index           float64   `json:"index"`
	CourseHandicap  int       `json:"course_handicap"`
	PlayingHandicap int       `json:"playing_handicap"`
	Provisional     bool      `json:"provisional"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// MatchDayLockedPayloadV1 is emitted for each match day the sequencer locks.
type MatchDayLockedPayloadV1 struct {
	SeasonID   uuid.UUID `json:"season_id"`
	MatchDayID uuid.UUID `json:"match_day_id"`
	LockedAt   time.Time `json:"locked_at"`
}
