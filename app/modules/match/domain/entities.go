package matchdomain

import (
	"time"

	"github.com/google/uuid"
)

// MatchDay groups the matches all league pairings play on one date/course.
// Within a season match days are totally ordered by date; scoring a later
// day locks every earlier completed one.
type MatchDay struct {
	ID       uuid.UUID      `json:"id"`
	SeasonID uuid.UUID      `json:"season_id"`
	CourseID uuid.UUID      `json:"course_id"`
	PlayDate time.Time      `json:"play_date"`
	Status   MatchDayStatus `json:"status"`
}

// Match is one scheduled head-to-head pairing on a match day.
type Match struct {
	ID         uuid.UUID   `json:"id"`
	MatchDayID uuid.UUID   `json:"match_day_id"`
	PlayerAID  uuid.UUID   `json:"player_a_id"`
	PlayerBID  uuid.UUID   `json:"player_b_id"`
	Status     MatchStatus `json:"status"`
	PointsA    int         `json:"points_a"`
	PointsB    int         `json:"points_b"`
	AbsentA    bool        `json:"absent_a"`
	AbsentB    bool        `json:"absent_b"`
}

// Round is one player's stored result for one match: the gross scores plus
// everything derived from them at processing time. Immutable once the
// match day is locked.
type Round struct {
	ID              uuid.UUID  `json:"id"`
	MatchID         uuid.UUID  `json:"match_id"`
	PlayerID        uuid.UUID  `json:"player_id"`
	Absent          bool       `json:"absent"`
	PlayingHandicap int        `json:"playing_handicap"`
	// IndexSnapshot is the handicap index in force when the round was
	// processed, kept so historical results stay explainable.
	IndexSnapshot float64    `json:"index_snapshot"`
	Gross         HoleScores `json:"gross"`
	Strokes       HoleScores `json:"strokes"`
	Net           HoleScores `json:"net"`
	HolePoints    HoleScores `json:"hole_points"`
	GrossTotal    int        `json:"gross_total"`
	StrokesTotal  int        `json:"strokes_total"`
	NetTotal      int        `json:"net_total"`
	BonusPoints   int        `json:"bonus_points"`
	TotalPoints   int        `json:"total_points"`
	// Differential is nil for absent players: synthetic rounds never enter
	// handicap history.
	Differential *float64 `json:"differential"`
}
