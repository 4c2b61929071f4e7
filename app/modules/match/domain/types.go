// Package matchdomain implements the head-to-head scoring rules: stroke
// allocation, absent-player synthesis, and hole/bonus point awards. All
// functions are pure; persistence lives in the infrastructure layer.
package matchdomain

import (
	"github.com/google/uuid"

	coursedomain "github.com/fairway-collective/league-engine/app/modules/course/domain"
	"github.com/fairway-collective/league-engine/app/shared"
)

// MatchStatus tracks a match's lifecycle. Transitions only move forward;
// re-processing a COMPLETED match is allowed while its match day is unlocked.
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "SCHEDULED"
	MatchStatusCompleted MatchStatus = "COMPLETED"
)

// MatchDayStatus tracks a match day's lifecycle. LOCKED is terminal: a later
// match day has been scored, so these results are frozen to keep downstream
// handicap history reproducible.
type MatchDayStatus string

const (
	MatchDayStatusScheduled MatchDayStatus = "SCHEDULED"
	MatchDayStatusCompleted MatchDayStatus = "COMPLETED"
	MatchDayStatusLocked    MatchDayStatus = "LOCKED"
)

// Point awards, per hole and for the match bonus.
const (
	HoleWinPoints  = 2
	HolePushPoints = 1
	BonusWinPoints  = 4
	BonusPushPoints = 2
	// MaxPointsPerSide = 9 holes won + bonus.
	MaxPointsPerSide = coursedomain.NumHoles*HoleWinPoints + BonusWinPoints
)

// HoleScores is one player's per-hole scores for a 9-hole round.
type HoleScores [coursedomain.NumHoles]int

// Total sums the nine holes.
func (s HoleScores) Total() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// ValidateGross rejects negative hole scores. Zero is allowed only as part of
// synthetic rounds; real gross scores for a played hole are at least 1.
func (s HoleScores) ValidateGross() error {
	for i, v := range s {
		if v < 1 {
			return shared.InvalidInputf("hole %d gross score must be at least 1, got %d", i+1, v)
		}
	}
	return nil
}

// SideInput is one side's raw submission for a match.
type SideInput struct {
	PlayerID   uuid.UUID  `json:"player_id"`
	HoleScores HoleScores `json:"hole_scores"`
	Absent     bool       `json:"absent"`
}

// SideScore is the fully computed result for one side of a match.
type SideScore struct {
	PlayerID        uuid.UUID  `json:"player_id"`
	Absent          bool       `json:"absent"`
	PlayingHandicap int        `json:"playing_handicap"`
	Gross           HoleScores `json:"gross"`
	GrossTotal      int        `json:"gross_total"`
	Strokes         HoleScores `json:"strokes"`
	StrokesTotal    int        `json:"strokes_total"`
	Net             HoleScores `json:"net"`
	NetTotal        int        `json:"net_total"`
	HolePoints      HoleScores `json:"hole_points"`
	HolePointsTotal int        `json:"hole_points_total"`
	BonusPoints     int        `json:"bonus_points"`
	TotalPoints     int        `json:"total_points"`
}

// MatchScore is the computed outcome for both sides of a match.
type MatchScore struct {
	A SideScore `json:"a"`
	B SideScore `json:"b"`
}

// ScoreMatch computes net scores and point awards for a head-to-head match.
// Gross scores must already be resolved (synthetic rounds substituted for
// absent players); playing handicaps must come from the same snapshot used
// for any prior allocation preview.
func ScoreMatch(course coursedomain.Course, a, b SideInput, playingA, playingB int) MatchScore {
	strokesA, strokesB := AllocateStrokes(playingA, playingB, course.HoleDifficulty)

	sideA := SideScore{
		PlayerID:        a.PlayerID,
		Absent:          a.Absent,
		PlayingHandicap: playingA,
		Gross:           a.HoleScores,
		Strokes:         strokesA,
	}
	sideB := SideScore{
		PlayerID:        b.PlayerID,
		Absent:          b.Absent,
		PlayingHandicap: playingB,
		Gross:           b.HoleScores,
		Strokes:         strokesB,
	}

	for i := 0; i < coursedomain.NumHoles; i++ {
		sideA.Net[i] = sideA.Gross[i] - sideA.Strokes[i]
		sideB.Net[i] = sideB.Gross[i] - sideB.Strokes[i]

		switch {
		case sideA.Net[i] < sideB.Net[i]:
			sideA.HolePoints[i] = HoleWinPoints
		case sideB.Net[i] < sideA.Net[i]:
			sideB.HolePoints[i] = HoleWinPoints
		default:
			sideA.HolePoints[i] = HolePushPoints
			sideB.HolePoints[i] = HolePushPoints
		}
	}

	sideA.GrossTotal = sideA.Gross.Total()
	sideB.GrossTotal = sideB.Gross.Total()
	sideA.StrokesTotal = sideA.Strokes.Total()
	sideB.StrokesTotal = sideB.Strokes.Total()
	sideA.NetTotal = sideA.Net.Total()
	sideB.NetTotal = sideB.Net.Total()
	sideA.HolePointsTotal = sideA.HolePoints.Total()
	sideB.HolePointsTotal = sideB.HolePoints.Total()

	sideA.BonusPoints, sideB.BonusPoints = BonusPoints(sideA.NetTotal, sideB.NetTotal)
	sideA.TotalPoints = sideA.HolePointsTotal + sideA.BonusPoints
	sideB.TotalPoints = sideB.HolePointsTotal + sideB.BonusPoints

	return MatchScore{A: sideA, B: sideB}
}

// BonusPoints awards the match bonus on total net score: the lower total
// earns 4, a push splits 2-2.
func BonusPoints(netTotalA, netTotalB int) (int, int) {
	switch {
	case netTotalA < netTotalB:
		return BonusWinPoints, 0
	case netTotalB < netTotalA:
		return 0, BonusWinPoints
	default:
		return BonusPushPoints, BonusPushPoints
	}
}
