// Package handicapdomain implements the numeric handicap rules: differential
// calculation, the rolling index, and the derived course/playing handicaps.
// Everything here is a pure function.
package handicapdomain

import (
	"math"

	"github.com/fairway-collective/league-engine/app/shared"
)

// BaselineSlope is the nominal slope rating a course of standard difficulty
// carries. Differentials and course handicaps are normalized against it.
const BaselineSlope = 113

// roundHalfUp rounds to the nearest integer, halves away from the floor.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// roundHalfUp1 rounds to one decimal place, half-up.
func roundHalfUp1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

// Differential converts one completed round's gross score into a handicap
// differential, rounded to one decimal place:
//
//	(113 / slope) * (gross - rating)
func Differential(grossScore int, courseRating float64, slopeRating int) (float64, error) {
	if grossScore < 0 {
		return 0, shared.InvalidInputf("gross score must be non-negative, got %d", grossScore)
	}
	if slopeRating <= 0 {
		return 0, shared.InvalidInputf("slope rating must be positive, got %d", slopeRating)
	}

	raw := (BaselineSlope / float64(slopeRating)) * (float64(grossScore) - courseRating)
	return roundHalfUp1(raw), nil
}

// CourseHandicap translates a handicap index into whole strokes for a course
// of the given slope, rounded half-up.
func CourseHandicap(index float64, slopeRating int) int {
	return roundHalfUp(index * float64(slopeRating) / BaselineSlope)
}

// PlayingHandicap is the handicap actually used for stroke allocation. The
// league applies no additional allowance on top of the course handicap.
func PlayingHandicap(index float64, slopeRating int) int {
	return CourseHandicap(index, slopeRating)
}
