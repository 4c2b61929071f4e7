// Package coursedomain holds the static course catalog types. Courses are
// immutable once created: historical stroke allocations reference their
// difficulty ranking, so edits would silently invalidate old results.
package coursedomain

import (
	"time"

	"github.com/google/uuid"

	"github.com/fairway-collective/league-engine/app/shared"
)

// NumHoles is the league's round length. All score arrays are this long.
const NumHoles = 9

// Course describes one 9-hole course.
type Course struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Par          int       `json:"par"`
	CourseRating float64   `json:"course_rating"`
	SlopeRating  int       `json:"slope_rating"`
	// HolePars holds par per hole; their sum must equal Par.
	HolePars [NumHoles]int `json:"hole_pars"`
	// HoleDifficulty is a permutation of 1..9, 1 marking the hardest hole.
	HoleDifficulty [NumHoles]int `json:"hole_difficulty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// Validate checks the catalog invariants. Called once at course creation;
// every later consumer may assume a valid course.
func (c Course) Validate() error {
	if c.Name == "" {
		return shared.InvalidInputf("course name must not be empty")
	}
	if c.SlopeRating <= 0 {
		return shared.InvalidInputf("slope rating must be positive, got %d", c.SlopeRating)
	}
	if c.CourseRating <= 0 {
		return shared.InvalidInputf("course rating must be positive, got %.1f", c.CourseRating)
	}

	parSum := 0
	for i, p := range c.HolePars {
		if p <= 0 {
			return shared.InvalidInputf("hole %d par must be positive, got %d", i+1, p)
		}
		parSum += p
	}
	if parSum != c.Par {
		return shared.InvalidInputf("hole pars sum to %d, expected par %d", parSum, c.Par)
	}

	var seen [NumHoles]bool
	for i, rank := range c.HoleDifficulty {
		if rank < 1 || rank > NumHoles {
			return shared.InvalidInputf("hole %d difficulty rank %d out of range 1..%d", i+1, rank, NumHoles)
		}
		if seen[rank-1] {
			return shared.InvalidInputf("difficulty rank %d assigned to more than one hole", rank)
		}
		seen[rank-1] = true
	}

	return nil
}
