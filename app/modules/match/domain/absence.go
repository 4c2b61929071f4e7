package matchdomain

import (
	coursedomain "github.com/fairway-collective/league-engine/app/modules/course/domain"
)

// AbsencePenaltyStrokes is added on top of playing handicap and par when
// synthesizing a round for an absent player. Fixed league rule, not tunable.
const AbsencePenaltyStrokes = 3

// SyntheticRound builds a plausible round for an absent player:
//
//	gross total = playingHandicap + par + 3
//
// distributed over the holes hardest-first on top of each hole's par, using
// the same priority logic as stroke allocation. The resulting round is
// flagged absent by the caller and never enters handicap history, but it
// gives the present opponent a determinate result.
func SyntheticRound(playingHandicap int, course coursedomain.Course) HoleScores {
	extra := distribute(playingHandicap+AbsencePenaltyStrokes, course.HoleDifficulty)

	var gross HoleScores
	for i := range gross {
		gross[i] = course.HolePars[i] + extra[i]
	}
	return gross
}
