package matchdomain

import (
	coursedomain "github.com/fairway-collective/league-engine/app/modules/course/domain"
)

// AllocateStrokes distributes |playingA - playingB| strokes to the
// higher-handicap side, hardest hole first by the course's difficulty
// ranking. When the difference exceeds nine, every hole gets the floor share
// and the remainder again goes to the hardest holes. The lower-handicap side
// receives nothing. sum(A) + sum(B) == |playingA - playingB| always.
func AllocateStrokes(playingA, playingB int, difficulty [coursedomain.NumHoles]int) (HoleScores, HoleScores) {
	var a, b HoleScores

	switch {
	case playingA > playingB:
		a = distribute(playingA-playingB, difficulty)
	case playingB > playingA:
		b = distribute(playingB-playingA, difficulty)
	}
	return a, b
}

// distribute spreads total strokes across the holes by difficulty ranking.
// A negative total removes strokes from the hardest holes instead; used by
// the absence resolver when a plus handicap pulls the synthetic round below
// par.
func distribute(total int, difficulty [coursedomain.NumHoles]int) HoleScores {
	if total < 0 {
		pos := distribute(-total, difficulty)
		for i := range pos {
			pos[i] = -pos[i]
		}
		return pos
	}

	base := total / coursedomain.NumHoles
	remainder := total % coursedomain.NumHoles

	var out HoleScores
	for i, rank := range difficulty {
		out[i] = base
		if rank <= remainder {
			out[i]++
		}
	}
	return out
}
