package matchdomain

import (
	"testing"

	"github.com/stretchr/testify/require"

	coursedomain "github.com/fairway-collective/league-engine/app/modules/course/domain"
)

func testCourse() coursedomain.Course {
	return coursedomain.Course{
		Name:           "Willow Creek Front 9",
		Par:            36,
		CourseRating:   34.5,
		SlopeRating:    120,
		HolePars:       [9]int{4, 4, 5, 3, 4, 4, 3, 5, 4},
		HoleDifficulty: testDifficulty,
	}
}

func TestSyntheticRound(t *testing.T) {
	course := testCourse()

	t.Run("total is playing handicap plus par plus three", func(t *testing.T) {
		for ph := 0; ph <= 25; ph++ {
			gross := SyntheticRound(ph, course)
			require.Equal(t, ph+course.Par+AbsencePenaltyStrokes, gross.Total(), "ph=%d", ph)
		}
	})

	t.Run("extra strokes land on the hardest holes", func(t *testing.T) {
		// ph 3 -> 6 extra strokes on difficulty ranks 1..6.
		gross := SyntheticRound(3, course)
		want := HoleScores{5, 4, 6, 3, 5, 5, 3, 6, 5}
		require.Equal(t, want, gross)
	})

	t.Run("plus handicap pulls the round below par", func(t *testing.T) {
		gross := SyntheticRound(-5, course)
		require.Equal(t, course.Par-2, gross.Total())
	})
}
