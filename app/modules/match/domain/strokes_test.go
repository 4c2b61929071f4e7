package matchdomain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var testDifficulty = [9]int{3, 7, 1, 9, 5, 2, 8, 4, 6}

func TestAllocateStrokes(t *testing.T) {
	tests := []struct {
		name     string
		playingA int
		playingB int
		wantA    HoleScores
		wantB    HoleScores
	}{
		{
			// League rules worked example: 10 vs 4 gives six strokes on the
			// holes ranked 1 through 6.
			name:     "six stroke difference to the weaker player",
			playingA: 10,
			playingB: 4,
			wantA:    HoleScores{1, 0, 1, 0, 1, 1, 0, 1, 1},
		},
		{
			name:     "equal handicaps allocate nothing",
			playingA: 7,
			playingB: 7,
		},
		{
			name:     "single stroke lands on the hardest hole",
			playingA: 4,
			playingB: 5,
			wantB:    HoleScores{0, 0, 1, 0, 0, 0, 0, 0, 0},
		},
		{
			name:     "difference over nine gives every hole a base stroke",
			playingA: 15,
			playingB: 4, // diff 11: base 1 everywhere, remainder 2 on ranks 1 and 2
			wantA:    HoleScores{1, 1, 2, 1, 1, 2, 1, 1, 1},
		},
		{
			name:     "difference of two full laps",
			playingA: 0,
			playingB: 18,
			wantB:    HoleScores{2, 2, 2, 2, 2, 2, 2, 2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotA, gotB := AllocateStrokes(tt.playingA, tt.playingB, testDifficulty)
			if diff := cmp.Diff(tt.wantA, gotA); diff != "" {
				t.Errorf("strokes A mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantB, gotB); diff != "" {
				t.Errorf("strokes B mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAllocateStrokesConservation(t *testing.T) {
	// sum(A) + sum(B) == |hA - hB|, and only one side ever receives strokes.
	for hA := -5; hA <= 30; hA++ {
		for hB := -5; hB <= 30; hB++ {
			a, b := AllocateStrokes(hA, hB, testDifficulty)

			diff := hA - hB
			if diff < 0 {
				diff = -diff
			}
			require.Equal(t, diff, a.Total()+b.Total(), "hA=%d hB=%d", hA, hB)

			if hA > hB {
				require.Zero(t, b.Total(), "lower handicap side must get nothing")
			}
			if hB > hA {
				require.Zero(t, a.Total(), "lower handicap side must get nothing")
			}
		}
	}
}
