package handicapdomain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fairway-collective/league-engine/app/shared"
)

func TestDifferential(t *testing.T) {
	tests := []struct {
		name         string
		gross        int
		courseRating float64
		slopeRating  int
		want         float64
		wantErr      bool
	}{
		{
			// (113/120) * (42 - 34.5) = 7.0625 -> 7.1
			name:         "worked example from league rules",
			gross:        42,
			courseRating: 34.5,
			slopeRating:  120,
			want:         7.1,
		},
		{
			name:         "baseline slope is identity on the margin",
			gross:        40,
			courseRating: 36,
			slopeRating:  113,
			want:         4.0,
		},
		{
			name:         "scratch round on easy course goes negative",
			gross:        33,
			courseRating: 34.5,
			slopeRating:  100,
			want:         -1.7,
		},
		{
			// raw 5.25 sits exactly between tenths and rounds up to 5.3
			name:         "midpoint rounds up",
			gross:        40,
			courseRating: 34.75,
			slopeRating:  113,
			want:         5.3,
		},
		{
			name:         "negative gross rejected",
			gross:        -1,
			courseRating: 34.5,
			slopeRating:  120,
			wantErr:      true,
		},
		{
			name:         "zero slope rejected",
			gross:        42,
			courseRating: 34.5,
			slopeRating:  0,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Differential(tt.gross, tt.courseRating, tt.slopeRating)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, shared.IsInvalidInput(err))
				return
			}
			require.NoError(t, err)
			require.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCourseHandicap(t *testing.T) {
	tests := []struct {
		name  string
		index float64
		slope int
		want  int
	}{
		{"baseline slope passes index through", 10.0, 113, 10},
		{"steep course scales up", 10.0, 130, 12},   // 11.504 -> 12
		{"gentle course scales down", 10.0, 100, 9}, // 8.85 -> 9
		{"half rounds up", 8.5, 113, 9},             // 8.5 -> 9
		{"plus handicap stays negative", -2.0, 113, -2},
		{"zero index", 0, 120, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CourseHandicap(tt.index, tt.slope))
			require.Equal(t, tt.want, PlayingHandicap(tt.index, tt.slope))
		})
	}
}
