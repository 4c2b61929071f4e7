package matchdomain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	coursedomain "github.com/fairway-collective/league-engine/app/modules/course/domain"
)

func TestScoreMatch(t *testing.T) {
	course := testCourse()
	playerA := uuid.New()
	playerB := uuid.New()

	t.Run("weaker player wins holes through allocated strokes", func(t *testing.T) {
		// Identical gross rounds; the 10-handicap gets 6 strokes and should
		// win the six stroked holes, pushing the other three.
		gross := HoleScores{5, 5, 6, 4, 5, 5, 4, 6, 5}
		score := ScoreMatch(course,
			SideInput{PlayerID: playerA, HoleScores: gross},
			SideInput{PlayerID: playerB, HoleScores: gross},
			10, 4,
		)

		require.Equal(t, 6, score.A.StrokesTotal)
		require.Equal(t, 0, score.B.StrokesTotal)
		// 6 holes won at 2 + 3 pushed at 1 = 15 hole points, plus the bonus.
		require.Equal(t, 15, score.A.HolePointsTotal)
		require.Equal(t, 3, score.B.HolePointsTotal)
		require.Equal(t, BonusWinPoints, score.A.BonusPoints)
		require.Equal(t, 0, score.B.BonusPoints)
		require.Equal(t, 19, score.A.TotalPoints)
		require.Equal(t, 3, score.B.TotalPoints)
	})

	t.Run("identical nets push everything", func(t *testing.T) {
		gross := HoleScores{4, 4, 5, 3, 4, 4, 3, 5, 4}
		score := ScoreMatch(course,
			SideInput{PlayerID: playerA, HoleScores: gross},
			SideInput{PlayerID: playerB, HoleScores: gross},
			8, 8,
		)

		require.Equal(t, 9*HolePushPoints+BonusPushPoints, score.A.TotalPoints)
		require.Equal(t, score.A.TotalPoints, score.B.TotalPoints)
	})

	t.Run("shutout reaches but never exceeds the maximum", func(t *testing.T) {
		score := ScoreMatch(course,
			SideInput{PlayerID: playerA, HoleScores: HoleScores{3, 3, 4, 2, 3, 3, 2, 4, 3}},
			SideInput{PlayerID: playerB, HoleScores: HoleScores{6, 6, 7, 5, 6, 6, 5, 7, 6}},
			5, 5,
		)

		require.Equal(t, MaxPointsPerSide, score.A.TotalPoints)
		require.Equal(t, 22, MaxPointsPerSide)
		require.Zero(t, score.B.TotalPoints)
	})

	t.Run("net is gross minus strokes hole by hole", func(t *testing.T) {
		gross := HoleScores{5, 5, 6, 4, 5, 5, 4, 6, 5}
		score := ScoreMatch(course,
			SideInput{PlayerID: playerA, HoleScores: gross},
			SideInput{PlayerID: playerB, HoleScores: gross},
			10, 4,
		)
		for i := 0; i < coursedomain.NumHoles; i++ {
			require.Equal(t, score.A.Gross[i]-score.A.Strokes[i], score.A.Net[i])
			require.Equal(t, score.B.Gross[i], score.B.Net[i])
		}
	})
}

func TestScoreMatchPointConservation(t *testing.T) {
	course := testCourse()

	// Every hole's points sum to 2, the bonus sums to 4, and the match to 22
	// across a sweep of handicap pairs and score shapes.
	grosses := []HoleScores{
		{4, 4, 5, 3, 4, 4, 3, 5, 4},
		{5, 6, 7, 4, 5, 6, 4, 7, 5},
		{3, 4, 4, 3, 3, 4, 2, 4, 3},
		{7, 7, 8, 6, 7, 7, 6, 8, 7},
	}

	for hA := 0; hA <= 20; hA += 4 {
		for hB := 0; hB <= 20; hB += 4 {
			for _, ga := range grosses {
				for _, gb := range grosses {
					score := ScoreMatch(course,
						SideInput{PlayerID: uuid.New(), HoleScores: ga},
						SideInput{PlayerID: uuid.New(), HoleScores: gb},
						hA, hB,
					)

					for i := 0; i < coursedomain.NumHoles; i++ {
						require.Equal(t, 2, score.A.HolePoints[i]+score.B.HolePoints[i])
					}
					require.Equal(t, 4, score.A.BonusPoints+score.B.BonusPoints)
					require.Equal(t, 2*coursedomain.NumHoles+4, score.A.TotalPoints+score.B.TotalPoints)
					require.LessOrEqual(t, score.A.TotalPoints, MaxPointsPerSide)
					require.LessOrEqual(t, score.B.TotalPoints, MaxPointsPerSide)
				}
			}
		}
	}
}

func TestValidateGross(t *testing.T) {
	require.NoError(t, HoleScores{4, 4, 5, 3, 4, 4, 3, 5, 4}.ValidateGross())
	require.Error(t, HoleScores{0, 4, 5, 3, 4, 4, 3, 5, 4}.ValidateGross())
	require.Error(t, HoleScores{4, 4, 5, 3, -1, 4, 3, 5, 4}.ValidateGross())
}
