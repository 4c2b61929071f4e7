package handicapdomain

import "sort"

// MaxHandicapRounds caps the rolling window: only the most recent 20
// differentials participate in the index. Older entries stay stored for
// history display but never affect the calculation.
const MaxHandicapRounds = 20

// BestCount maps the number of qualifying rounds in the window to how many of
// the lowest differentials are averaged. Monotonically increasing, saturating
// at the window cap: 1 round counts 1, 20 rounds count the best 10.
func BestCount(rounds int) int {
	if rounds <= 0 {
		return 0
	}
	if rounds > MaxHandicapRounds {
		rounds = MaxHandicapRounds
	}
	return (rounds + 1) / 2
}

// Index derives the handicap index from a player's differential history,
// ordered oldest to newest. Only the most recent MaxHandicapRounds entries
// are considered; of those, the mean of the BestCount lowest is taken and
// rounded to one decimal place. With no history the provisional handicap is
// returned unmodified.
func Index(differentials []float64, provisional float64) float64 {
	if len(differentials) == 0 {
		return provisional
	}

	window := differentials
	if len(window) > MaxHandicapRounds {
		window = window[len(window)-MaxHandicapRounds:]
	}

	best := make([]float64, len(window))
	copy(best, window)
	sort.Float64s(best)
	best = best[:BestCount(len(window))]

	sum := 0.0
	for _, d := range best {
		sum += d
	}
	return roundHalfUp1(sum / float64(len(best)))
}
