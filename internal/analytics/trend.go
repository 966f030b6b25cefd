package analytics

// Trend labels for recent-vs-prior performance.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// trendThreshold is the relative margin the recent half must move by
// before a trend is called; smaller swings are noise.
const trendThreshold = 0.05

// ClassifyTrend compares the mean of the most recent half of a
// most-recent-first series against the mean of the older half. Odd
// lengths put the extra value in the older half. Fewer than two values
// is not enough signal for a trend and reads as stable.
func ClassifyTrend(values []float64) string {
	if len(values) < 2 {
		return TrendStable
	}

	half := len(values) / 2
	recentMean := mean(values[:half])
	olderMean := mean(values[half:])

	if olderMean <= 0 {
		if recentMean > 0 {
			return TrendImproving
		}
		return TrendStable
	}

	switch {
	case recentMean > olderMean*(1+trendThreshold):
		return TrendImproving
	case recentMean < olderMean*(1-trendThreshold):
		return TrendDeclining
	default:
		return TrendStable
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
