package analytics

import "fmt"

// ConsistencyResult summarizes how tightly a player's performance in
// one stat clusters around its mean over a window of games.
type ConsistencyResult struct {
	StatType         StatCategory `json:"stat_type"`
	GamesAnalyzed    int          `json:"games_analyzed"`
	ConsistencyScore float64      `json:"consistency_score"`
	Average          *float64     `json:"average,omitempty"`
	StdDev           *float64     `json:"std_dev,omitempty"`
	Median           *float64     `json:"median,omitempty"`
	Range            string       `json:"range,omitempty"` // e.g. "12-40"
	HitRateAboveAvg  float64      `json:"hit_rate_above_avg"`
	Trend            string       `json:"trend"`
}

// ComputeConsistency scores a stat category over the last N games
// (all games when lastN <= 0). The score is
// 100 * clamp(1 - stddev/mean, 0, 1) when the mean is positive: the
// complement of the coefficient of variation, so lower relative
// dispersion always scores higher, bounded to [0,100]. Windows with
// fewer than two games have no dispersion to measure and score 0.
func ComputeConsistency(records []GameRecord, cat StatCategory, lastN int) (ConsistencyResult, error) {
	if _, ok := thresholdLadders[cat]; !ok {
		return ConsistencyResult{}, validationErrorf("invalid stat type %q", cat)
	}

	window := TakeRecent(records, lastN)
	values := Series(window, cat)
	summary := Summarize(values)

	result := ConsistencyResult{
		StatType:      cat,
		GamesAnalyzed: len(values),
		Trend:         ClassifyTrend(values),
	}

	if summary.Mean == nil {
		return result, nil
	}

	avg := round1(*summary.Mean)
	result.Average = &avg
	result.Median = median(values)
	if result.Median != nil {
		m := round1(*result.Median)
		result.Median = &m
	}
	result.Range = fmt.Sprintf("%d-%d", int(*summary.Min), int(*summary.Max))

	above := 0
	for _, v := range values {
		if v >= *summary.Mean {
			above++
		}
	}
	result.HitRateAboveAvg = round2(float64(above) / float64(len(values)))

	if summary.StdDev == nil {
		return result, nil
	}
	sd := round1(*summary.StdDev)
	result.StdDev = &sd

	if *summary.Mean > 0 {
		score := 100 * (1 - *summary.StdDev / *summary.Mean)
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		result.ConsistencyScore = round1(score)
	}

	return result, nil
}
