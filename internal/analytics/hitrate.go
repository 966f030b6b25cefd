package analytics

import "fmt"

// thresholdLadders is the fixed category -> ascending thresholds
// configuration. The values are load-bearing for existing callers and
// must not change without a coordinated API version bump.
var thresholdLadders = map[StatCategory][]int{
	CategoryPoints:   {10, 15, 20, 25, 30, 35},
	CategoryAssists:  {2, 4, 6, 8, 10},
	CategoryRebounds: {4, 6, 8, 10, 12, 14, 16},
	CategoryThrees:   {1, 2, 3, 4, 5, 6, 7, 8},
	CategorySteals:   {1, 2, 3, 4},
	CategoryBlocks:   {1, 2, 3, 4},
}

// ThresholdHitRate reports how often a windowed series met or exceeded
// one threshold. Percentage is defined as 0.0 for an empty window: a
// hit rate answers "how often did this happen", and over zero games the
// answer is "never observed", not "unknown".
type ThresholdHitRate struct {
	Threshold  int     `json:"threshold"`
	Label      string  `json:"label"` // e.g. "20+"
	Made       int     `json:"made"`
	Total      int     `json:"total"`
	Fraction   string  `json:"fraction"` // e.g. "7/10"
	Percentage float64 `json:"percentage"`
}

// CategoryHitRates groups one category's hit rates in ascending
// threshold order.
type CategoryHitRates struct {
	Category   StatCategory       `json:"category"`
	Thresholds []ThresholdHitRate `json:"thresholds"`
}

// hitRate counts values at or above the threshold.
func hitRate(values []float64, threshold int) ThresholdHitRate {
	made := 0
	for _, v := range values {
		if v >= float64(threshold) {
			made++
		}
	}
	total := len(values)
	pct := 0.0
	if total > 0 {
		pct = round2(100 * float64(made) / float64(total))
	}
	return ThresholdHitRate{
		Threshold:  threshold,
		Label:      fmt.Sprintf("%d+", threshold),
		Made:       made,
		Total:      total,
		Fraction:   fmt.Sprintf("%d/%d", made, total),
		Percentage: pct,
	}
}

// ComputeHitRates reports, per category, how many of the last numGames
// games met or exceeded each configured threshold. numGames <= 0
// analyzes the whole sequence; nil categories means all of them.
func ComputeHitRates(records []GameRecord, numGames int, categories []StatCategory) ([]CategoryHitRates, error) {
	if categories == nil {
		categories = Categories()
	}
	window := TakeRecent(records, numGames)

	results := make([]CategoryHitRates, 0, len(categories))
	for _, cat := range categories {
		ladder, ok := thresholdLadders[cat]
		if !ok {
			return nil, configurationErrorf("no threshold ladder configured for category %q", cat)
		}
		values := Series(window, cat)
		rates := make([]ThresholdHitRate, 0, len(ladder))
		for _, threshold := range ladder {
			rates = append(rates, hitRate(values, threshold))
		}
		results = append(results, CategoryHitRates{Category: cat, Thresholds: rates})
	}

	return results, nil
}
