package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func findCategory(t *testing.T, results []CategoryHitRates, cat StatCategory) CategoryHitRates {
	t.Helper()
	for _, r := range results {
		if r.Category == cat {
			return r
		}
	}
	t.Fatalf("category %s missing from results", cat)
	return CategoryHitRates{}
}

func findThreshold(t *testing.T, rates CategoryHitRates, threshold int) ThresholdHitRate {
	t.Helper()
	for _, tr := range rates.Thresholds {
		if tr.Threshold == threshold {
			return tr
		}
	}
	t.Fatalf("threshold %d missing for category %s", threshold, rates.Category)
	return ThresholdHitRate{}
}

func TestComputeHitRatesPointsLadder(t *testing.T) {
	records := pointsRecords(35, 28, 22, 18, 30, 25, 12, 40, 19, 24)

	results, err := ComputeHitRates(records, 10, nil)
	require.NoError(t, err)
	require.Len(t, results, 6)

	points := findCategory(t, results, CategoryPoints)

	twenty := findThreshold(t, points, 20)
	require.Equal(t, 7, twenty.Made)
	require.Equal(t, 10, twenty.Total)
	require.Equal(t, "7/10", twenty.Fraction)
	require.Equal(t, 70.0, twenty.Percentage)

	thirty := findThreshold(t, points, 30)
	require.Equal(t, 3, thirty.Made)
	require.Equal(t, 10, thirty.Total)
	require.Equal(t, 30.0, thirty.Percentage)
}

func TestComputeHitRatesMadeMonotonicallyNonIncreasing(t *testing.T) {
	records := pointsRecords(35, 28, 22, 18, 30, 25, 12, 40, 19, 24)
	for i := range records {
		records[i].Assists = records[i].Points / 3
		records[i].Rebounds = records[i].Points / 2
		records[i].ThreePointersMade = records[i].Points / 8
		records[i].Steals = records[i].Points / 10
		records[i].Blocks = records[i].Points / 12
	}

	results, err := ComputeHitRates(records, 0, nil)
	require.NoError(t, err)

	for _, cat := range results {
		prev := len(records) + 1
		lastThreshold := -1
		for _, tr := range cat.Thresholds {
			require.Greater(t, tr.Threshold, lastThreshold, "thresholds must stay ascending for %s", cat.Category)
			require.LessOrEqual(t, tr.Made, prev, "made must not grow with the threshold for %s", cat.Category)
			prev = tr.Made
			lastThreshold = tr.Threshold
		}
	}
}

func TestComputeHitRatesOversizedWindowEqualsFullSequence(t *testing.T) {
	records := pointsRecords(35, 28, 22, 18, 30)

	full, err := ComputeHitRates(records, 0, nil)
	require.NoError(t, err)
	oversized, err := ComputeHitRates(records, 500, nil)
	require.NoError(t, err)

	require.Equal(t, full, oversized)
}

func TestComputeHitRatesEmptyWindowIsZeroNotUnknown(t *testing.T) {
	results, err := ComputeHitRates(nil, 10, nil)
	require.NoError(t, err)
	require.Len(t, results, 6)

	for _, cat := range results {
		require.NotEmpty(t, cat.Thresholds)
		for _, tr := range cat.Thresholds {
			require.Equal(t, 0, tr.Made)
			require.Equal(t, 0, tr.Total)
			require.Equal(t, "0/0", tr.Fraction)
			require.Equal(t, 0.0, tr.Percentage)
		}
	}
}

func TestComputeHitRatesUnknownCategory(t *testing.T) {
	_, err := ComputeHitRates(nil, 10, []StatCategory{"turnovers"})
	require.Error(t, err)
	var cerr *ConfigurationError
	require.ErrorAs(t, err, &cerr)
}
