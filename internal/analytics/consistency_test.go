package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeConsistencyConstantSeriesScoresPerfect(t *testing.T) {
	records := pointsRecords(20, 20, 20, 20)

	result, err := ComputeConsistency(records, CategoryPoints, 20)
	require.NoError(t, err)

	require.Equal(t, 4, result.GamesAnalyzed)
	require.Equal(t, 100.0, result.ConsistencyScore)
	require.Equal(t, 20.0, *result.Average)
	require.Equal(t, 0.0, *result.StdDev)
	require.Equal(t, 20.0, *result.Median)
	require.Equal(t, "20-20", result.Range)
	require.Equal(t, 1.0, result.HitRateAboveAvg)
	require.Equal(t, TrendStable, result.Trend)
}

func TestComputeConsistencyScoreDropsWithDispersion(t *testing.T) {
	steady, err := ComputeConsistency(pointsRecords(22, 20, 21, 19, 20, 18), CategoryPoints, 0)
	require.NoError(t, err)
	volatile, err := ComputeConsistency(pointsRecords(40, 5, 35, 2, 30, 8), CategoryPoints, 0)
	require.NoError(t, err)

	require.Greater(t, steady.ConsistencyScore, volatile.ConsistencyScore)
	require.GreaterOrEqual(t, steady.ConsistencyScore, 0.0)
	require.LessOrEqual(t, steady.ConsistencyScore, 100.0)
	require.GreaterOrEqual(t, volatile.ConsistencyScore, 0.0)
	require.LessOrEqual(t, volatile.ConsistencyScore, 100.0)
}

func TestComputeConsistencyEmptyWindow(t *testing.T) {
	result, err := ComputeConsistency(nil, CategoryPoints, 20)
	require.NoError(t, err)

	require.Equal(t, 0, result.GamesAnalyzed)
	require.Equal(t, 0.0, result.ConsistencyScore)
	require.Nil(t, result.Average)
	require.Nil(t, result.StdDev)
	require.Empty(t, result.Range)
	require.Equal(t, TrendStable, result.Trend)
}

func TestComputeConsistencySingleGameScoresZero(t *testing.T) {
	result, err := ComputeConsistency(pointsRecords(30), CategoryPoints, 20)
	require.NoError(t, err)

	// One game is not a consistency signal.
	require.Equal(t, 1, result.GamesAnalyzed)
	require.Equal(t, 0.0, result.ConsistencyScore)
	require.NotNil(t, result.Average)
	require.Nil(t, result.StdDev)
}

func TestComputeConsistencyUnknownStatType(t *testing.T) {
	_, err := ComputeConsistency(pointsRecords(10, 20), "turnovers", 20)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestComputeMatchupHistory(t *testing.T) {
	records := []GameRecord{
		rec(0, 31, withOpponent("MIA")),
		rec(1, 15, withOpponent("BOS")),
		rec(2, 27, withOpponent("MIA")),
		rec(3, 22, withOpponent("MIA")),
	}
	records[0].Assists = 8
	records[2].Assists = 4

	history := ComputeMatchupHistory(records, "MIA", 5)

	require.Equal(t, "MIA", history.Opponent)
	require.Equal(t, 3, history.GamesAnalyzed)
	require.NotNil(t, history.Averages[CategoryPoints].Mean)
	require.InDelta(t, 26.7, *history.Averages[CategoryPoints].Mean, 1e-9)
	require.NotNil(t, history.LastMatchup)
	require.Equal(t, 31, history.LastMatchup.Points)
	require.NotEmpty(t, history.PerformanceTrend)
}

func TestComputeMatchupHistoryTruncatesAfterFiltering(t *testing.T) {
	records := make([]GameRecord, 0, 8)
	for i := 0; i < 8; i++ {
		opp := "BOS"
		if i%2 == 0 {
			opp = "MIA"
		}
		records = append(records, rec(i, 10+i, withOpponent(opp)))
	}

	history := ComputeMatchupHistory(records, "BOS", 2)
	require.Equal(t, 2, history.GamesAnalyzed)
	require.Equal(t, "BOS", history.Opponent)
	// The two most recent BOS games score 11 and 13 points.
	require.Equal(t, 12.0, *history.Averages[CategoryPoints].Mean)
}

func TestComputeMatchupHistoryNoMeetings(t *testing.T) {
	history := ComputeMatchupHistory(pointsRecords(10, 20), "ZZZ", 5)

	require.Equal(t, 0, history.GamesAnalyzed)
	require.Nil(t, history.LastMatchup)
	require.Nil(t, history.MinutesPerGame)
	require.Nil(t, history.Averages[CategoryPoints].Mean)
	require.Equal(t, TrendStable, history.PerformanceTrend)
}
