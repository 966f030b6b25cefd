package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeHomeAwaySplits(t *testing.T) {
	records := []GameRecord{
		rec(0, 30),
		rec(1, 20),
		rec(2, 10),
	}
	records[0].Home = true
	records[1].Home = false
	records[2].Home = true

	splits := ComputeHomeAwaySplits(records, 0)

	require.Equal(t, 2, splits.Home.GamesPlayed)
	require.Equal(t, 1, splits.Away.GamesPlayed)
	require.Equal(t, 20.0, *splits.Home.Stats[CategoryPoints].Mean)
	require.Equal(t, 20.0, *splits.Away.Stats[CategoryPoints].Mean)
	require.Nil(t, splits.Away.Stats[CategoryPoints].StdDev)
}

func TestComputeHomeAwaySplitsEmptyInput(t *testing.T) {
	splits := ComputeHomeAwaySplits(nil, 0)

	require.Equal(t, 0, splits.Home.GamesPlayed)
	require.Equal(t, 0, splits.Away.GamesPlayed)
	require.NotNil(t, splits.Home.Stats)
	require.Nil(t, splits.Home.Stats[CategoryPoints].Mean)
}

func TestComputeRestImpactExcludesUnknownRest(t *testing.T) {
	records := []GameRecord{
		rec(0, 25, withRest(0)),
		rec(1, 18), // oldest known game: rest unknown
	}

	impact := ComputeRestImpact(records, 0)

	require.Equal(t, 1, impact.ZeroDaysRest.GamesPlayed)
	require.Equal(t, 0, impact.OneDayRest.GamesPlayed)
	require.Equal(t, 0, impact.TwoPlusDaysRest.GamesPlayed)
	require.Equal(t, 1, impact.UnknownRestExcluded)
}

func TestComputeRestImpactTiers(t *testing.T) {
	records := []GameRecord{
		rec(0, 10, withRest(0)),
		rec(1, 20, withRest(1)),
		rec(2, 30, withRest(2)),
		rec(3, 40, withRest(5)),
	}

	impact := ComputeRestImpact(records, 0)

	require.Equal(t, 1, impact.ZeroDaysRest.GamesPlayed)
	require.Equal(t, 1, impact.OneDayRest.GamesPlayed)
	require.Equal(t, 2, impact.TwoPlusDaysRest.GamesPlayed)
	require.Equal(t, 35.0, *impact.TwoPlusDaysRest.Stats[CategoryPoints].Mean)
}

// pacedRec gives a record an exact possessions estimate and, via an
// all-makes shooting line, an efficiency equal to its points.
func pacedRec(daysAgo, possessions, points int) GameRecord {
	r := rec(daysAgo, points)
	r.FieldGoalsAttempted = possessions
	r.FieldGoalsMade = possessions
	return r
}

func TestComputePaceImpactTiersAndOptimalPace(t *testing.T) {
	records := []GameRecord{
		pacedRec(0, 30, 28),
		pacedRec(1, 30, 32),
		pacedRec(2, 30, 30),
		pacedRec(3, 20, 20),
		pacedRec(4, 20, 22),
		pacedRec(5, 20, 18),
		pacedRec(6, 10, 12),
		pacedRec(7, 10, 10),
		pacedRec(8, 10, 14),
	}

	impact := ComputePaceImpact(records, 0)

	require.Equal(t, 3, impact.Fast.GamesPlayed)
	require.Equal(t, 3, impact.Medium.GamesPlayed)
	require.Equal(t, 3, impact.Slow.GamesPlayed)
	require.Equal(t, 30.0, *impact.Fast.AvgPossessions)
	require.Equal(t, 30.0, *impact.Fast.AvgEfficiency)
	require.Equal(t, "fast", impact.OptimalPace)
}

func TestComputePaceImpactTieBreaksTowardFaster(t *testing.T) {
	// Identical efficiency everywhere: the faster tier wins the tie.
	records := []GameRecord{
		pacedRec(0, 30, 20),
		pacedRec(1, 20, 20),
		pacedRec(2, 10, 20),
	}

	impact := ComputePaceImpact(records, 0)
	require.Equal(t, "fast", impact.OptimalPace)
}

func TestComputePaceImpactEmptyInput(t *testing.T) {
	impact := ComputePaceImpact(nil, 20)

	require.Equal(t, 0, impact.Fast.GamesPlayed)
	require.Equal(t, 0, impact.Medium.GamesPlayed)
	require.Equal(t, 0, impact.Slow.GamesPlayed)
	require.Empty(t, impact.OptimalPace)
	require.Nil(t, impact.Fast.AvgEfficiency)
}
