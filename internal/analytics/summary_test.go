package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarizeEmptySeriesIsUndefined(t *testing.T) {
	s := Summarize(nil)
	require.Equal(t, 0, s.Count)
	require.Nil(t, s.Mean)
	require.Nil(t, s.Min)
	require.Nil(t, s.Max)
	require.Nil(t, s.StdDev)
}

func TestSummarizeSingleElementHasNoStdDev(t *testing.T) {
	s := Summarize([]float64{25})
	require.Equal(t, 1, s.Count)
	require.NotNil(t, s.Mean)
	require.Equal(t, 25.0, *s.Mean)
	// One sample has no dispersion to measure; a numeric 0 here would
	// read as "perfectly consistent".
	require.Nil(t, s.StdDev)
}

func TestSummarizePopulationStdDev(t *testing.T) {
	s := Summarize([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.Equal(t, 8, s.Count)
	require.Equal(t, 5.0, *s.Mean)
	require.Equal(t, 2.0, *s.Min)
	require.Equal(t, 9.0, *s.Max)
	// Population form (divide by N): the canonical example set has
	// stddev exactly 2.
	require.InDelta(t, 2.0, *s.StdDev, 1e-9)
}

func TestMedian(t *testing.T) {
	require.Nil(t, median(nil))
	require.Equal(t, 3.0, *median([]float64{5, 1, 3}))
	require.Equal(t, 2.5, *median([]float64{4, 1, 2, 3}))
}

func TestQuantile(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}
	require.Equal(t, 10.0, quantile(values, 0))
	require.Equal(t, 50.0, quantile(values, 1))
	require.Equal(t, 30.0, quantile(values, 0.5))
	require.InDelta(t, 23.2, quantile(values, 0.33), 1e-9)
}
