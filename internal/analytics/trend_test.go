package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name   string
		values []float64 // most-recent-first
		want   string
	}{
		{"empty", nil, TrendStable},
		{"single value", []float64{30}, TrendStable},
		{"identical halves", []float64{20, 20, 20, 20}, TrendStable},
		{"recent surge", []float64{30, 30, 10, 10}, TrendImproving},
		{"recent slump", []float64{10, 10, 30, 30}, TrendDeclining},
		{"within noise band", []float64{21, 20, 20, 20}, TrendStable},
		{"just past threshold", []float64{22, 22, 20, 20}, TrendImproving},
		{"odd length extra to older half", []float64{30, 20, 20, 20, 20}, TrendImproving},
		{"older half all zeros", []float64{5, 5, 0, 0}, TrendImproving},
		{"all zeros", []float64{0, 0, 0, 0}, TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClassifyTrend(tt.values))
		})
	}
}
