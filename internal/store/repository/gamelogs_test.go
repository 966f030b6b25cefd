package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// stats API spelling
		{"APR 10, 2024", "2024-04-10"},
		// scraper spelling, already canonical
		{"2024-04-05", "2024-04-05"},
		{"01/15/2024", "2024-01-15"},
		{"  Apr 10, 2024 ", "2024-04-10"},
		// unparsable dates pass through so the row is still archived
		{"sometime", "sometime"},
		{"", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, canonicalDate(tt.in), "input %q", tt.in)
	}
}

// The same physical game from two sources must land on the same
// archive key even though the sources disagree on game IDs.
func TestCanonicalDateAlignsSources(t *testing.T) {
	fromStatsAPI := canonicalDate("APR 10, 2024")
	fromScraper := canonicalDate("2024-04-10")
	require.Equal(t, fromStatsAPI, fromScraper)
}
