package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTakeRecent(t *testing.T) {
	records := pointsRecords(10, 20, 30, 40)

	require.Len(t, TakeRecent(records, 2), 2)
	require.Equal(t, 10, TakeRecent(records, 2)[0].Points)

	// n <= 0 and oversized n both mean the whole sequence.
	require.Len(t, TakeRecent(records, 0), 4)
	require.Len(t, TakeRecent(records, -1), 4)
	require.Len(t, TakeRecent(records, 99), 4)
}

func TestSeasonRange(t *testing.T) {
	start, end, err := SeasonRange("2023-24")
	require.NoError(t, err)
	require.Equal(t, time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, 2024, end.Year())
	require.Equal(t, time.June, end.Month())

	for _, bad := range []string{"2023", "23-24", "2023-25", "2023/24", "abcd-ef"} {
		_, _, err := SeasonRange(bad)
		require.Error(t, err, bad)
		var cerr *ConfigurationError
		require.ErrorAs(t, err, &cerr, bad)
	}
}

func TestFilterBySeason(t *testing.T) {
	records := []GameRecord{
		{GameDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{GameDate: time.Date(2023, time.November, 15, 0, 0, 0, 0, time.UTC)},
		{GameDate: time.Date(2023, time.April, 1, 0, 0, 0, 0, time.UTC)}, // prior season
		{GameDate: time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)}, // offseason
	}

	kept, err := FilterBySeason(records, "2023-24")
	require.NoError(t, err)
	require.Len(t, kept, 2)
}

func TestFilterByOpponentBeforeTruncation(t *testing.T) {
	records := []GameRecord{
		rec(0, 10, withOpponent("MIA")),
		rec(1, 20, withOpponent("BOS")),
		rec(2, 30, withOpponent("MIA")),
		rec(3, 40, withOpponent("BOS")),
		rec(4, 50, withOpponent("BOS")),
	}

	// "Last 2 against BOS" must be the 2 most recent qualifying games,
	// and never include a game against anyone else.
	window := TakeRecent(FilterByOpponent(records, "BOS"), 2)
	require.Len(t, window, 2)
	require.Equal(t, 20, window[0].Points)
	require.Equal(t, 40, window[1].Points)
	for _, r := range window {
		require.Equal(t, "BOS", r.Opponent)
	}
}

func TestDefaultSeasonResolver(t *testing.T) {
	tests := []struct {
		now  time.Time
		want string
	}{
		{time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC), "2024-25"},
		{time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), "2024-25"},
		{time.Date(2025, time.October, 15, 0, 0, 0, 0, time.UTC), "2025-26"},
	}
	for _, tt := range tests {
		resolve := DefaultSeasonResolver(func() time.Time { return tt.now })
		require.Equal(t, tt.want, resolve())
	}
}
