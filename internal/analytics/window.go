package analytics

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SeasonResolver supplies the label of the current season (e.g.
// "2024-25") when a caller leaves the season unset. Injecting it keeps
// the selection logic deterministic under test.
type SeasonResolver func() string

// DefaultSeasonResolver derives the current season from the clock: an
// NBA season starting in October of year Y carries the label "YYYY-YY+1"
// through the following June.
func DefaultSeasonResolver(now func() time.Time) SeasonResolver {
	return func() string {
		t := now()
		year := t.Year()
		if t.Month() < time.October {
			year--
		}
		return fmt.Sprintf("%d-%02d", year, (year+1)%100)
	}
}

// TakeRecent returns the first n records of a most-recent-first
// sequence. n <= 0 means no truncation: the full sequence is returned.
func TakeRecent(records []GameRecord, n int) []GameRecord {
	if n <= 0 || n >= len(records) {
		return records
	}
	return records[:n]
}

// SeasonRange resolves a season label like "2023-24" into its date
// range: October 1 of the first year through June 30 of the next.
func SeasonRange(label string) (start, end time.Time, err error) {
	parts := strings.Split(label, "-")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return time.Time{}, time.Time{}, configurationErrorf("unknown season label %q (want format '2023-24')", label)
	}
	year, convErr := strconv.Atoi(parts[0])
	suffix, convErr2 := strconv.Atoi(parts[1])
	if convErr != nil || convErr2 != nil || (year+1)%100 != suffix {
		return time.Time{}, time.Time{}, configurationErrorf("unknown season label %q (want format '2023-24')", label)
	}
	start = time.Date(year, time.October, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year+1, time.June, 30, 23, 59, 59, 0, time.UTC)
	return start, end, nil
}

// FilterBySeason keeps records whose game date falls inside the
// labeled season. Filtering happens before any recency truncation.
func FilterBySeason(records []GameRecord, label string) ([]GameRecord, error) {
	start, end, err := SeasonRange(label)
	if err != nil {
		return nil, err
	}
	kept := make([]GameRecord, 0, len(records))
	for _, r := range records {
		if !r.GameDate.Before(start) && !r.GameDate.After(end) {
			kept = append(kept, r)
		}
	}
	return kept, nil
}

// FilterByOpponent keeps records played against the given team,
// matched case-insensitively on the opponent tricode.
func FilterByOpponent(records []GameRecord, teamID string) []GameRecord {
	kept := make([]GameRecord, 0, len(records))
	for _, r := range records {
		if strings.EqualFold(r.Opponent, teamID) {
			kept = append(kept, r)
		}
	}
	return kept
}
