package analytics

import (
	"log"
	"sort"
	"strings"
	"time"

	"github.com/A1Marky/premium-nba-api/internal/provider"
)

// GameRecord is the canonical per-game stat line every computation in
// this package consumes. Sequences of records are always ordered
// most-recent-first: index 0 is the latest game, and all "last N games"
// windows slice from the front.
type GameRecord struct {
	GameID   string    `json:"game_id"`
	GameDate time.Time `json:"game_date"`
	Opponent string    `json:"opponent"`
	Home     bool      `json:"home"`

	Points            int     `json:"points"`
	Assists           int     `json:"assists"`
	Rebounds          int     `json:"rebounds"`
	ThreePointersMade int     `json:"three_pointers_made"`
	Steals            int     `json:"steals"`
	Blocks            int     `json:"blocks"`
	Minutes           float64 `json:"minutes"`

	FieldGoalsMade      int `json:"field_goals_made"`
	FieldGoalsAttempted int `json:"field_goals_attempted"`
	FreeThrowsMade      int `json:"free_throws_made"`
	FreeThrowsAttempted int `json:"free_throws_attempted"`
	OffensiveRebounds   int `json:"offensive_rebounds"`
	Turnovers           int `json:"turnovers"`

	// DaysRest counts full off days before this game, derived from the
	// player's complete known history at normalization time. Nil for the
	// oldest known game.
	DaysRest *int `json:"days_rest,omitempty"`
}

// Possessions is a rough per-game pace indicator: FGA - OREB + TOV.
func (r GameRecord) Possessions() int {
	return r.FieldGoalsAttempted - r.OffensiveRebounds + r.Turnovers
}

// Efficiency is the standard NBA efficiency rating:
// PTS + REB + AST + STL + BLK - missed FG - missed FT - TOV.
func (r GameRecord) Efficiency() int {
	return r.Points + r.Rebounds + r.Assists + r.Steals + r.Blocks -
		(r.FieldGoalsAttempted - r.FieldGoalsMade) -
		(r.FreeThrowsAttempted - r.FreeThrowsMade) -
		r.Turnovers
}

// StatCategory identifies one of the tracked counting stats.
type StatCategory string

const (
	CategoryPoints   StatCategory = "points"
	CategoryAssists  StatCategory = "assists"
	CategoryRebounds StatCategory = "rebounds"
	CategoryThrees   StatCategory = "threes"
	CategorySteals   StatCategory = "steals"
	CategoryBlocks   StatCategory = "blocks"
)

// Categories returns all stat categories in declaration order.
func Categories() []StatCategory {
	return []StatCategory{
		CategoryPoints, CategoryAssists, CategoryRebounds,
		CategoryThrees, CategorySteals, CategoryBlocks,
	}
}

// statAliases maps caller-facing stat type spellings, including the
// NBA API column names the original callers use, onto categories.
var statAliases = map[string]StatCategory{
	"points":   CategoryPoints,
	"pts":      CategoryPoints,
	"assists":  CategoryAssists,
	"ast":      CategoryAssists,
	"rebounds": CategoryRebounds,
	"reb":      CategoryRebounds,
	"threes":   CategoryThrees,
	"fg3m":     CategoryThrees,
	"steals":   CategorySteals,
	"stl":      CategorySteals,
	"blocks":   CategoryBlocks,
	"blk":      CategoryBlocks,
}

// ParseStatCategory resolves a caller-supplied stat type string.
func ParseStatCategory(s string) (StatCategory, error) {
	if cat, ok := statAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return cat, nil
	}
	return "", validationErrorf("invalid stat type %q (want one of PTS, AST, REB, FG3M, STL, BLK)", s)
}

// Value returns the record's value for this category.
func (c StatCategory) Value(r GameRecord) float64 {
	switch c {
	case CategoryPoints:
		return float64(r.Points)
	case CategoryAssists:
		return float64(r.Assists)
	case CategoryRebounds:
		return float64(r.Rebounds)
	case CategoryThrees:
		return float64(r.ThreePointersMade)
	case CategorySteals:
		return float64(r.Steals)
	case CategoryBlocks:
		return float64(r.Blocks)
	}
	return 0
}

// Series extracts the category's values from a record sequence,
// preserving order.
func Series(records []GameRecord, cat StatCategory) []float64 {
	values := make([]float64, len(records))
	for i, r := range records {
		values[i] = cat.Value(r)
	}
	return values
}

// gameDateLayouts covers the date spellings seen across provider
// endpoints.
var gameDateLayouts = []string{
	"Jan 02, 2006",
	"2006-01-02",
	"01/02/2006",
}

func parseGameDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) >= 3 {
		// Upstream month abbreviations arrive uppercased ("APR 10, 2024").
		s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:2]) + strings.ToLower(s[2:3]) + s[3:]
	}
	for _, layout := range gameDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseMatchup splits a matchup string like "TOR vs. BOS" (home) or
// "TOR @ BOS" (away) into the home flag and opponent tricode.
func parseMatchup(matchup string) (home bool, opponent string, ok bool) {
	fields := strings.Fields(matchup)
	if len(fields) < 3 {
		return false, "", false
	}
	opponent = fields[len(fields)-1]
	switch {
	case strings.Contains(matchup, "vs"):
		return true, opponent, true
	case strings.Contains(matchup, "@"):
		return false, opponent, true
	}
	return false, "", false
}

// Normalize converts provider-native game log rows into canonical
// records sorted most-recent-first, deriving days of rest from the full
// sequence. Malformed rows are dropped, logged, and counted; a bad row
// never fails the whole log.
func Normalize(rows []provider.GameLogRow) (records []GameRecord, dropped int) {
	records = make([]GameRecord, 0, len(rows))
	for _, row := range rows {
		date, ok := parseGameDate(row.GameDate)
		if !ok {
			log.Printf("[normalizer] skipping game %s: unparsable date %q", row.GameID, row.GameDate)
			dropped++
			continue
		}
		home, opponent, ok := parseMatchup(row.Matchup)
		if !ok {
			log.Printf("[normalizer] skipping game %s: unparsable matchup %q", row.GameID, row.Matchup)
			dropped++
			continue
		}
		if row.Points < 0 || row.Assists < 0 || row.Rebounds < 0 || row.Minutes < 0 {
			log.Printf("[normalizer] skipping game %s: negative stat values", row.GameID)
			dropped++
			continue
		}

		records = append(records, GameRecord{
			GameID:              row.GameID,
			GameDate:            date,
			Opponent:            opponent,
			Home:                home,
			Points:              row.Points,
			Assists:             row.Assists,
			Rebounds:            row.Rebounds,
			ThreePointersMade:   row.ThreePointersMade,
			Steals:              row.Steals,
			Blocks:              row.Blocks,
			Minutes:             row.Minutes,
			FieldGoalsMade:      row.FieldGoalsMade,
			FieldGoalsAttempted: row.FieldGoalsAttempted,
			FreeThrowsMade:      row.FreeThrowsMade,
			FreeThrowsAttempted: row.FreeThrowsAttempted,
			OffensiveRebounds:   row.OffensiveRebounds,
			Turnovers:           row.Turnovers,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].GameDate.After(records[j].GameDate)
	})

	// Rest days come from the full chronological sequence so that later
	// windowing still reports correct values for every game.
	for i := 0; i < len(records)-1; i++ {
		delta := int(records[i].GameDate.Sub(records[i+1].GameDate).Hours() / 24)
		rest := delta - 1
		if rest < 0 {
			rest = 0
		}
		records[i].DaysRest = &rest
	}

	return records, dropped
}
