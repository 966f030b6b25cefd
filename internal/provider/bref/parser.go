package bref

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/A1Marky/premium-nba-api/internal/provider"
	"github.com/PuerkitoBio/goquery"
)

// parseGameLogTable extracts game rows from a player game-log page.
// Basketball Reference tags every cell with a data-stat attribute, so
// extraction keys on those rather than column position.
func parseGameLogTable(html string) ([]provider.GameLogRow, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing game log page: %w", err)
	}

	var rows []provider.GameLogRow
	doc.Find("table#pgl_basic tbody tr").Each(func(i int, tr *goquery.Selection) {
		// Repeated header rows and DNP rows carry a class; skip them.
		if class, _ := tr.Attr("class"); class != "" {
			return
		}

		stat := func(name string) string {
			return strings.TrimSpace(tr.Find(fmt.Sprintf("td[data-stat=%q]", name)).Text())
		}

		date := stat("date_game")
		team := stat("team_id")
		opponent := stat("opp_id")
		if date == "" || team == "" || opponent == "" {
			return
		}

		matchup := fmt.Sprintf("%s vs. %s", team, opponent)
		if stat("game_location") == "@" {
			matchup = fmt.Sprintf("%s @ %s", team, opponent)
		}

		rows = append(rows, provider.GameLogRow{
			GameID:              fmt.Sprintf("%s-%s", date, opponent),
			GameDate:            date, // already YYYY-MM-DD
			Matchup:             matchup,
			Minutes:             parseMinutes(stat("mp")),
			Points:              atoi(stat("pts")),
			Assists:             atoi(stat("ast")),
			Rebounds:            atoi(stat("trb")),
			ThreePointersMade:   atoi(stat("fg3")),
			Steals:              atoi(stat("stl")),
			Blocks:              atoi(stat("blk")),
			FieldGoalsMade:      atoi(stat("fg")),
			FieldGoalsAttempted: atoi(stat("fga")),
			FreeThrowsMade:      atoi(stat("ft")),
			FreeThrowsAttempted: atoi(stat("fta")),
			OffensiveRebounds:   atoi(stat("orb")),
			Turnovers:           atoi(stat("tov")),
		})
	})

	return rows, nil
}

// parseMinutes converts a "MM:SS" cell into fractional minutes.
func parseMinutes(s string) float64 {
	if s == "" {
		return 0
	}
	parts := strings.SplitN(s, ":", 2)
	minutes, _ := strconv.Atoi(parts[0])
	seconds := 0
	if len(parts) == 2 {
		seconds, _ = strconv.Atoi(parts[1])
	}
	return float64(minutes) + float64(seconds)/60
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
