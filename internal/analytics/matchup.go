package analytics

// MatchupGame is a single-game line against the opponent, used for the
// most recent meeting.
type MatchupGame struct {
	GameID            string  `json:"game_id"`
	GameDate          string  `json:"game_date"` // YYYY-MM-DD
	Home              bool    `json:"home"`
	Points            int     `json:"points"`
	Assists           int     `json:"assists"`
	Rebounds          int     `json:"rebounds"`
	ThreePointersMade int     `json:"three_pointers_made"`
	Steals            int     `json:"steals"`
	Blocks            int     `json:"blocks"`
	Minutes           float64 `json:"minutes"`
}

// MatchupHistory summarizes a player's recent games against one
// opponent.
type MatchupHistory struct {
	Opponent         string                   `json:"opponent"`
	GamesAnalyzed    int                      `json:"games_analyzed"`
	Averages         map[StatCategory]Summary `json:"averages"`
	MinutesPerGame   *float64                 `json:"minutes_per_game,omitempty"`
	PerformanceTrend string                   `json:"performance_trend"`
	LastMatchup      *MatchupGame             `json:"last_matchup,omitempty"`
}

// ComputeMatchupHistory analyzes the last N qualifying games against an
// opponent (all of them when lastN <= 0). Opponent filtering happens
// before recency truncation: the result covers the N most recent games
// against that team, never N recent games thinned down. The trend is
// classified over the points series of the matchup window.
func ComputeMatchupHistory(records []GameRecord, opponentTeamID string, lastN int) MatchupHistory {
	window := TakeRecent(FilterByOpponent(records, opponentTeamID), lastN)

	averages := make(map[StatCategory]Summary, len(Categories()))
	for _, cat := range Categories() {
		averages[cat] = Summarize(Series(window, cat)).Rounded()
	}

	history := MatchupHistory{
		Opponent:         opponentTeamID,
		GamesAnalyzed:    len(window),
		Averages:         averages,
		PerformanceTrend: ClassifyTrend(Series(window, CategoryPoints)),
	}

	if len(window) == 0 {
		return history
	}

	minutes := 0.0
	for _, r := range window {
		minutes += r.Minutes
	}
	mpg := round1(minutes / float64(len(window)))
	history.MinutesPerGame = &mpg

	last := window[0]
	history.LastMatchup = &MatchupGame{
		GameID:            last.GameID,
		GameDate:          last.GameDate.Format("2006-01-02"),
		Home:              last.Home,
		Points:            last.Points,
		Assists:           last.Assists,
		Rebounds:          last.Rebounds,
		ThreePointersMade: last.ThreePointersMade,
		Steals:            last.Steals,
		Blocks:            last.Blocks,
		Minutes:           last.Minutes,
	}

	return history
}
