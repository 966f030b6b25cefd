package nba

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/A1Marky/premium-nba-api/internal/provider"
)

// gameLogResponse matches the stats API's tabular envelope: every
// endpoint returns named result sets of headers plus untyped rows.
type gameLogResponse struct {
	ResultSets []struct {
		Name    string          `json:"name"`
		Headers []string        `json:"headers"`
		RowSet  [][]interface{} `json:"rowSet"`
	} `json:"resultSets"`
}

// parseGameLogPayload converts a raw playergamelog response body into
// typed rows. The column order varies across API revisions, so cells
// are resolved through the header index rather than by position.
func parseGameLogPayload(payload []byte) ([]provider.GameLogRow, error) {
	var resp gameLogResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, fmt.Errorf("decoding game log response: %w", err)
	}
	if len(resp.ResultSets) == 0 {
		return nil, fmt.Errorf("invalid game log payload: no result sets")
	}

	set := resp.ResultSets[0]
	index := make(map[string]int, len(set.Headers))
	for i, h := range set.Headers {
		index[strings.ToUpper(h)] = i
	}
	for _, required := range []string{"GAME_ID", "GAME_DATE", "MATCHUP", "PTS"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("invalid game log payload: missing column %s", required)
		}
	}

	rows := make([]provider.GameLogRow, 0, len(set.RowSet))
	for _, raw := range set.RowSet {
		cell := func(name string) interface{} {
			i, ok := index[name]
			if !ok || i >= len(raw) {
				return nil
			}
			return raw[i]
		}
		rows = append(rows, provider.GameLogRow{
			GameID:              asString(cell("GAME_ID")),
			GameDate:            asString(cell("GAME_DATE")),
			Matchup:             asString(cell("MATCHUP")),
			Minutes:             asFloat(cell("MIN")),
			Points:              asInt(cell("PTS")),
			Assists:             asInt(cell("AST")),
			Rebounds:            asInt(cell("REB")),
			ThreePointersMade:   asInt(cell("FG3M")),
			Steals:              asInt(cell("STL")),
			Blocks:              asInt(cell("BLK")),
			FieldGoalsMade:      asInt(cell("FGM")),
			FieldGoalsAttempted: asInt(cell("FGA")),
			FreeThrowsMade:      asInt(cell("FTM")),
			FreeThrowsAttempted: asInt(cell("FTA")),
			OffensiveRebounds:   asInt(cell("OREB")),
			Turnovers:           asInt(cell("TOV")),
		})
	}

	return rows, nil
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

func asFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, _ := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f
	}
	return 0
}

func asInt(v interface{}) int {
	return int(asFloat(v))
}
