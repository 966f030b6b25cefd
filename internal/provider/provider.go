package provider

import (
	"context"
	"errors"
)

// ErrNotFound indicates the upstream source has no game logs for the
// requested player/season combination.
var ErrNotFound = errors.New("no game logs found")

// GameLogRow is one game line as returned by an upstream game-log source.
// Field contents stay provider-native (date strings, matchup codes);
// canonicalization happens in the analytics package.
type GameLogRow struct {
	GameID              string  `json:"game_id"`
	GameDate            string  `json:"game_date"` // e.g. "APR 10, 2024"
	Matchup             string  `json:"matchup"`   // e.g. "TOR vs. BOS" or "TOR @ BOS"
	Minutes             float64 `json:"minutes"`
	Points              int     `json:"points"`
	Assists             int     `json:"assists"`
	Rebounds            int     `json:"rebounds"`
	ThreePointersMade   int     `json:"three_pointers_made"`
	Steals              int     `json:"steals"`
	Blocks              int     `json:"blocks"`
	FieldGoalsMade      int     `json:"field_goals_made"`
	FieldGoalsAttempted int     `json:"field_goals_attempted"`
	FreeThrowsMade      int     `json:"free_throws_made"`
	FreeThrowsAttempted int     `json:"free_throws_attempted"`
	OffensiveRebounds   int     `json:"offensive_rebounds"`
	Turnovers           int     `json:"turnovers"`
}

// GameLog is a player's full set of game lines from one source.
type GameLog struct {
	PlayerID string       `json:"player_id"`
	Season   string       `json:"season,omitempty"`
	Rows     []GameLogRow `json:"rows"`
}

// GameLogSource fetches raw player game logs. Implementations own all
// I/O concerns (timeouts, retries, rate limiting); callers only ever
// see a populated log or an error.
type GameLogSource interface {
	PlayerGameLog(ctx context.Context, playerID, season string) (*GameLog, error)
}
