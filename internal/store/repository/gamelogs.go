package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/A1Marky/premium-nba-api/internal/provider"
	"github.com/A1Marky/premium-nba-api/internal/store"
)

// GameLogRepository handles archived game log data access.
type GameLogRepository struct {
	db *store.Database
}

// NewGameLogRepository creates a new game log repository.
func NewGameLogRepository(db *store.Database) *GameLogRepository {
	return &GameLogRepository{db: db}
}

// UpsertGameLog archives every row of a fetched game log. Rows for
// games already archived are refreshed in place. The conflict key is
// (player_id, game_date, matchup) with the date stored canonically,
// because different sources assign different game IDs to the same
// physical game and archiving it twice would double-count it later.
func (r *GameLogRepository) UpsertGameLog(ctx context.Context, gameLog *provider.GameLog) error {
	query := `
		INSERT INTO player_game_logs (player_id, season, game_id, game_date, matchup, minutes,
			points, assists, rebounds, three_pointers_made, steals, blocks,
			field_goals_made, field_goals_attempted, free_throws_made, free_throws_attempted,
			offensive_rebounds, turnovers)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (player_id, game_date, matchup) DO UPDATE SET
			season = EXCLUDED.season,
			game_id = EXCLUDED.game_id,
			minutes = EXCLUDED.minutes,
			points = EXCLUDED.points,
			assists = EXCLUDED.assists,
			rebounds = EXCLUDED.rebounds,
			three_pointers_made = EXCLUDED.three_pointers_made,
			steals = EXCLUDED.steals,
			blocks = EXCLUDED.blocks,
			field_goals_made = EXCLUDED.field_goals_made,
			field_goals_attempted = EXCLUDED.field_goals_attempted,
			free_throws_made = EXCLUDED.free_throws_made,
			free_throws_attempted = EXCLUDED.free_throws_attempted,
			offensive_rebounds = EXCLUDED.offensive_rebounds,
			turnovers = EXCLUDED.turnovers,
			fetched_at = NOW()
	`

	for _, row := range gameLog.Rows {
		_, err := r.db.DB().ExecContext(ctx, query,
			gameLog.PlayerID, gameLog.Season, row.GameID, canonicalDate(row.GameDate), row.Matchup, row.Minutes,
			row.Points, row.Assists, row.Rebounds, row.ThreePointersMade, row.Steals, row.Blocks,
			row.FieldGoalsMade, row.FieldGoalsAttempted, row.FreeThrowsMade, row.FreeThrowsAttempted,
			row.OffensiveRebounds, row.Turnovers,
		)
		if err != nil {
			return fmt.Errorf("upserting game log row %s: %w", row.GameID, err)
		}
	}

	return nil
}

// GetGameLog returns the archived game log for a player, optionally
// restricted to one season. Ordering is left to the normalizer, which
// sorts canonically by parsed date.
func (r *GameLogRepository) GetGameLog(ctx context.Context, playerID, season string) (*provider.GameLog, error) {
	query := `
		SELECT game_id, game_date, matchup, minutes,
			points, assists, rebounds, three_pointers_made, steals, blocks,
			field_goals_made, field_goals_attempted, free_throws_made, free_throws_attempted,
			offensive_rebounds, turnovers
		FROM player_game_logs
		WHERE player_id = $1 AND ($2 = '' OR season = $2)
		ORDER BY game_date DESC
	`

	rows, err := r.db.DB().QueryContext(ctx, query, playerID, season)
	if err != nil {
		return nil, fmt.Errorf("querying archived game log: %w", err)
	}
	defer rows.Close()

	var logRows []provider.GameLogRow
	for rows.Next() {
		var row provider.GameLogRow
		err := rows.Scan(
			&row.GameID, &row.GameDate, &row.Matchup, &row.Minutes,
			&row.Points, &row.Assists, &row.Rebounds, &row.ThreePointersMade, &row.Steals, &row.Blocks,
			&row.FieldGoalsMade, &row.FieldGoalsAttempted, &row.FreeThrowsMade, &row.FreeThrowsAttempted,
			&row.OffensiveRebounds, &row.Turnovers,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning archived game log: %w", err)
		}
		logRows = append(logRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(logRows) == 0 {
		return nil, fmt.Errorf("player %s season %q: %w", playerID, season, provider.ErrNotFound)
	}

	return &provider.GameLog{PlayerID: playerID, Season: season, Rows: logRows}, nil
}

// gameDateLayouts covers the date spellings the sources archive rows
// with.
var gameDateLayouts = []string{
	"Jan 02, 2006",
	"2006-01-02",
	"01/02/2006",
}

// canonicalDate rewrites a provider-native game date to YYYY-MM-DD so
// the same game always archives under the same key regardless of which
// source delivered it. Unparsable dates pass through untouched.
func canonicalDate(s string) string {
	s = strings.TrimSpace(s)
	normalized := s
	if len(normalized) >= 3 {
		// Upstream month abbreviations arrive uppercased ("APR 10, 2024").
		normalized = strings.ToUpper(normalized[:1]) + strings.ToLower(normalized[1:3]) + normalized[3:]
	}
	for _, layout := range gameDateLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}
