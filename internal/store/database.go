package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Database wraps the PostgreSQL archive of raw provider game logs. The
// archive keeps the service answering when the upstream is down; it
// never stores computed metrics.
type Database struct {
	conn *sql.DB
	dsn  string
}

// NewDatabase opens and verifies a connection to the archive database.
func NewDatabase(dsn string) (*Database, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{
		conn: db,
		dsn:  dsn,
	}, nil
}

// Close closes the database connection.
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB for queries.
func (db *Database) DB() *sql.DB {
	return db.conn
}

// EnsureSchema creates the archive tables if they don't exist yet.
// Uniqueness keys on (player_id, game_date, matchup) rather than the
// provider game ID: sources assign different IDs to the same physical
// game, and the archive must hold each game once no matter which
// source delivered it.
func (db *Database) EnsureSchema() error {
	log.Println("Ensuring archive schema...")

	schema := `
		CREATE TABLE IF NOT EXISTS player_game_logs (
			id                    SERIAL PRIMARY KEY,
			player_id             VARCHAR(32) NOT NULL,
			season                VARCHAR(16) NOT NULL DEFAULT '',
			game_id               VARCHAR(32) NOT NULL,
			game_date             VARCHAR(32) NOT NULL,
			matchup               VARCHAR(32) NOT NULL,
			minutes               DOUBLE PRECISION NOT NULL DEFAULT 0,
			points                INT NOT NULL DEFAULT 0,
			assists               INT NOT NULL DEFAULT 0,
			rebounds              INT NOT NULL DEFAULT 0,
			three_pointers_made   INT NOT NULL DEFAULT 0,
			steals                INT NOT NULL DEFAULT 0,
			blocks                INT NOT NULL DEFAULT 0,
			field_goals_made      INT NOT NULL DEFAULT 0,
			field_goals_attempted INT NOT NULL DEFAULT 0,
			free_throws_made      INT NOT NULL DEFAULT 0,
			free_throws_attempted INT NOT NULL DEFAULT 0,
			offensive_rebounds    INT NOT NULL DEFAULT 0,
			turnovers             INT NOT NULL DEFAULT 0,
			fetched_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (player_id, game_date, matchup)
		);
		CREATE INDEX IF NOT EXISTS idx_player_game_logs_player_season
			ON player_game_logs (player_id, season);
	`

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(schema); err != nil {
		return fmt.Errorf("failed to create archive schema: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Println("✓ Archive schema ready")
	return nil
}

// HealthCheck performs a health check on the database.
func (db *Database) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return db.conn.PingContext(ctx)
}
