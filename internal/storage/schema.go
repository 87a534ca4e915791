// FILE: internal/storage/schema.go
package storage

import (
	"database/sql"
	"time"
)

// GameRecord represents a row in the games table
type GameRecord struct {
	GameID          string         `db:"game_id"`
	InitialPosition string         `db:"initial_position"`
	StalemateRule   string         `db:"stalemate_rule"`
	StartTimeUTC    time.Time      `db:"start_time_utc"`
	Winner          sql.NullString `db:"winner"` // "white" or "black" once decided
	EndReason       sql.NullString `db:"end_reason"`
	EndTimeUTC      sql.NullTime   `db:"end_time_utc"`
}

// MoveRecord represents a row in the moves table
type MoveRecord struct {
	MoveID        int64     `db:"move_id"`
	GameID        string    `db:"game_id"`
	MoveNumber    int       `db:"move_number"`
	Move          string    `db:"move"`
	PositionAfter string    `db:"position_after"`
	PlayerColor   string    `db:"player_color"` // "white" or "black"
	Captured      bool      `db:"captured"`
	MoveTimeUTC   time.Time `db:"move_time_utc"`
}

// ResultRecord is the outcome written when a game is decided
type ResultRecord struct {
	GameID     string
	Winner     string
	EndReason  string
	EndTimeUTC time.Time
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS games (
	game_id TEXT PRIMARY KEY,
	initial_position TEXT NOT NULL,
	stalemate_rule TEXT NOT NULL DEFAULT 'mover' CHECK(stalemate_rule IN ('mover', 'opponent')),
	start_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	winner TEXT CHECK(winner IN ('white', 'black')),
	end_reason TEXT,
	end_time_utc DATETIME
);

CREATE TABLE IF NOT EXISTS moves (
	move_id INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id TEXT NOT NULL,
	move_number INTEGER NOT NULL,
	move TEXT NOT NULL,
	position_after TEXT NOT NULL,
	player_color TEXT NOT NULL CHECK(player_color IN ('white', 'black')),
	captured INTEGER NOT NULL DEFAULT 0,
	move_time_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (game_id) REFERENCES games(game_id) ON DELETE CASCADE,
	UNIQUE(game_id, move_number)
);

CREATE INDEX IF NOT EXISTS idx_moves_game_id ON moves(game_id);
CREATE INDEX IF NOT EXISTS idx_games_winner ON games(winner);
`
