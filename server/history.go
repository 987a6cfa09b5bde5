package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/katalvlaran/wordladder/game"
)

// History records finished-game outcomes (mode, move count, score — never
// the ladder itself) in SQLite, backing the score-board endpoint.
type History struct {
	db *sql.DB
}

// HistoryEntry is one finished game on the score board.
type HistoryEntry struct {
	SessionID  string    `json:"sessionId"`
	Mode       string    `json:"mode"`
	Moves      int       `json:"moves"`
	Score      int       `json:"score"`
	Won        bool      `json:"won"`
	FinishedAt time.Time `json:"finishedAt"`
}

// OpenHistory opens (and creates if missing) the SQLite database at dsn
// with WAL journaling and a busy timeout, then ensures the schema.
func OpenHistory(dsn string) (*History, error) {
	// Ensure directory exists for ./data/ladder.db, etc.
	if dir := filepath.Dir(dsn); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("server: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("server: open history db: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("server: set pragmas: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS results (
			session_id  TEXT PRIMARY KEY,
			mode        TEXT NOT NULL,
			moves       INTEGER NOT NULL,
			score       INTEGER NOT NULL,
			won         INTEGER NOT NULL,
			finished_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`); err != nil {
		return nil, fmt.Errorf("server: ensure schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close releases the underlying database handle.
func (h *History) Close() error { return h.db.Close() }

// Record stores the outcome of a finished session. Re-recording the same
// session overwrites the earlier row.
func (h *History) Record(ctx context.Context, s *game.Session) error {
	_, err := h.db.ExecContext(ctx, `
		INSERT INTO results (session_id, mode, moves, score, won, finished_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(session_id) DO UPDATE SET
			moves = excluded.moves, score = excluded.score,
			won = excluded.won, finished_at = excluded.finished_at;
	`, s.ID, string(s.Mode), len(s.Moves), s.Score, s.Won())
	if err != nil {
		return fmt.Errorf("server: record result: %w", err)
	}

	return nil
}

// TopScores returns up to limit winning games, best score first.
func (h *History) TopScores(ctx context.Context, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := h.db.QueryContext(ctx, `
		SELECT session_id, mode, moves, score, won, finished_at
		FROM results WHERE won = 1
		ORDER BY score DESC, finished_at ASC LIMIT ?;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("server: query scores: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.SessionID, &e.Mode, &e.Moves, &e.Score, &e.Won, &e.FinishedAt); err != nil {
			return nil, fmt.Errorf("server: scan score row: %w", err)
		}
		out = append(out, e)
	}

	return out, rows.Err()
}
