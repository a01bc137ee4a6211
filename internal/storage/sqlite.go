// Package storage provides SQLite-based persistence for leaderboards,
// achievements and player preferences.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry is the best score of one player on a board.
type ScoreEntry struct {
	Rank       int
	PlayerID   string
	PlayerName string
	Score      int64
	CreatedAt  time.Time // when the best score was first reported
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Single connection: concurrent callers queue on it.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS players (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			board_id TEXT NOT NULL,
			player_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(board_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_scores_player ON scores(board_id, player_id);

		CREATE TABLE IF NOT EXISTS achievements (
			player_id TEXT NOT NULL,
			achievement_id TEXT NOT NULL,
			percent REAL NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (player_id, achievement_id)
		);

		CREATE TABLE IF NOT EXISTS prefs (
			scope TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (scope, key)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// EnsurePlayer registers a player id with a display name. An existing
// player keeps its id and gets the new name.
func (s *Store) EnsurePlayer(id, name string) error {
	_, err := s.db.Exec(
		`INSERT INTO players (id, name) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		id, name,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save player: %w", err)
	}
	return nil
}

// SaveScore records a score reported by a player on a board.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(boardID, playerID string, score int64) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (board_id, player_id, score) VALUES (?, ?, ?)",
		boardID, playerID, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the best score of each player on a board, best first.
func (s *Store) TopScores(boardID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`WITH ranked AS (
			SELECT player_id, score, created_at,
				ROW_NUMBER() OVER (PARTITION BY player_id ORDER BY score DESC, id ASC) AS pos,
				MIN(id) OVER (PARTITION BY player_id) AS first_id
			FROM scores
			WHERE board_id = ?
		 )
		 SELECT r.player_id, COALESCE(p.name, ''), r.score, r.created_at
		 FROM ranked r
		 LEFT JOIN players p ON p.id = r.player_id
		 WHERE r.pos = 1
		 ORDER BY r.score DESC, r.first_id ASC
		 LIMIT ?`,
		boardID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.PlayerID, &e.PlayerName, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Rank = len(entries) + 1
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// PlayerBest returns the best score of a player on a board and its rank,
// 1 plus the number of players with a strictly better best. found is false
// when the player has no score on the board.
func (s *Store) PlayerBest(boardID, playerID string) (score int64, rank int, found bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE board_id = ? AND player_id = ?",
		boardID, playerID,
	).Scan(&best)
	if err != nil {
		return 0, 0, false, fmt.Errorf("storage: cannot query player best: %w", err)
	}
	if !best.Valid {
		return 0, 0, false, nil
	}

	var better int
	err = s.db.QueryRow(
		`SELECT COUNT(*) FROM (
			SELECT player_id FROM scores
			WHERE board_id = ?
			GROUP BY player_id
			HAVING MAX(score) > ?
		 )`,
		boardID, best.Int64,
	).Scan(&better)
	if err != nil {
		return 0, 0, false, fmt.Errorf("storage: cannot query rank: %w", err)
	}

	return best.Int64, better + 1, true, nil
}

// HighScore returns the highest score on a board.
// Returns 0 if no scores exist.
func (s *Store) HighScore(boardID string) (int64, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE board_id = ?",
		boardID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return score.Int64, nil
}

// ClearScores deletes all scores of a board.
func (s *Store) ClearScores(boardID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE board_id = ?", boardID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// BoardStats contains aggregated statistics for a board.
type BoardStats struct {
	BoardID    string
	Reports    int
	Players    int
	Best       int64
	LastReport time.Time
}

// Stats retrieves aggregated statistics for every board with scores.
func (s *Store) Stats() ([]BoardStats, error) {
	rows, err := s.db.Query(
		`SELECT board_id, COUNT(*), COUNT(DISTINCT player_id), MAX(score), MAX(created_at)
		 FROM scores
		 GROUP BY board_id
		 ORDER BY board_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get board stats: %w", err)
	}
	defer rows.Close()

	var stats []BoardStats
	for rows.Next() {
		var b BoardStats
		var last any
		if err := rows.Scan(&b.BoardID, &b.Reports, &b.Players, &b.Best, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		b.LastReport = parseTime(last)
		stats = append(stats, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// parseTime converts a DATETIME column, which the driver may return as a
// time.Time or as text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(time.DateTime, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
