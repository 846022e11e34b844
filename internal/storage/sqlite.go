// Package storage provides SQLite-based match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only finished match summaries are stored; a match in progress is never saved
// or restored.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// End reasons recorded with a match.
const (
	EndTarget = "target" // A player reached the target score
	EndQuit   = "quit"   // The session was closed mid-match
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchResult is the summary of one match between two seats.
type MatchResult struct {
	ID        int64
	MatchID   string // UUID assigned when the match started
	GameID    string
	Color1    string
	Color2    string
	Score1    int
	Score2    int
	Rounds    int    // Rounds completed
	Winner    string // Winning color, empty if undecided
	EndReason string // EndTarget or EndQuit
	Duration  int    // Duration in seconds
	Seed      int64
	CreatedAt time.Time
}

// ColorStats aggregates results per player color.
type ColorStats struct {
	Color   string
	Matches int
	Wins    int
	Points  int // Rounds won across all matches
}

// NewMatchID returns a fresh match identifier.
func NewMatchID() string {
	return uuid.NewString()
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			game_id TEXT NOT NULL,
			color1 TEXT NOT NULL,
			color2 TEXT NOT NULL,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			rounds INTEGER NOT NULL DEFAULT 0,
			winner TEXT,
			end_reason TEXT NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
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

// SaveMatch records a finished match. A missing MatchID is generated.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(result MatchResult) (int64, error) {
	if result.MatchID == "" {
		result.MatchID = NewMatchID()
	}

	var winner sql.NullString
	if result.Winner != "" {
		winner = sql.NullString{String: result.Winner, Valid: true}
	}

	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, game_id, color1, color2, score1, score2, rounds, winner, end_reason, duration_secs, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.MatchID,
		result.GameID,
		result.Color1,
		result.Color2,
		result.Score1,
		result.Score2,
		result.Rounds,
		winner,
		result.EndReason,
		result.Duration,
		result.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const matchColumns = `id, match_id, game_id, color1, color2, score1, score2,
	rounds, winner, end_reason, duration_secs, seed, created_at`

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(row scanner) (MatchResult, error) {
	var result MatchResult
	var winner sql.NullString
	var createdAt any

	err := row.Scan(
		&result.ID,
		&result.MatchID,
		&result.GameID,
		&result.Color1,
		&result.Color2,
		&result.Score1,
		&result.Score2,
		&result.Rounds,
		&winner,
		&result.EndReason,
		&result.Duration,
		&result.Seed,
		&createdAt,
	)
	if err != nil {
		return MatchResult{}, err
	}

	if winner.Valid {
		result.Winner = winner.String
	}
	result.CreatedAt = parseTime(createdAt)
	return result, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// MatchByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*MatchResult, error) {
	row := s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		matchID,
	)
	result, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &result, nil
}

// RecentMatches retrieves the most recent matches for the given game.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		result, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ColorTotals aggregates matches, wins and points per color for the given
// game, ordered by wins.
func (s *Store) ColorTotals(gameID string) ([]ColorStats, error) {
	rows, err := s.db.Query(
		`SELECT color, COUNT(*), SUM(CASE WHEN winner = color THEN 1 ELSE 0 END), SUM(points)
		 FROM (
			SELECT color1 AS color, score1 AS points, winner FROM matches WHERE game_id = ?
			UNION ALL
			SELECT color2 AS color, score2 AS points, winner FROM matches WHERE game_id = ?
		 )
		 GROUP BY color
		 ORDER BY 3 DESC, color`,
		gameID, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query color totals: %w", err)
	}
	defer rows.Close()

	var stats []ColorStats
	for rows.Next() {
		var cs ColorStats
		if err := rows.Scan(&cs.Color, &cs.Matches, &cs.Wins, &cs.Points); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats = append(stats, cs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// MatchCount returns the number of recorded matches for the given game.
func (s *Store) MatchCount(gameID string) (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM matches WHERE game_id = ?", gameID).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count matches: %w", err)
	}
	return n, nil
}

// ClearMatches deletes all matches for the given game.
func (s *Store) ClearMatches(gameID string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}
