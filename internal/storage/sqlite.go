// Package storage provides SQLite-based persistence for solved levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
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

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is one solved level. Results saved during the same play session
// share a RunID.
type Result struct {
	ID         int64
	RunID      string
	MapSet     string
	LevelIndex int
	LevelName  string
	Moves      int
	CreatedAt  time.Time
}

// NewRunID returns a fresh identifier for a play session.
func NewRunID() string {
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL,
			map_set TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			level_name TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_level ON results(map_set, level_index, moves);
		CREATE INDEX IF NOT EXISTS idx_results_run ON results(run_id);
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

// SaveResult records a solved level. A missing RunID is generated.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.RunID == "" {
		r.RunID = NewRunID()
	}
	if r.MapSet == "" {
		return 0, errors.New("storage: result has no map set")
	}

	res, err := s.db.Exec(
		`INSERT INTO results (run_id, map_set, level_index, level_name, moves)
		 VALUES (?, ?, ?, ?, ?)`,
		r.RunID, r.MapSet, r.LevelIndex, r.LevelName, r.Moves,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestResults returns the fewest-moves result of every solved level in
// the map set, ordered by level index.
func (s *Store) BestResults(mapSet string) ([]Result, error) {
	// SQLite takes the bare columns from the row holding MIN(moves).
	rows, err := s.db.Query(
		`SELECT id, run_id, map_set, level_index, level_name, MIN(moves), created_at
		 FROM results
		 WHERE map_set = ?
		 GROUP BY level_index
		 ORDER BY level_index`,
		mapSet,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best results: %w", err)
	}
	return scanResults(rows)
}

// LevelBest returns the fewest moves any run needed for a level.
// ok is false when the level has never been solved.
func (s *Store) LevelBest(mapSet string, levelIndex int) (moves int, ok bool, err error) {
	var best sql.NullInt64
	err = s.db.QueryRow(
		"SELECT MIN(moves) FROM results WHERE map_set = ? AND level_index = ?",
		mapSet, levelIndex,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query level best: %w", err)
	}

	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// RecentResults returns the latest results across all map sets, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, map_set, level_index, level_name, moves, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent results: %w", err)
	}
	return scanResults(rows)
}

// RunResults returns the results of one play session in the order they were saved.
func (s *Store) RunResults(runID string) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, map_set, level_index, level_name, moves, created_at
		 FROM results
		 WHERE run_id = ?
		 ORDER BY id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run results: %w", err)
	}
	return scanResults(rows)
}

// MapSets lists the map sets that have at least one result.
func (s *Store) MapSets() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT map_set FROM results ORDER BY map_set")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query map sets: %w", err)
	}
	defer rows.Close()

	var sets []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sets = append(sets, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sets, nil
}

// ClearResults deletes all results for the given map set.
func (s *Store) ClearResults(mapSet string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE map_set = ?", mapSet)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.MapSet, &r.LevelIndex, &r.LevelName, &r.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
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
