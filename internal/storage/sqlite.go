// Package storage provides SQLite-based persistence for level completion runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is one completed level.
type Run struct {
	ID        int64
	LevelID   int
	Moves     int
	Pushes    int
	Restarts  int
	Duration  time.Duration
	CreatedAt time.Time
}

// LevelStats aggregates every recorded run of one level.
type LevelStats struct {
	LevelID     int
	Runs        int
	FewestMoves int
	FewestPush  int
	Fastest     time.Duration
	LastPlayed  time.Time
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
		CREATE TABLE IF NOT EXISTS level_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			pushes INTEGER NOT NULL DEFAULT 0,
			restarts INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_level_runs_level ON level_runs(level_id);
		CREATE INDEX IF NOT EXISTS idx_level_runs_best ON level_runs(level_id, moves, duration_ms);
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

// SaveRun records a completed level. Returns the ID of the inserted record.
func (s *Store) SaveRun(run Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO level_runs (level_id, moves, pushes, restarts, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		run.LevelID, run.Moves, run.Pushes, run.Restarts, run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the best runs of a level: fewest moves first, then
// fastest.
func (s *Store) TopRuns(levelID, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, level_id, moves, pushes, restarts, duration_ms, created_at
		 FROM level_runs
		 WHERE level_id = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the most recently recorded runs across all levels.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, level_id, moves, pushes, restarts, duration_ms, created_at
		 FROM level_runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ms int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LevelID, &r.Moves, &r.Pushes, &r.Restarts, &ms, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// StatsFor returns aggregated statistics for one level. ok is false when
// the level has no recorded runs.
func (s *Store) StatsFor(levelID int) (stats LevelStats, ok bool, err error) {
	all, err := s.AllLevelStats()
	if err != nil {
		return LevelStats{}, false, err
	}
	for _, st := range all {
		if st.LevelID == levelID {
			return st, true, nil
		}
	}
	return LevelStats{LevelID: levelID}, false, nil
}

// AllLevelStats retrieves statistics for every level with at least one run,
// ordered by level id.
func (s *Store) AllLevelStats() ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(moves), MIN(pushes), MIN(duration_ms), MAX(created_at)
		 FROM level_runs
		 GROUP BY level_id
		 ORDER BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var st LevelStats
		var ms int64
		var lastPlayed any
		if err := rows.Scan(&st.LevelID, &st.Runs, &st.FewestMoves, &st.FewestPush, &ms, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.Fastest = time.Duration(ms) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		stats = append(stats, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ErrNoLevel is returned by ClearRuns for a non-positive level id.
var ErrNoLevel = errors.New("storage: level id must be positive")

// ClearRuns deletes every recorded run of a level.
func (s *Store) ClearRuns(levelID int) error {
	if levelID <= 0 {
		return ErrNoLevel
	}
	if _, err := s.db.Exec("DELETE FROM level_runs WHERE level_id = ?", levelID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}
