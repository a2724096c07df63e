// Package storage provides SQLite-based persistence for save slots and
// run history. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
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

// RunEntry represents one finished play session.
type RunEntry struct {
	ID        int64
	Slot      string
	Coins     int
	Raiders   int
	Duration  int // seconds
	CreatedAt time.Time
}

// SlotStats contains aggregated statistics for a save slot.
type SlotStats struct {
	Slot       string
	RunCount   int
	BestCoins  int
	AvgCoins   float64
	TotalKills int64
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS save_slots (
			slot TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slot TEXT NOT NULL,
			coins INTEGER NOT NULL DEFAULT 0,
			raiders INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_slot ON runs(slot);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(slot, coins DESC);
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

// SaveSlot upserts the serialized save record for the given slot.
func (s *Store) SaveSlot(slot, data string) error {
	_, err := s.db.Exec(
		`INSERT INTO save_slots (slot, data, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		slot, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %s: %w", slot, err)
	}
	return nil
}

// LoadSlot retrieves the serialized save record for the given slot.
// Returns empty string and no error when the slot has never been saved.
func (s *Store) LoadSlot(slot string) (string, error) {
	var data string
	err := s.db.QueryRow(
		"SELECT data FROM save_slots WHERE slot = ?",
		slot,
	).Scan(&data)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot load slot %s: %w", slot, err)
	}
	return data, nil
}

// DeleteSlot removes a save slot and its run history.
func (s *Store) DeleteSlot(slot string) error {
	if _, err := s.db.Exec("DELETE FROM save_slots WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete slot %s: %w", slot, err)
	}
	if _, err := s.db.Exec("DELETE FROM runs WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete runs for slot %s: %w", slot, err)
	}
	return nil
}

// RecordRun appends a finished session to the run history.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(entry RunEntry) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (slot, coins, raiders, duration_secs) VALUES (?, ?, ?, ?)",
		entry.Slot, entry.Coins, entry.Raiders, entry.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs for the given slot.
func (s *Store) RecentRuns(slot string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, slot, coins, raiders, duration_secs, created_at
		 FROM runs
		 WHERE slot = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		slot, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		var e RunEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Slot, &e.Coins, &e.Raiders, &e.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestRun returns the run with the most coins for the given slot.
// Returns nil if the slot has no runs.
func (s *Store) BestRun(slot string) (*RunEntry, error) {
	var e RunEntry
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, slot, coins, raiders, duration_secs, created_at
		 FROM runs
		 WHERE slot = ?
		 ORDER BY coins DESC, created_at DESC
		 LIMIT 1`,
		slot,
	).Scan(&e.ID, &e.Slot, &e.Coins, &e.Raiders, &e.Duration, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	e.CreatedAt = parseTimestamp(createdAt)
	return &e, nil
}

// GetSlotStats retrieves aggregated statistics for a save slot.
func (s *Store) GetSlotStats(slot string) (*SlotStats, error) {
	stats := &SlotStats{Slot: slot}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(coins), 0), COALESCE(AVG(coins), 0), COALESCE(SUM(raiders), 0)
		 FROM runs WHERE slot = ?`,
		slot,
	).Scan(&stats.RunCount, &stats.BestCoins, &stats.AvgCoins, &stats.TotalKills)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get slot stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE slot = ? ORDER BY created_at DESC LIMIT 1`,
		slot,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp handles the driver returning datetimes as either
// time.Time or the SQLite text format.
func parseTimestamp(v any) time.Time {
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
