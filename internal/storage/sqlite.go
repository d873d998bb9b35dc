// Package storage provides the SQLite replay journal.
// A replay is the game id, seed and display size of a session plus the raw
// button state and elapsed time of every tick; feeding those back into a
// fresh session reproduces the run exactly.
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

	"github.com/vovakirdan/matrix-arcade/internal/core"
)

// ErrNotFound is returned when a session id does not exist.
var ErrNotFound = errors.New("storage: session not found")

// Store manages the SQLite database connection for the replay journal.
type Store struct {
	db *sql.DB
}

// Meta is what a session needs to be replayed: the game, the seed, the
// display size and the effective config as YAML.
type Meta struct {
	GameID string
	Seed   int64
	Rows   int
	Cols   int
	Config string
}

// SessionInfo describes one recorded session.
type SessionInfo struct {
	ID int64
	Meta
	Ticks      uint64
	FinalState string // Empty while the session is still being recorded
	CreatedAt  time.Time
}

// TickRecord is one tick of recorded input.
type TickRecord struct {
	Tick    uint64
	Elapsed time.Duration
	Buttons core.Buttons
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			grid_rows INTEGER NOT NULL,
			grid_cols INTEGER NOT NULL,
			config TEXT NOT NULL DEFAULT '',
			ticks INTEGER NOT NULL DEFAULT 0,
			final_state TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_game_id ON sessions(game_id);

		CREATE TABLE IF NOT EXISTS ticks (
			session_id INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			buttons INTEGER NOT NULL,
			PRIMARY KEY (session_id, tick)
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

// CreateSession records the start of a session and returns its id.
func (s *Store) CreateSession(m Meta) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (game_id, seed, grid_rows, grid_cols, config) VALUES (?, ?, ?, ?, ?)",
		m.GameID, m.Seed, m.Rows, m.Cols, m.Config,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// AppendTicks stores ticks for a session in one transaction.
func (s *Store) AppendTicks(sessionID int64, ticks []TickRecord) error {
	if len(ticks) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	stmt, err := tx.Prepare("INSERT INTO ticks (session_id, tick, elapsed_ns, buttons) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range ticks {
		if _, err := stmt.Exec(sessionID, int64(t.Tick), int64(t.Elapsed), int(t.Buttons)); err != nil {
			return fmt.Errorf("storage: cannot insert tick %d: %w", t.Tick, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit ticks: %w", err)
	}
	return nil
}

// FinishSession stores the tick count and final game state of a session.
func (s *Store) FinishSession(sessionID int64, ticks uint64, finalState string) error {
	res, err := s.db.Exec(
		"UPDATE sessions SET ticks = ?, final_state = ? WHERE id = ?",
		int64(ticks), finalState, sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Sessions retrieves the most recent sessions, newest first.
func (s *Store) Sessions(limit int) ([]SessionInfo, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, grid_rows, grid_cols, config, ticks, final_state, created_at
		 FROM sessions
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionInfo
	for rows.Next() {
		info, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// Session retrieves one session by id.
func (s *Store) Session(id int64) (SessionInfo, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, seed, grid_rows, grid_cols, config, ticks, final_state, created_at
		 FROM sessions
		 WHERE id = ?`,
		id,
	)
	info, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionInfo{}, ErrNotFound
	}
	return info, err
}

// Ticks retrieves every recorded tick of a session in order.
func (s *Store) Ticks(sessionID int64) ([]TickRecord, error) {
	rows, err := s.db.Query(
		`SELECT tick, elapsed_ns, buttons
		 FROM ticks
		 WHERE session_id = ?
		 ORDER BY tick`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query ticks: %w", err)
	}
	defer rows.Close()

	var ticks []TickRecord
	for rows.Next() {
		var tick, elapsed int64
		var buttons int
		if err := rows.Scan(&tick, &elapsed, &buttons); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ticks = append(ticks, TickRecord{
			Tick:    uint64(tick),
			Elapsed: time.Duration(elapsed),
			Buttons: core.Buttons(buttons) & core.ButtonsMask,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return ticks, nil
}

// DeleteSession removes a session and its ticks.
func (s *Store) DeleteSession(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM ticks WHERE session_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete ticks: %w", err)
	}
	res, err := tx.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (SessionInfo, error) {
	var info SessionInfo
	var ticks int64
	var createdAt any
	err := sc.Scan(&info.ID, &info.GameID, &info.Seed, &info.Rows, &info.Cols,
		&info.Config, &ticks, &info.FinalState, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return info, err
	}
	if err != nil {
		return info, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	info.Ticks = uint64(ticks)

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		info.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			info.CreatedAt = parsed
		}
	}
	return info, nil
}
