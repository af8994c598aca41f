// Package sqlite provides SQLite-backed persistence for octoview.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

// Store is the SQLite database handle shared by the store wrappers.
type Store struct {
	db   *sql.DB
	path string
}

// schema creates the tables. The session table holds at most one row.
const schema = `
CREATE TABLE IF NOT EXISTS session (
	id         TEXT PRIMARY KEY,
	token      TEXT NOT NULL,
	login      TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);
`

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.octoview/data/octoview.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".octoview", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "octoview.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}
