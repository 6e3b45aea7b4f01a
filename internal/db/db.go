// Package db owns the SQLite connection and schema.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB with nlg-specific helpers. One DB is opened at process
// start and injected into every store; nothing reaches for it as a global.
type DB struct {
	*sql.DB
	path string
}

// Open creates or opens the SQLite database at the given path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// OpenMemory creates an in-memory SQLite database (useful for testing).
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Every pooled connection would otherwise get its own empty memory DB.
	sqlDB.SetMaxOpenConns(1)

	d := &DB{DB: sqlDB, path: ":memory:"}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// Path returns the location of the database file.
func (d *DB) Path() string { return d.path }

// migrate runs all schema migrations.
func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

// schema contains the full database schema. The response payload is stored as
// an opaque JSON blob; a response row belongs to exactly one bot.
const schema = `
CREATE TABLE IF NOT EXISTS bots (
    bot_id TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT,
    rasa_version TEXT NOT NULL,
    last_modified INTEGER NOT NULL,
    PRIMARY KEY (bot_id)
);

CREATE TABLE IF NOT EXISTS responses (
    bot_id TEXT NOT NULL,
    resp_id TEXT NOT NULL,
    data TEXT NOT NULL,
    last_modified INTEGER NOT NULL,
    PRIMARY KEY (bot_id, resp_id)
);

CREATE INDEX IF NOT EXISTS idx_responses_bot ON responses(bot_id);

CREATE TABLE IF NOT EXISTS imports (
    id TEXT PRIMARY KEY,
    bot_id TEXT NOT NULL,
    source TEXT NOT NULL DEFAULT 'upload',
    item_count INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_imports_bot ON imports(bot_id, created_at);
`
