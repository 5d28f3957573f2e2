// Package sqlite reads keyword bookmarks from the places.sqlite database
// inside a Firefox profile directory. The database is owned by the browser;
// connections are strictly read-only and no writes are ever issued.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a read-only SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database read-only and verifies the connection.
func (db *DB) Open() error {
	// The busy timeout covers the window where Firefox briefly holds the
	// lock while checkpointing; a running Firefox with an exclusive lock
	// still fails, which callers surface as a store-unavailable error.
	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", db.path))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection is plenty for one short scan per load.
	conn.SetMaxOpenConns(1)

	// Verify connection; mode=ro fails here when the file is missing.
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	db.db = conn
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}
