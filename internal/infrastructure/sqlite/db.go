// Package sqlite persists all application state in one embedded SQLite file.
// A single writer process owns the file; transactions provide the
// per-collection mutual-exclusion boundary around identifier allocation and
// payment reconciliation.
package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Querier is satisfied by *sqlx.DB and *sqlx.Tx, so every repository works
// both on the shared handle and inside a transaction.
type Querier interface {
	sqlx.Queryer
	sqlx.Execer
}

// Open opens (creating if needed) the database file and applies the schema.
// Path ":memory:" yields a throwaway in-memory store for tests.
func Open(path string) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on", path)
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// SQLite allows one writer at a time; a single pooled connection keeps
	// allocation and reconciliation sequences strictly ordered.
	db.SetMaxOpenConns(1)

	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
