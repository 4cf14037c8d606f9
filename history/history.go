/*
File    : golox/history/history.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package history implements optional REPL session-history persistence:
// every line the REPL evaluates, plus a short result string for it (the
// REPL records "ok", "<error>" or "<panic>"), is recorded to a local SQLite
// file when `golox repl --history <path>` is
// given, via sqlx's connect/exec/select idiom rather than hand-rolled
// `database/sql`.
package history

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	line       TEXT NOT NULL,
	result     TEXT NOT NULL,
	created_at DATETIME NOT NULL
);`

// Entry is one recorded REPL interaction.
type Entry struct {
	ID        int64     `db:"id"`
	Line      string    `db:"line"`
	Result    string    `db:"result"`
	CreatedAt time.Time `db:"created_at"`
}

// Store wraps a sqlx.DB handle to the REPL's session-history file.
type Store struct {
	db *sqlx.DB
}

// Open connects to (creating if absent) the SQLite database at path and
// ensures the history table exists.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends one REPL line and its rendered result to the history.
func (s *Store) Record(line, result string) error {
	_, err := s.db.Exec(
		`INSERT INTO history (line, result, created_at) VALUES (?, ?, ?)`,
		line, result, time.Now(),
	)
	return err
}

// Recent returns the last n history entries, most recent first.
func (s *Store) Recent(n int) ([]Entry, error) {
	var entries []Entry
	err := s.db.Select(&entries,
		`SELECT id, line, result, created_at FROM history ORDER BY id DESC LIMIT ?`, n)
	return entries, err
}
