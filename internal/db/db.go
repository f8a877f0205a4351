// Package db opens the sqlite connection pool and bootstraps the schema.
// The pool is constructed once in main and handed to the repositories;
// nothing in this package holds global state.
package db

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	_ "github.com/glebarez/go-sqlite"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS games (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	release_year INTEGER NOT NULL,
	genre        TEXT NOT NULL,
	description  TEXT NOT NULL,
	platform     TEXT NOT NULL,
	image        TEXT NOT NULL DEFAULT '',
	owner_id     TEXT,
	created_at   DATETIME NOT NULL,
	updated_at   DATETIME NOT NULL
);`, `
CREATE UNIQUE INDEX IF NOT EXISTS idx_games_owner_title ON games (owner_id, title);`, `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at    DATETIME NOT NULL
);`}

// Connect opens the database at path and verifies the schema.
func Connect(path string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := Initialize(pool); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Initialize creates the tables and indexes if they do not exist. It is
// exported so tests can bootstrap an in-memory pool they opened
// themselves (an in-memory database exists per connection, so tests pin
// the pool to a single one before the schema runs).
func Initialize(pool *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
