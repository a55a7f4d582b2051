// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// Statements run one at a time so every driver accepts them.
// The same DDL is valid for SQLite and PostgreSQL.
var schema = []string{
	// One row per day-of-month, reused every month
	`CREATE TABLE IF NOT EXISTS vote_count (
    question_number INTEGER PRIMARY KEY CHECK (question_number BETWEEN 1 AND 31),
    red_vote_count INTEGER NOT NULL DEFAULT 0 CHECK (red_vote_count >= 0),
    blue_vote_count INTEGER NOT NULL DEFAULT 0 CHECK (blue_vote_count >= 0)
)`,

	// Today's voters only; emptied at every day change
	`CREATE TABLE IF NOT EXISTS responders (
    voter_id TEXT PRIMARY KEY,
    response BOOLEAN NOT NULL
)`,
}
