// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens SQL databases and creates the schema.

# Opening

Open picks the driver for a database type, pings and creates tables:

	conn, err := db.Open(db.TypeSQLite, "file:wyr_persistent.db")

Supported types:

  - sqlite: modernc.org/sqlite (default, pure Go)
  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib

Driver packages are imported by main (and testutil), not here.

# Schema Creation

CreateSchema is safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - vote_count: red/blue counts keyed by day-of-month (question_number)
  - responders: voters of the current day with their choice

vote_count rows are never deleted. responders is emptied whenever a new
day is opened.
*/
package db
