// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ROCK the Vote API server.

ROCK the Vote is a daily red-or-blue poll for Pebble watches. Each day has
one prompt (would you rather, who would win, this or that); each watch
gets one vote per day, and the app shows today's and yesterday's counts.

# Starting the Server

With no configuration, the server stores votes in a local SQLite file:

	go run .

Or with flags:

	go run . -p 8000 -t postgres -d "postgres://..."

# Configuration

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite, postgres, pgx, redis or memory
  - DATABASE_URL (-d): connection string (default: file:wyr_persistent.db)
  - RTV_TIMEZONE (-tz): zone deciding when a day ends (default: UTC)
  - RTV_PROMPTS_FILE (-prompts): JSON prompt calendar
  - VOTER_ID_SALT (-voter-salt): HMAC key for stored voter IDs
  - LOG_FORMAT (-log): auto, text or json

# Architecture

  - ledger: day rollover and one-vote-per-day bookkeeping
  - store: memory, SQL and Redis backends for the ledger
  - prompts: yearly prompt calendar
  - handlers: HTTP request handlers (voting, results)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, response helpers
  - models: Response types
  - auth: Voter ID validation and hashing
  - db: SQL connection and schema creation
  - cliparse: Configuration parsing
  - logging: slog handler selection

See package documentation for each component.
*/
package main
