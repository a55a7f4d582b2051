// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Database types accepted by Open
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypePgx      = "pgx"
)

// DriverName maps a database type to its registered database/sql driver.
// The caller must import the driver package.
func DriverName(dbType string) (string, error) {
	switch dbType {
	case TypeSQLite:
		return "sqlite", nil // modernc.org/sqlite
	case TypePostgres:
		return "postgres", nil // github.com/lib/pq
	case TypePgx:
		return "pgx", nil // github.com/jackc/pgx/v5/stdlib
	default:
		return "", fmt.Errorf("unsupported database type %q", dbType)
	}
}

// Open connects, verifies the connection and creates the schema
func Open(dbType, url string) (*sql.DB, error) {
	driver, err := DriverName(dbType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// SQLite allows one writer; a single connection also keeps
	// :memory: databases from splitting across connections.
	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}
