// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tertty/ROCK-the-Vote-backend/ledger"
)

// SQLStore persists the ledger in the vote_count and responders tables.
// Queries use $N placeholders, accepted by lib/pq, pgx and modernc sqlite.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore wraps a connection whose schema already exists (see db.Open)
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ledger.ErrStorage, err)
}

func (s *SQLStore) OpenDay(ctx context.Context, day int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin open day", err)
	}
	defer tx.Rollback()

	// Never overwrite: the slot may hold counts from an earlier month
	_, err = tx.ExecContext(ctx, `
		INSERT INTO vote_count (question_number, red_vote_count, blue_vote_count)
		VALUES ($1, 0, 0)
		ON CONFLICT (question_number) DO NOTHING
	`, day)
	if err != nil {
		return storageErr("insert tally", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM responders`); err != nil {
		return storageErr("clear responders", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit open day", err)
	}
	return nil
}

func (s *SQLStore) HasVoted(ctx context.Context, voterID string) (bool, error) {
	voted, err := hasVoted(ctx, s.db, voterID)
	if err != nil {
		return false, storageErr("check voter", err)
	}
	return voted, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func hasVoted(ctx context.Context, q queryRower, voterID string) (bool, error) {
	var exists bool
	err := q.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM responders WHERE voter_id = $1
		)
	`, voterID).Scan(&exists)
	return exists, err
}

const (
	incrementRed  = `UPDATE vote_count SET red_vote_count = red_vote_count + 1 WHERE question_number = $1`
	incrementBlue = `UPDATE vote_count SET blue_vote_count = blue_vote_count + 1 WHERE question_number = $1`
)

func (s *SQLStore) RecordVote(ctx context.Context, day int, voterID string, choice ledger.Choice) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin vote", err)
	}
	defer tx.Rollback()

	voted, err := hasVoted(ctx, tx, voterID)
	if err != nil {
		return storageErr("check voter", err)
	}
	if voted {
		return ledger.ErrAlreadyVoted
	}

	increment := incrementBlue
	if choice == ledger.Red {
		increment = incrementRed
	}
	res, err := tx.ExecContext(ctx, increment, day)
	if err != nil {
		return storageErr("increment tally", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storageErr("increment tally", err)
	}
	if n == 0 {
		return fmt.Errorf("day %d: %w", day, ledger.ErrNotFound)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO responders (voter_id, response)
		VALUES ($1, $2)
	`, voterID, bool(choice))
	if err != nil {
		return storageErr("insert responder", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit vote", err)
	}
	return nil
}

func (s *SQLStore) Tally(ctx context.Context, day int) (ledger.Tally, error) {
	t := ledger.Tally{Day: day}
	var red, blue int64
	err := s.db.QueryRowContext(ctx, `
		SELECT red_vote_count, blue_vote_count
		FROM vote_count
		WHERE question_number = $1
	`, day).Scan(&red, &blue)

	if errors.Is(err, sql.ErrNoRows) {
		return ledger.Tally{}, fmt.Errorf("day %d: %w", day, ledger.ErrNotFound)
	}
	if err != nil {
		return ledger.Tally{}, storageErr("query tally", err)
	}

	t.Red, t.Blue = uint64(red), uint64(blue)
	return t, nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
