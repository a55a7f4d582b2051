// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"errors"
	"time"
)

var (
	ErrAlreadyVoted = errors.New("already voted today")
	ErrNotFound     = errors.New("tally not found")
	ErrStorage      = errors.New("storage failure")
)

// Choice is one of the two daily options. Stored as a boolean, true for red.
type Choice bool

const (
	Red  Choice = true
	Blue Choice = false
)

func (c Choice) String() string {
	if c == Red {
		return "red"
	}
	return "blue"
}

// Tally is the vote count stored under a day-of-month key.
// Keys carry no month, so the same slot is reused every month.
type Tally struct {
	Day  int
	Red  uint64
	Blue uint64
}

// ServiceClock is the day the ledger last opened. Zero until the first
// transition.
type ServiceClock struct {
	Month time.Month
	Day   int
}

// Clock supplies wall-clock time
type Clock interface {
	Now() time.Time
}

// Store persists tallies and the current day's voters.
// Every method must be atomic on its own.
type Store interface {
	// OpenDay inserts a (0,0) tally for day if none exists and removes
	// every voter record, in one transaction.
	OpenDay(ctx context.Context, day int) error
	HasVoted(ctx context.Context, voterID string) (bool, error)
	// RecordVote increments the chosen count on day's tally and inserts
	// the voter together. Returns ErrAlreadyVoted if the voter exists and
	// ErrNotFound if day has no tally.
	RecordVote(ctx context.Context, day int, voterID string, choice Choice) error
	// Tally returns ErrNotFound if day has no row.
	Tally(ctx context.Context, day int) (Tally, error)
	Ping(ctx context.Context) error
	Close() error
}

type systemClock struct {
	loc *time.Location
}

// SystemClock reads time.Now in loc
func SystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return systemClock{loc: loc}
}

func (c systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}
