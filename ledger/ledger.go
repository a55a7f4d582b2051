// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/tertty/ROCK-the-Vote-backend/prompts"
)

// wrapDay is the slot read as "yesterday" on the first of a month.
// It is fixed regardless of how long the previous month was.
const wrapDay = 30

// Ledger is the single owner of vote state. All operations hold one lock
// for the whole reconcile-then-read/write sequence.
type Ledger struct {
	mu      sync.Mutex
	store   Store
	catalog prompts.Catalog
	clock   Clock
	current ServiceClock
}

func New(store Store, catalog prompts.Catalog, clock Clock) *Ledger {
	return &Ledger{store: store, catalog: catalog, clock: clock}
}

// reconcile opens a new day when the clock has moved past the last one
// opened. The service clock only advances after the store committed.
// Caller must hold l.mu.
func (l *Ledger) reconcile(ctx context.Context) error {
	now := l.clock.Now()
	day, month := now.Day(), now.Month()

	if day == l.current.Day {
		// Same day-of-month in a later month: the slot is reused as is.
		l.current.Month = month
		return nil
	}

	if err := l.store.OpenDay(ctx, day); err != nil {
		return fmt.Errorf("failed to open day %d: %w", day, err)
	}

	closed := l.current
	l.current = ServiceClock{Month: month, Day: day}

	if closed.Day == 0 {
		slog.Info("day opened", "month", month, "day", day)
		return nil
	}

	attrs := []any{"month", month, "day", day, "closed_day", closed.Day}
	if t, err := l.store.Tally(ctx, closed.Day); err == nil {
		attrs = append(attrs, "closed_red", humanize.Comma(int64(t.Red)), "closed_blue", humanize.Comma(int64(t.Blue)))
	}
	slog.Info("day rolled over", attrs...)

	return nil
}

// Today returns the day the ledger is serving after reconciling
func (l *Ledger) Today(ctx context.Context) (ServiceClock, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.reconcile(ctx); err != nil {
		return ServiceClock{}, err
	}
	return l.current, nil
}

// HasVoted reports whether voterID has voted on the current day
func (l *Ledger) HasVoted(ctx context.Context, voterID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.reconcile(ctx); err != nil {
		return false, err
	}
	return l.store.HasVoted(ctx, voterID)
}

// RecordVote counts one vote for choice and marks voterID as having voted.
// A second vote on the same day returns ErrAlreadyVoted and changes nothing.
func (l *Ledger) RecordVote(ctx context.Context, voterID string, choice Choice) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.reconcile(ctx); err != nil {
		return err
	}

	voted, err := l.store.HasVoted(ctx, voterID)
	if err != nil {
		return err
	}
	if voted {
		return ErrAlreadyVoted
	}

	return l.store.RecordVote(ctx, l.current.Day, voterID, choice)
}

// CurrentTally returns today's counts
func (l *Ledger) CurrentTally(ctx context.Context) (Tally, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.reconcile(ctx); err != nil {
		return Tally{}, err
	}
	return l.store.Tally(ctx, l.current.Day)
}

// PreviousTally returns yesterday's counts, or zero counts if that slot
// was never opened.
func (l *Ledger) PreviousTally(ctx context.Context) (Tally, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.reconcile(ctx); err != nil {
		return Tally{}, err
	}

	day := previousDay(l.current.Day)
	t, err := l.store.Tally(ctx, day)
	if errors.Is(err, ErrNotFound) {
		return Tally{Day: day}, nil
	}
	return t, err
}

// CurrentPrompt returns today's prompt from the catalog
func (l *Ledger) CurrentPrompt(ctx context.Context) (prompts.Prompt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.reconcile(ctx); err != nil {
		return prompts.Prompt{}, err
	}
	return l.catalog.PromptFor(l.current.Month, l.current.Day)
}

// PreviousPrompt returns yesterday's prompt. On the first of a month this
// reads day 30 of the current month's list, not the previous month.
func (l *Ledger) PreviousPrompt(ctx context.Context) (prompts.Prompt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.reconcile(ctx); err != nil {
		return prompts.Prompt{}, err
	}
	return l.catalog.PromptFor(l.current.Month, previousDay(l.current.Day))
}

// Ping checks the backing store
func (l *Ledger) Ping(ctx context.Context) error {
	return l.store.Ping(ctx)
}

func (l *Ledger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Close()
}

func previousDay(day int) int {
	if day == 1 {
		return wrapDay
	}
	return day - 1
}
