// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tertty/ROCK-the-Vote-backend/ledger"
	"github.com/tertty/ROCK-the-Vote-backend/prompts"
	"github.com/tertty/ROCK-the-Vote-backend/store"
	"github.com/tertty/ROCK-the-Vote-backend/testutil"
)

// forEachStore runs fn once per store backend available without a server
func forEachStore(t *testing.T, fn func(t *testing.T, newStore func() ledger.Store)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, func() ledger.Store { return store.NewMemoryStore() })
	})
	t.Run("sqlite", func(t *testing.T) {
		fn(t, func() ledger.Store { return store.NewSQLStore(testutil.SetupTestDB(t)) })
	})
}

func newLedger(st ledger.Store, clock *testutil.Clock) *ledger.Ledger {
	return ledger.New(st, prompts.Default(), clock)
}

func mustTally(t *testing.T, got ledger.Tally, err error, red, blue uint64) {
	t.Helper()
	if err != nil {
		t.Fatalf("tally error: %v", err)
	}
	if got.Red != red || got.Blue != blue {
		t.Errorf("tally = (%d,%d), want (%d,%d)", got.Red, got.Blue, red, blue)
	}
}

func TestRecordVote_OncePerDay(t *testing.T) {
	forEachStore(t, func(t *testing.T, newStore func() ledger.Store) {
		ctx := context.Background()
		l := newLedger(newStore(), testutil.NewClock(2025, time.March, 5))

		if err := l.RecordVote(ctx, "a", ledger.Red); err != nil {
			t.Fatalf("first vote for a: %v", err)
		}
		if err := l.RecordVote(ctx, "b", ledger.Blue); err != nil {
			t.Fatalf("vote for b: %v", err)
		}

		err := l.RecordVote(ctx, "a", ledger.Red)
		if !errors.Is(err, ledger.ErrAlreadyVoted) {
			t.Fatalf("second vote for a: expected ErrAlreadyVoted, got %v", err)
		}

		// Either choice counts as a repeat
		err = l.RecordVote(ctx, "a", ledger.Blue)
		if !errors.Is(err, ledger.ErrAlreadyVoted) {
			t.Fatalf("switching choice: expected ErrAlreadyVoted, got %v", err)
		}

		tally, err := l.CurrentTally(ctx)
		mustTally(t, tally, err, 1, 1)
		if tally.Day != 5 {
			t.Errorf("expected day 5, got %d", tally.Day)
		}
	})
}

func TestHasVoted(t *testing.T) {
	forEachStore(t, func(t *testing.T, newStore func() ledger.Store) {
		ctx := context.Background()
		l := newLedger(newStore(), testutil.NewClock(2025, time.April, 12))

		voted, err := l.HasVoted(ctx, "pebble-1")
		if err != nil {
			t.Fatal(err)
		}
		if voted {
			t.Error("expected not voted before voting")
		}

		if err := l.RecordVote(ctx, "pebble-1", ledger.Blue); err != nil {
			t.Fatal(err)
		}

		voted, err = l.HasVoted(ctx, "pebble-1")
		if err != nil {
			t.Fatal(err)
		}
		if !voted {
			t.Error("expected voted after voting")
		}

		voted, _ = l.HasVoted(ctx, "pebble-2")
		if voted {
			t.Error("another voter should not be marked as voted")
		}
	})
}

func TestDayTransition_ResetsVoters(t *testing.T) {
	forEachStore(t, func(t *testing.T, newStore func() ledger.Store) {
		ctx := context.Background()
		clock := testutil.NewClock(2025, time.May, 5)
		l := newLedger(newStore(), clock)

		if err := l.RecordVote(ctx, "v", ledger.Red); err != nil {
			t.Fatal(err)
		}

		clock.Advance(24 * time.Hour)

		voted, err := l.HasVoted(ctx, "v")
		if err != nil {
			t.Fatal(err)
		}
		if voted {
			t.Error("voter should be eligible again on a new day")
		}

		if err := l.RecordVote(ctx, "v", ledger.Blue); err != nil {
			t.Fatalf("vote on new day: %v", err)
		}

		today, err := l.Today(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if today.Month != time.May || today.Day != 6 {
			t.Errorf("expected May 6, got %s %d", today.Month, today.Day)
		}

		tally, err := l.CurrentTally(ctx)
		mustTally(t, tally, err, 0, 1)

		prev, err := l.PreviousTally(ctx)
		mustTally(t, prev, err, 1, 0)
		if prev.Day != 5 {
			t.Errorf("expected previous day 5, got %d", prev.Day)
		}
	})
}

func TestPreviousTally_FirstOfMonthReadsSlot30(t *testing.T) {
	forEachStore(t, func(t *testing.T, newStore func() ledger.Store) {
		ctx := context.Background()
		clock := testutil.NewClock(2025, time.January, 30)
		l := newLedger(newStore(), clock)

		if err := l.RecordVote(ctx, "x", ledger.Red); err != nil {
			t.Fatal(err)
		}
		if err := l.RecordVote(ctx, "y", ledger.Red); err != nil {
			t.Fatal(err)
		}

		// Jan 31 gets its own slot; Feb 1 still looks back at 30
		clock.Set(time.Date(2025, time.January, 31, 9, 0, 0, 0, time.UTC))
		if err := l.RecordVote(ctx, "z", ledger.Blue); err != nil {
			t.Fatal(err)
		}

		clock.Set(time.Date(2025, time.February, 1, 9, 0, 0, 0, time.UTC))
		prev, err := l.PreviousTally(ctx)
		mustTally(t, prev, err, 2, 0)
		if prev.Day != 30 {
			t.Errorf("expected slot 30, got %d", prev.Day)
		}
	})
}

func TestPreviousTally_NoRowIsZero(t *testing.T) {
	forEachStore(t, func(t *testing.T, newStore func() ledger.Store) {
		ctx := context.Background()
		l := newLedger(newStore(), testutil.NewClock(2025, time.March, 1))

		prev, err := l.PreviousTally(ctx)
		mustTally(t, prev, err, 0, 0)
		if prev.Day != 30 {
			t.Errorf("expected slot 30, got %d", prev.Day)
		}
	})
}

func TestReadsDoNotMutate(t *testing.T) {
	forEachStore(t, func(t *testing.T, newStore func() ledger.Store) {
		ctx := context.Background()
		clock := testutil.NewClock(2025, time.June, 10)
		l := newLedger(newStore(), clock)

		if err := l.RecordVote(ctx, "v", ledger.Red); err != nil {
			t.Fatal(err)
		}

		for i := 0; i < 3; i++ {
			clock.Advance(time.Hour)
			if _, err := l.CurrentTally(ctx); err != nil {
				t.Fatal(err)
			}
			if _, err := l.PreviousTally(ctx); err != nil {
				t.Fatal(err)
			}
			if _, err := l.CurrentPrompt(ctx); err != nil {
				t.Fatal(err)
			}
			if _, err := l.HasVoted(ctx, "other"); err != nil {
				t.Fatal(err)
			}
		}

		tally, err := l.CurrentTally(ctx)
		mustTally(t, tally, err, 1, 0)

		voted, _ := l.HasVoted(ctx, "v")
		if !voted {
			t.Error("voter record lost without a day change")
		}
	})
}

func TestSlotReusedAcrossMonths(t *testing.T) {
	forEachStore(t, func(t *testing.T, newStore func() ledger.Store) {
		ctx := context.Background()
		clock := testutil.NewClock(2025, time.March, 15)
		l := newLedger(newStore(), clock)

		if err := l.RecordVote(ctx, "v", ledger.Blue); err != nil {
			t.Fatal(err)
		}

		clock.Set(time.Date(2025, time.April, 14, 12, 0, 0, 0, time.UTC))
		if _, err := l.CurrentTally(ctx); err != nil {
			t.Fatal(err)
		}

		// Day 15 again: the row is reused, not reset
		clock.Set(time.Date(2025, time.April, 15, 12, 0, 0, 0, time.UTC))
		tally, err := l.CurrentTally(ctx)
		mustTally(t, tally, err, 0, 1)

		voted, _ := l.HasVoted(ctx, "v")
		if voted {
			t.Error("voters should reset when the day changes")
		}
	})
}

func TestSameDayOfMonthRefreshesMonth(t *testing.T) {
	ctx := context.Background()
	clock := testutil.NewClock(2025, time.March, 8)
	l := newLedger(store.NewMemoryStore(), clock)

	p, err := l.CurrentPrompt(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if p.Red != "Coffee" {
		t.Fatalf("expected March 8 prompt, got %+v", p)
	}

	// Untouched for exactly a month: same slot, new month's prompt
	clock.Set(time.Date(2025, time.April, 8, 12, 0, 0, 0, time.UTC))
	p, err = l.CurrentPrompt(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if p.Red != "Never use social media again" {
		t.Errorf("expected April 8 prompt, got %+v", p)
	}
}

func TestPrompts(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		day          int
		wantCurrent  string
		wantPrevious string
	}{
		{"mid month", 9, "Live without music", "Coffee"},
		{"first of month reads day 30 of same month", 1, "Move like a robot", "Always wear clown shoes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLedger(store.NewMemoryStore(), testutil.NewClock(2025, time.March, tt.day))

			cur, err := l.CurrentPrompt(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if cur.Red != tt.wantCurrent {
				t.Errorf("current red = %q, want %q", cur.Red, tt.wantCurrent)
			}

			prev, err := l.PreviousPrompt(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if prev.Red != tt.wantPrevious {
				t.Errorf("previous red = %q, want %q", prev.Red, tt.wantPrevious)
			}
		})
	}

	t.Run("empty month", func(t *testing.T) {
		l := newLedger(store.NewMemoryStore(), testutil.NewClock(2025, time.January, 10))
		if _, err := l.CurrentPrompt(ctx); !errors.Is(err, prompts.ErrNoPrompt) {
			t.Errorf("expected ErrNoPrompt, got %v", err)
		}
	})
}

func TestConcurrentVotes(t *testing.T) {
	forEachStore(t, func(t *testing.T, newStore func() ledger.Store) {
		ctx := context.Background()
		l := newLedger(newStore(), testutil.NewClock(2025, time.May, 20))

		const attempts = 20
		var successCount, rejectedCount atomic.Int32
		var wg sync.WaitGroup

		// Same voter from many goroutines: exactly one wins
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := l.RecordVote(ctx, "racer", ledger.Red)
				switch {
				case err == nil:
					successCount.Add(1)
				case errors.Is(err, ledger.ErrAlreadyVoted):
					rejectedCount.Add(1)
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		if successCount.Load() != 1 {
			t.Errorf("expected exactly 1 successful vote, got %d", successCount.Load())
		}
		if rejectedCount.Load() != attempts-1 {
			t.Errorf("expected %d rejections, got %d", attempts-1, rejectedCount.Load())
		}

		// Distinct voters: every vote counts
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if err := l.RecordVote(ctx, fmt.Sprintf("voter-%d", i), ledger.Blue); err != nil {
					t.Errorf("voter-%d: %v", i, err)
				}
			}(i)
		}
		wg.Wait()

		tally, err := l.CurrentTally(ctx)
		mustTally(t, tally, err, 1, attempts)
	})
}

// faultyStore wraps a MemoryStore and fails selected operations
type faultyStore struct {
	*store.MemoryStore
	failOpen   bool
	failVote   bool
	skipInsert bool
	openCalls  int
}

var errDiskGone = errors.New("disk gone")

func (s *faultyStore) OpenDay(ctx context.Context, day int) error {
	s.openCalls++
	if s.failOpen {
		return fmt.Errorf("open day: %w: %w", ledger.ErrStorage, errDiskGone)
	}
	if s.skipInsert {
		return nil
	}
	return s.MemoryStore.OpenDay(ctx, day)
}

func (s *faultyStore) RecordVote(ctx context.Context, day int, voterID string, choice ledger.Choice) error {
	if s.failVote {
		return fmt.Errorf("record vote: %w: %w", ledger.ErrStorage, errDiskGone)
	}
	return s.MemoryStore.RecordVote(ctx, day, voterID, choice)
}

func TestTransitionFailureRetries(t *testing.T) {
	ctx := context.Background()
	st := &faultyStore{MemoryStore: store.NewMemoryStore(), failOpen: true}
	l := newLedger(st, testutil.NewClock(2025, time.March, 3))

	_, err := l.HasVoted(ctx, "v")
	if !errors.Is(err, ledger.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}

	today, _ := l.Today(ctx)
	if today.Day != 0 {
		t.Errorf("clock should not advance after a failed transition, got day %d", today.Day)
	}

	st.failOpen = false
	if err := l.RecordVote(ctx, "v", ledger.Red); err != nil {
		t.Fatalf("vote after store recovered: %v", err)
	}

	// Two failed attempts (HasVoted, Today) and one success; later calls reuse the day
	if _, err := l.CurrentTally(ctx); err != nil {
		t.Fatal(err)
	}
	if st.openCalls != 3 {
		t.Errorf("expected 3 OpenDay calls, got %d", st.openCalls)
	}
}

func TestVoteFailureAppliesNothing(t *testing.T) {
	ctx := context.Background()
	st := &faultyStore{MemoryStore: store.NewMemoryStore(), failVote: true}
	l := newLedger(st, testutil.NewClock(2025, time.March, 3))

	err := l.RecordVote(ctx, "v", ledger.Blue)
	if !errors.Is(err, ledger.ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}

	voted, err := l.HasVoted(ctx, "v")
	if err != nil {
		t.Fatal(err)
	}
	if voted {
		t.Error("voter recorded despite failed vote")
	}

	tally, err := l.CurrentTally(ctx)
	mustTally(t, tally, err, 0, 0)
}

func TestCurrentTally_MissingRow(t *testing.T) {
	st := &faultyStore{MemoryStore: store.NewMemoryStore(), skipInsert: true}
	l := newLedger(st, testutil.NewClock(2025, time.March, 3))

	if _, err := l.CurrentTally(context.Background()); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
