// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tertty/ROCK-the-Vote-backend/testutil"
)

// TestConcurrentVotes verifies that simultaneous votes from different
// watches are all counted exactly once
func TestConcurrentVotes(t *testing.T) {
	l, _ := setupLedger(t, time.March, 8)
	handler := NewVotingHandler(l, testutil.GetTestConfig())

	numVoters := 20
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()

			fn := handler.IncrementBlue
			if voterIdx%2 == 0 {
				fn = handler.IncrementRed
			}

			w := httptest.NewRecorder()
			fn(w, voteRequest("POST", "/api/rtv/increment/", fmt.Sprintf("watch-%d", voterIdx)))

			if w.Code == http.StatusOK {
				successCount.Add(1)
			} else {
				t.Errorf("Voter %d got status %d: %s", voterIdx, w.Code, w.Body.String())
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	tally, err := l.CurrentTally(context.Background())
	if err != nil {
		t.Fatalf("Failed to read tally: %v", err)
	}
	if tally.Red != 10 || tally.Blue != 10 {
		t.Errorf("Expected tally (10,10), got (%d,%d)", tally.Red, tally.Blue)
	}
}

// TestConcurrentDuplicateVotes verifies that one watch racing itself only
// gets a single vote counted
func TestConcurrentDuplicateVotes(t *testing.T) {
	l, _ := setupLedger(t, time.March, 8)
	handler := NewVotingHandler(l, testutil.GetTestConfig())

	attempts := 10
	var successCount, rejectedCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			w := httptest.NewRecorder()
			handler.IncrementRed(w, voteRequest("POST", "/api/rtv/increment_red/", "same-watch"))

			switch w.Code {
			case http.StatusOK:
				successCount.Add(1)
			case http.StatusInternalServerError:
				rejectedCount.Add(1)
			default:
				t.Errorf("Unexpected status %d", w.Code)
			}
		}()
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 successful vote, got %d", successCount.Load())
	}
	if rejectedCount.Load() != int32(attempts-1) {
		t.Errorf("Expected %d rejected votes, got %d", attempts-1, rejectedCount.Load())
	}

	tally, err := l.CurrentTally(context.Background())
	if err != nil {
		t.Fatalf("Failed to read tally: %v", err)
	}
	if tally.Red != 1 || tally.Blue != 0 {
		t.Errorf("Expected tally (1,0), got (%d,%d)", tally.Red, tally.Blue)
	}
}

// TestConcurrentVotesAcrossRollover checks that votes racing a day change
// land in exactly one of the two days
func TestConcurrentVotesAcrossRollover(t *testing.T) {
	l, clock := setupLedger(t, time.March, 8)
	handler := NewVotingHandler(l, testutil.GetTestConfig())

	numVoters := 10
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func(voterIdx int) {
			defer wg.Done()
			w := httptest.NewRecorder()
			handler.IncrementRed(w, voteRequest("POST", "/api/rtv/increment_red/", fmt.Sprintf("watch-%d", voterIdx)))
			testutil.AssertStatus(t, w, http.StatusOK)
		}(i)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		clock.Advance(24 * time.Hour)
	}()

	wg.Wait()

	ctx := context.Background()
	today, err := l.CurrentTally(ctx)
	if err != nil {
		t.Fatalf("Failed to read current tally: %v", err)
	}
	yesterday, err := l.PreviousTally(ctx)
	if err != nil {
		t.Fatalf("Failed to read previous tally: %v", err)
	}

	if total := today.Red + yesterday.Red; total != uint64(numVoters) {
		t.Errorf("Expected %d red votes across both days, got %d", numVoters, total)
	}
}
