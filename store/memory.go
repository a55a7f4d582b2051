// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/tertty/ROCK-the-Vote-backend/ledger"
)

// MemoryStore keeps everything in process memory. State is lost on exit.
type MemoryStore struct {
	mu      sync.Mutex
	tallies map[int]ledger.Tally
	voters  map[string]ledger.Choice
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tallies: make(map[int]ledger.Tally),
		voters:  make(map[string]ledger.Choice),
	}
}

func (s *MemoryStore) OpenDay(ctx context.Context, day int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tallies[day]; !ok {
		s.tallies[day] = ledger.Tally{Day: day}
	}
	s.voters = make(map[string]ledger.Choice)
	return nil
}

func (s *MemoryStore) HasVoted(ctx context.Context, voterID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.voters[voterID]
	return ok, nil
}

func (s *MemoryStore) RecordVote(ctx context.Context, day int, voterID string, choice ledger.Choice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.voters[voterID]; ok {
		return ledger.ErrAlreadyVoted
	}
	t, ok := s.tallies[day]
	if !ok {
		return ledger.ErrNotFound
	}

	if choice == ledger.Red {
		t.Red++
	} else {
		t.Blue++
	}
	s.tallies[day] = t
	s.voters[voterID] = choice
	return nil
}

func (s *MemoryStore) Tally(ctx context.Context, day int) (ledger.Tally, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tallies[day]
	if !ok {
		return ledger.Tally{}, ledger.ErrNotFound
	}
	return t, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }
