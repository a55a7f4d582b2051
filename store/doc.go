// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store implements ledger.Store backends.

  - MemoryStore: maps behind a mutex, lost on exit (-t memory, tests)
  - SQLStore: vote_count and responders tables over database/sql
  - RedisStore: hashes in Redis

Each backend makes OpenDay and RecordVote atomic on its own: a SQL
transaction, a Redis MULTI/EXEC block or Lua script, or the store mutex.
Driver and network failures are wrapped with ledger.ErrStorage:

	if errors.Is(err, ledger.ErrStorage) { ... }
*/
package store
