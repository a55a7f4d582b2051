// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger tracks the current voting day and the votes cast on it.

# Day Rollover

There is no timer. Every operation first compares the injected Clock with
the day the ledger last opened. When the day-of-month differs, the ledger
asks the Store to open the new day, which in one transaction:

  - inserts a (0,0) tally keyed by day-of-month, unless one exists
  - removes every voter record

Only after the store commits does the ledger advance its ServiceClock. A
failed transition leaves the clock stale so the next call tries again.

# Voting

	err := l.RecordVote(ctx, voterID, ledger.Red)
	if errors.Is(err, ledger.ErrAlreadyVoted) {
		// one vote per voter per day
	}

The membership check and the tally increment run under the same lock,
and the Store applies increment and voter insert together.

# Tally Keys

Tallies are keyed by day-of-month only (1-31). The slot for the 15th is
shared by every month, and a new month's 15th starts with whatever the
previous 15th left behind.

Yesterday on the 1st is always slot 30, regardless of the previous
month's length. The same rule applies to prompts: PreviousPrompt on the
1st reads day 30 of the current month's list.

# Errors

  - ErrAlreadyVoted: voter already voted today
  - ErrNotFound: expected tally row is missing
  - ErrStorage: backing store failed (wrapped by Store implementations)
*/
package ledger
