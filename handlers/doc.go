// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ROCK the Vote API.

# Handler Types

  - VotingHandler: red/blue votes and vote status
  - ResultsHandler: today's and yesterday's prompt with counts

Handlers are created via constructor functions that accept the shared
*ledger.Ledger and Config:

	votingHandler := handlers.NewVotingHandler(l, cfg)

# Voter IDs

The {voter_uuid} path value is validated with auth.ValidateVoterID (400
on failure) and hashed with auth.HashVoterID before it reaches the
ledger.

# Status Codes

	vote recorded         → 200
	already voted today   → 500, message "Already voted today"
	storage failure       → 500, message "Database error"
	has_user_voted        → 200 text/plain "true" or "false"
	no prompt scheduled   → 404

A failed tally read on the results endpoints is not an error: counts are
reported as zero.
*/
package handlers
