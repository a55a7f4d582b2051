// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ROCK the Vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(ledger, cfg)

# Endpoints

Health:

	GET /health - pings the store, 200 OK or 503

Voting:

	POST /api/rtv/increment_red/{voter_uuid}  - Vote red
	POST /api/rtv/increment_blue/{voter_uuid} - Vote blue
	GET  /api/rtv/has_user_voted/{voter_uuid} - "true" or "false"

Questions and results:

	GET /api/rtv/latest_question_and_results   - Today's prompt and counts
	GET /api/rtv/previous_question_and_results - Yesterday's prompt and counts

Paths match the deployed Pebble app and must not change.

# Handler Initialization

	votingHandler := handlers.NewVotingHandler(l, cfg)
	resultsHandler := handlers.NewResultsHandler(l, cfg)

Both handlers share the one ledger created in main.
*/
package router
