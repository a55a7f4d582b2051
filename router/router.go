// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/tertty/ROCK-the-Vote-backend/cliparse"
	"github.com/tertty/ROCK-the-Vote-backend/handlers"
	"github.com/tertty/ROCK-the-Vote-backend/ledger"
	"github.com/tertty/ROCK-the-Vote-backend/middleware"
)

// APIPrefix is where the Pebble app expects the API
const APIPrefix = "/api/rtv"

func NewRouter(l *ledger.Ledger, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(l, cfg)
	resultsHandler := handlers.NewResultsHandler(l, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := l.Ping(ctx); err != nil {
			slog.Error("health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("UNAVAILABLE"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voting
	mux.HandleFunc("POST "+APIPrefix+"/increment_red/{voter_uuid}", middleware.WithLogging(votingHandler.IncrementRed))
	mux.HandleFunc("POST "+APIPrefix+"/increment_blue/{voter_uuid}", middleware.WithLogging(votingHandler.IncrementBlue))
	mux.HandleFunc("GET "+APIPrefix+"/has_user_voted/{voter_uuid}", middleware.WithLogging(votingHandler.HasUserVoted))

	// Questions and results
	mux.HandleFunc("GET "+APIPrefix+"/latest_question_and_results", middleware.WithLogging(resultsHandler.GetLatest))
	mux.HandleFunc("GET "+APIPrefix+"/previous_question_and_results", middleware.WithLogging(resultsHandler.GetPrevious))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ROCK the Vote API v1"))
	})

	return mux
}
