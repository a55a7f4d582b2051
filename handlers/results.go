// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tertty/ROCK-the-Vote-backend/cliparse"
	"github.com/tertty/ROCK-the-Vote-backend/ledger"
	"github.com/tertty/ROCK-the-Vote-backend/middleware"
	"github.com/tertty/ROCK-the-Vote-backend/models"
	"github.com/tertty/ROCK-the-Vote-backend/prompts"
)

type ResultsHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewResultsHandler(l *ledger.Ledger, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{ledger: l, cfg: cfg}
}

// GetLatest handles GET /api/rtv/latest_question_and_results
func (h *ResultsHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	h.writeResults(w, r, "current", h.ledger.CurrentTally, h.ledger.CurrentPrompt)
}

// GetPrevious handles GET /api/rtv/previous_question_and_results
func (h *ResultsHandler) GetPrevious(w http.ResponseWriter, r *http.Request) {
	h.writeResults(w, r, "previous", h.ledger.PreviousTally, h.ledger.PreviousPrompt)
}

func (h *ResultsHandler) writeResults(
	w http.ResponseWriter,
	r *http.Request,
	which string,
	tallyFn func(context.Context) (ledger.Tally, error),
	promptFn func(context.Context) (prompts.Prompt, error),
) {
	// Counts fall back to zero; the prompt is still worth showing
	tally, err := tallyFn(r.Context())
	if err != nil {
		slog.Warn("failed to read tally, reporting zero counts", "day", which, "error", err)
		tally = ledger.Tally{}
	}

	prompt, err := promptFn(r.Context())
	if errors.Is(err, prompts.ErrNoPrompt) {
		middleware.ErrorResponse(w, http.StatusNotFound, "No question scheduled")
		return
	}
	if err != nil {
		slog.Error("failed to read prompt", "day", which, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.NewQuestionResults(prompt, tally))
}
