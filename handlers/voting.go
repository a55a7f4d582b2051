// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tertty/ROCK-the-Vote-backend/auth"
	"github.com/tertty/ROCK-the-Vote-backend/cliparse"
	"github.com/tertty/ROCK-the-Vote-backend/ledger"
	"github.com/tertty/ROCK-the-Vote-backend/middleware"
	"github.com/tertty/ROCK-the-Vote-backend/models"
)

type VotingHandler struct {
	ledger *ledger.Ledger
	cfg    cliparse.Config
}

func NewVotingHandler(l *ledger.Ledger, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{ledger: l, cfg: cfg}
}

// voterKey validates the path token and returns its storage key.
// Writes a 400 and returns false when the token is malformed.
func (h *VotingHandler) voterKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	voterID := r.PathValue("voter_uuid")
	if err := auth.ValidateVoterID(voterID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return auth.HashVoterID(voterID, h.cfg.VoterIDSalt), true
}

// IncrementRed handles POST /api/rtv/increment_red/{voter_uuid}
func (h *VotingHandler) IncrementRed(w http.ResponseWriter, r *http.Request) {
	h.recordVote(w, r, ledger.Red)
}

// IncrementBlue handles POST /api/rtv/increment_blue/{voter_uuid}
func (h *VotingHandler) IncrementBlue(w http.ResponseWriter, r *http.Request) {
	h.recordVote(w, r, ledger.Blue)
}

func (h *VotingHandler) recordVote(w http.ResponseWriter, r *http.Request, choice ledger.Choice) {
	key, ok := h.voterKey(w, r)
	if !ok {
		return
	}

	err := h.ledger.RecordVote(r.Context(), key, choice)

	// The watch app only distinguishes 200 from failure, so a repeat
	// vote is a 500 too; the message tells them apart.
	if errors.Is(err, ledger.ErrAlreadyVoted) {
		slog.Info("vote rejected", "reason", "already voted", "choice", choice.String())
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Already voted today")
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "choice", choice.String())
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("vote recorded", "choice", choice.String())

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Choice:  choice.String(),
		Message: "Vote recorded",
	})
}

// HasUserVoted handles GET /api/rtv/has_user_voted/{voter_uuid}
// Responds with plain text "true" or "false"
func (h *VotingHandler) HasUserVoted(w http.ResponseWriter, r *http.Request) {
	key, ok := h.voterKey(w, r)
	if !ok {
		return
	}

	voted, err := h.ledger.HasVoted(r.Context(), key)
	if err != nil {
		slog.Error("failed to check voter", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.TextResponse(w, http.StatusOK, strconv.FormatBool(voted))
}
