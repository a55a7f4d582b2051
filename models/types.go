package models

import (
	"github.com/tertty/ROCK-the-Vote-backend/ledger"
	"github.com/tertty/ROCK-the-Vote-backend/prompts"
)

// Response types

// QuestionResultsResponse is the payload the Pebble app renders for a day
type QuestionResultsResponse struct {
	RedPrompt    string               `json:"red_prompt"`
	BluePrompt   string               `json:"blue_prompt"`
	QuestionType prompts.QuestionType `json:"question_type"`
	RedCount     uint64               `json:"red_count"`
	BlueCount    uint64               `json:"blue_count"`
}

// NewQuestionResults pairs a prompt with its tally
func NewQuestionResults(p prompts.Prompt, t ledger.Tally) QuestionResultsResponse {
	return QuestionResultsResponse{
		RedPrompt:    p.Red,
		BluePrompt:   p.Blue,
		QuestionType: p.Type,
		RedCount:     t.Red,
		BlueCount:    t.Blue,
	}
}

type VoteResponse struct {
	Choice  string `json:"choice"`
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
