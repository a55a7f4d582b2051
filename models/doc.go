// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines response types for the API.

# Response Types

  - QuestionResultsResponse: red_prompt, blue_prompt, question_type,
    red_count, blue_count
  - VoteResponse: choice, message
  - ErrorResponse: error, message

question_type is encoded as one of the tags WYR, WWW or TOT. Counts are
unsigned.

NewQuestionResults builds a QuestionResultsResponse from a prompt and a
tally:

	resp := models.NewQuestionResults(prompt, tally)
*/
package models
