// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package prompts

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNoPrompt            = errors.New("no prompt scheduled")
	ErrInvalidQuestionType = errors.New("invalid question type")
)

// QuestionType is the category of a daily prompt
type QuestionType int

const (
	WouldYouRather QuestionType = iota // WYR
	WhoWouldWin                        // WWW
	ThisOrThat                         // TOT
)

var questionTypeTags = [...]string{"WYR", "WWW", "TOT"}

func (q QuestionType) String() string {
	if q < 0 || int(q) >= len(questionTypeTags) {
		return fmt.Sprintf("QuestionType(%d)", int(q))
	}
	return questionTypeTags[q]
}

// ParseQuestionType maps a wire tag back to its QuestionType
func ParseQuestionType(tag string) (QuestionType, error) {
	for i, t := range questionTypeTags {
		if t == tag {
			return QuestionType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidQuestionType, tag)
}

func (q QuestionType) MarshalText() ([]byte, error) {
	if q < 0 || int(q) >= len(questionTypeTags) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuestionType, int(q))
	}
	return []byte(questionTypeTags[q]), nil
}

func (q *QuestionType) UnmarshalText(text []byte) error {
	parsed, err := ParseQuestionType(string(text))
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// Prompt is one day's pair of choices
type Prompt struct {
	Red  string       `json:"red"`
	Blue string       `json:"blue"`
	Type QuestionType `json:"type"`
}

// Catalog looks up the prompt scheduled for a day of a month.
// day is 1-based.
type Catalog interface {
	PromptFor(month time.Month, day int) (Prompt, error)
}

// Calendar holds one prompt list per month, January first.
// Months may have fewer entries than days; missing days have no prompt.
type Calendar [12][]Prompt

func (c *Calendar) PromptFor(month time.Month, day int) (Prompt, error) {
	if month < time.January || month > time.December {
		return Prompt{}, fmt.Errorf("%w: month %d out of range", ErrNoPrompt, int(month))
	}

	days := c[month-1]
	if day < 1 || day > len(days) {
		return Prompt{}, fmt.Errorf("%w for %s %d", ErrNoPrompt, month, day)
	}

	return days[day-1], nil
}
