// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package prompts

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// LoadFile reads a calendar from a JSON file keyed by lowercase month name:
//
//	{"march": [{"red": "Coffee", "blue": "Tea", "type": "TOT"}]}
func LoadFile(path string) (*Calendar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open prompts file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a JSON calendar. Unknown month keys are rejected.
func Decode(r io.Reader) (*Calendar, error) {
	var raw map[string][]Prompt
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to parse prompts: %w", err)
	}

	var c Calendar
	for key, days := range raw {
		month, ok := parseMonth(key)
		if !ok {
			return nil, fmt.Errorf("unknown month %q in prompts", key)
		}
		if len(days) > 31 {
			return nil, fmt.Errorf("%s has %d prompts, max 31", month, len(days))
		}
		for i, p := range days {
			if p.Red == "" || p.Blue == "" {
				return nil, fmt.Errorf("%s %d: red and blue prompts are required", month, i+1)
			}
		}
		c[month-1] = days
	}

	return &c, nil
}

func parseMonth(name string) (time.Month, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m := time.January; m <= time.December; m++ {
		if strings.ToLower(m.String()) == name {
			return m, true
		}
	}
	return 0, false
}
