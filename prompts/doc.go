// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package prompts holds the yearly calendar of daily red/blue prompts.

# Catalog

The ledger reads prompts through the Catalog interface:

	p, err := catalog.PromptFor(time.March, 8)
	// p.Red == "Coffee", p.Blue == "Tea", p.Type == ThisOrThat

Days are 1-based. A day with no entry returns ErrNoPrompt.

# Question Types

	WouldYouRather → "WYR"
	WhoWouldWin    → "WWW"
	ThisOrThat     → "TOT"

QuestionType marshals to and from these tags in JSON.

# Sources

Default returns the built-in calendar. LoadFile reads a replacement from
a JSON file keyed by month name:

	{
	  "march": [
	    {"red": "Move like a robot", "blue": "Talk like a robot", "type": "WYR"}
	  ]
	}
*/
package prompts
