// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth validates and hashes voter identifiers.

# Voter IDs

Pebble clients identify themselves with an opaque account token in the
request path. ValidateVoterID rejects empty tokens, tokens longer than
MaxVoterIDLen bytes, and tokens with slashes, whitespace or control
characters:

	if err := auth.ValidateVoterID(id); err != nil {
		// 400
	}

There is no further authentication; whoever holds a token votes as it.

# Storage

Raw tokens are never stored. HashVoterID turns a token into a hex
HMAC-SHA256 digest keyed by VOTER_ID_SALT:

	key := auth.HashVoterID(id, cfg.VoterIDSalt)

Since it's deterministic, the same token maps to the same key for the
whole day, which is all the per-day uniqueness check needs.
*/
package auth
