// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"unicode"
)

// MaxVoterIDLen bounds the opaque client token accepted from the path
const MaxVoterIDLen = 64

var (
	ErrEmptyVoterID   = errors.New("voter id is required")
	ErrInvalidVoterID = errors.New("invalid voter id format")
)

// ValidateVoterID checks the shape of a client-supplied voter token.
// Tokens are opaque; only length and printable characters are enforced.
func ValidateVoterID(id string) error {
	if id == "" {
		return ErrEmptyVoterID
	}
	if len(id) > MaxVoterIDLen {
		return ErrInvalidVoterID
	}
	for _, r := range id {
		if r == '/' || !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return ErrInvalidVoterID
		}
	}
	return nil
}

// HashVoterID creates a one-way hash of a voter token for storage
// Includes salt so stored IDs can't be matched back to Pebble accounts
func HashVoterID(id, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(id))
	return hex.EncodeToString(h.Sum(nil))
}
