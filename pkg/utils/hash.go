package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	h := sha256.New()
	h.Write([]byte(input))

	return hex.EncodeToString(h.Sum(nil))
}

// Redact returns a short stable digest of a contact identifier so log
// entries can correlate submissions without carrying the raw value.
// Full values only appear in debug-level logs.
func Redact(input string) string {
	return HashString(input)[:12]
}
