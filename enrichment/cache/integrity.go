package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"encore.dev/rlog"
)

// SealedEntry binds cached content to a SHA-256 checksum so a writer to the
// cache tier cannot substitute or corrupt data undetected. A failed unseal
// must be treated as a cache miss, never as a hard error.
type SealedEntry struct {
	Content  string `json:"data"`
	Checksum string `json:"checksum"`
}

// Seal wraps content with its checksum.
func Seal(content string) SealedEntry {
	return SealedEntry{
		Content:  content,
		Checksum: checksum(content),
	}
}

// Valid reports whether the stored checksum matches the content.
func (e SealedEntry) Valid() bool {
	return checksum(e.Content) == e.Checksum
}

// Serialize encodes the entry for storage in a string-valued cache.
func (e SealedEntry) Serialize() string {
	out, err := json.Marshal(e)
	if err != nil {
		return ""
	}
	return string(out)
}

// Unseal decodes a serialized entry and verifies its checksum. It returns
// false on malformed JSON or a checksum mismatch.
func Unseal(serialized string) (string, bool) {
	var entry SealedEntry
	if err := json.Unmarshal([]byte(serialized), &entry); err != nil {
		rlog.Warn("discarding undecodable cache entry", "error", err)
		return "", false
	}
	if !entry.Valid() {
		rlog.Warn("discarding cache entry with checksum mismatch",
			"checksum", entry.Checksum, "content_length", len(entry.Content))
		return "", false
	}
	return entry.Content, true
}

func checksum(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
