// internal/daily/daily.go
//
// Deterministic word of the day.
// The index for a date is HMAC-SHA256(salt, YYYY-MM-DD) mod the list length,
// so every player gets the same word for a given date, language and salt.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Source is a words.Source that always draws the word of the day.
type Source struct {
	Date time.Time
	Salt string
}

// IntN returns WordIndex for the configured date.
func (s Source) IntN(n int) int { return WordIndex(s.Date, s.Salt, n) }
