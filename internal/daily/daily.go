// internal/daily/daily.go
//
// Daily challenge: every player gets the same secret for a given UTC date.
// The secret is derived from a keyed BLAKE2b-256 hash of the date key, so it
// is stable for the day and unpredictable without the salt.

package daily

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"
)

// ErrInvalidArgs is returned for a non-positive alphabet or length.
var ErrInvalidArgs = errors.New("daily: invalid arguments")

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParseDate accepts a YYYY-MM-DD string; empty means today.
func ParseDate(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return now.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("daily: date %q: %w", s, err)
	}
	return t, nil
}

// Secret returns length symbol indices in [0, alphabet) for date.
// Position i uses BLAKE2b-256(key=salt, DateKey(date) || i); the first 8 bytes
// of the sum, big endian, modulo alphabet.
// The salt may be at most 64 bytes (BLAKE2b key limit).
func Secret(date time.Time, salt string, alphabet, length int) ([]int, error) {
	if alphabet <= 0 || length <= 0 {
		return nil, fmt.Errorf("%w: alphabet=%d length=%d", ErrInvalidArgs, alphabet, length)
	}
	dk := []byte(DateKey(date))
	out := make([]int, length)
	for i := range out {
		h, err := blake2b.New256([]byte(salt))
		if err != nil {
			return nil, fmt.Errorf("daily: salt: %w", err)
		}
		h.Write(dk)
		h.Write([]byte{byte(i)})
		sum := h.Sum(nil)
		n := binary.BigEndian.Uint64(sum[:8])
		out[i] = int(n % uint64(alphabet))
	}
	return out, nil
}
