package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/pkg/errors"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// RandomID returns an n-character lowercase base36 token.
func RandomID(n int) (string, error) {
	if n <= 0 {
		return "", errors.Errorf("invalid id length: %d", n)
	}

	limit := big.NewInt(int64(len(base36Alphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random source")
		}
		buf[i] = base36Alphabet[idx.Int64()]
	}

	return string(buf), nil
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}

// FormatAgo renders how long ago t happened relative to now.
func FormatAgo(t, now time.Time) string {
	if t.After(now) {
		return "just now"
	}

	return FormatDuration(now.Sub(t)) + " ago"
}
