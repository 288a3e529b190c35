package util

import (
	"strings"
	"testing"
	"time"
)

func TestRandomID(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 100 {
		id, err := RandomID(9)
		if err != nil {
			t.Fatalf("RandomID() error = %v", err)
		}
		if len(id) != 9 {
			t.Fatalf("len(RandomID(9)) = %d, want 9", len(id))
		}
		if strings.Trim(id, base36Alphabet) != "" {
			t.Fatalf("RandomID() = %q contains non-base36 characters", id)
		}
		seen[id] = struct{}{}
	}

	if len(seen) < 99 {
		t.Fatalf("expected ids to be unique, got %d distinct of 100", len(seen))
	}
}

func TestRandomID_InvalidLength(t *testing.T) {
	t.Parallel()

	if _, err := RandomID(0); err == nil {
		t.Fatal("expected error for zero length")
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestFormatAgo(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	if got := FormatAgo(now.Add(-90*time.Second), now); got != "1m30s ago" {
		t.Fatalf("FormatAgo() = %s, want 1m30s ago", got)
	}
	if got := FormatAgo(now.Add(time.Second), now); got != "just now" {
		t.Fatalf("FormatAgo() = %s, want just now", got)
	}
}
