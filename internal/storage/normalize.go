package storage

import (
	"math"
	"strings"
	"time"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp accepts the date shapes clients actually send. The
// second return reports whether the input parsed at all.
func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeList trims entries, drops empties, and caps the result.
func normalizeList(in []string, max int) []string {
	out := []string{}
	for _, item := range in {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
		if len(out) == max {
			break
		}
	}
	return out
}

// clampCraving rounds and clamps a craving level to the 0–5 scale.
// Clamping happens before the integer conversion so extreme inputs
// cannot wrap.
func clampCraving(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 5 {
		return 5
	}
	return int(math.Round(v))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
