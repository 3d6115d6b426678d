// Package biztime provides time utilities for the application.
// All storage and transport use UTC; implicit local timezone is prohibited.
package biztime

import (
	"fmt"
	"time"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToUTC converts a time (any timezone) to UTC.
func ToUTC(t time.Time) time.Time {
	return t.UTC()
}

// FromUnixMilli converts a Unix millisecond timestamp to a UTC time.
func FromUnixMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// FormatRFC3339 formats a UTC time using RFC3339 for transport.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ParseRFC3339 parses an RFC3339 timestamp into a UTC time.
func ParseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp format %q: %w", s, err)
	}
	return t.UTC(), nil
}
