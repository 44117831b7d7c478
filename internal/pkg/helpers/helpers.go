package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for clock times (e.g. lecture_time).
const TimeLayout = "15:04"

// ParseDuration parses a duration string, returns the default on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses a "YYYY-MM-DD" date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Today truncates the given instant to its calendar date.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// NullableString returns nil for empty strings, otherwise a pointer to s.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringOrEmpty dereferences a string pointer, returning "" for nil.
func StringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
