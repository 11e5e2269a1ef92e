package utils

import (
	"fmt"
	"time"

	"github.com/ariseapp/arise/internal/constants"
)

// Today returns the current day string (YYYY-MM-DD).
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// ParseDate parses a day string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", dateStr, err)
	}
	return t, nil
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (expected HH:MM): %w", timeStr, err)
	}
	return t, nil
}

// ResolveDate returns today for an empty input, otherwise validates and
// returns the given day string.
func ResolveDate(dateStr string) (string, error) {
	if dateStr == "" {
		return Today(), nil
	}
	if _, err := ParseDate(dateStr); err != nil {
		return "", err
	}
	return dateStr, nil
}

// FormatMinutes renders a minute count as "XhYm" or "Ym".
func FormatMinutes(minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}
