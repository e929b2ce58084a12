package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Midnight is the placeholder slot upstream calendars emit for empty days.
const Midnight = "00:00:00"

var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrNoTimeOfDay      = errors.New("timestamp has no time of day")

	timeInTimestamp = regexp.MustCompile(`T(\d{2}:\d{2}:\d{2})`)
	dateInTimestamp = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})[T ]`)

	fallbackLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04:05",
	}
)

// TimeOfDay is a wall-clock time with second precision.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ParseTimeOfDay parses an "HH:MM:SS" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	var vals [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
		}
		vals[i] = n
	}
	t := TimeOfDay{Hour: vals[0], Minute: vals[1], Second: vals[2]}
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 || t.Second < 0 || t.Second > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q out of range", ErrInvalidTimeOfDay, s)
	}
	return t, nil
}

// Minutes returns the fractional number of minutes since midnight.
func (t TimeOfDay) Minutes() float64 {
	return float64(t.Hour*60+t.Minute) + float64(t.Second)/60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// ExtractRequestedTime pulls the HH:MM:SS portion out of an ISO-8601-like
// timestamp without applying its zone offset, so "2025-09-10T09:00:00-05:00"
// yields "09:00:00".
func ExtractRequestedTime(ts string) (string, error) {
	if m := timeInTimestamp.FindStringSubmatch(ts); m != nil {
		return m[1], nil
	}
	for _, layout := range fallbackLayouts {
		if parsed, err := time.Parse(layout, ts); err == nil {
			return parsed.Format("15:04:05"), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrNoTimeOfDay, ts)
}

// ExtractRequestedDate returns the literal YYYY-MM-DD prefix of the timestamp
// (date and time separated by "T" or a space), falling back to whatever
// precedes the first "T".
func ExtractRequestedDate(ts string) string {
	if m := dateInTimestamp.FindStringSubmatch(ts); m != nil {
		return m[1]
	}
	date, _, _ := strings.Cut(ts, "T")
	return date
}
