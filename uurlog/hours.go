// Package uurlog implements the hour log: a line-oriented time tracking
// format that shares the calendar with the ledger but has no balancing or
// hierarchy concerns. Each entry is one line:
//
//	2020-01-02, 1h30m, [project] what was done
//
// Comments ("#") and blank lines are ignored.
package uurlog

import (
	"fmt"
	"strings"
)

// Hours is a duration counted in whole minutes.
type Hours struct {
	minutes uint
}

// FromMinutes creates a duration from a total number of minutes.
func FromMinutes(minutes uint) Hours {
	return Hours{minutes: minutes}
}

// FromHoursMinutes creates a duration from an hour and minute count.
// Minute counts of 60 or more carry over into the hours.
func FromHoursMinutes(hours, minutes uint) Hours {
	return Hours{minutes: hours*60 + minutes}
}

// TotalMinutes returns the duration as a total number of minutes.
func (h Hours) TotalMinutes() uint {
	return h.minutes
}

// Hours returns the whole hours of the duration.
func (h Hours) Hours() uint {
	return h.minutes / 60
}

// Minutes returns the minutes past the hour.
func (h Hours) Minutes() uint {
	return h.minutes % 60
}

// Add returns the sum of both durations.
func (h Hours) Add(other Hours) Hours {
	return Hours{minutes: h.minutes + other.minutes}
}

// String renders the duration as "3h30m", or "45m" for durations under
// one hour.
func (h Hours) String() string {
	if h.Hours() != 0 {
		return fmt.Sprintf("%dh%02dm", h.Hours(), h.Minutes())
	}
	return fmt.Sprintf("%02dm", h.Minutes())
}

// ParseHours parses a duration like "3h30m", "10h", or "45m": an optional
// hour count followed by an optional minute count, with nothing else. A
// bare number without a unit is rejected.
func ParseHours(data string) (Hours, error) {
	if data == "" {
		return Hours{}, &HoursSyntaxError{Input: data}
	}

	var total uint
	remaining := data

	// Hours must precede minutes.
	if value, rest, found := strings.Cut(remaining, "h"); found {
		hours, err := parseUint(value)
		if err != nil {
			return Hours{}, &HoursSyntaxError{Input: data}
		}
		total += hours * 60
		remaining = rest
	}

	if value, rest, found := strings.Cut(remaining, "m"); found {
		minutes, err := parseUint(value)
		if err != nil {
			return Hours{}, &HoursSyntaxError{Input: data}
		}
		total += minutes
		remaining = rest
	}

	if remaining != "" {
		return Hours{}, &HoursSyntaxError{Input: data}
	}

	return FromMinutes(total), nil
}

func parseUint(data string) (uint, error) {
	if data == "" {
		return 0, fmt.Errorf("expected digits, got empty string")
	}
	var value uint
	for _, c := range []byte(data) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("unexpected character %q in number", c)
		}
		value = value*10 + uint(c-'0')
	}
	return value, nil
}

// HoursSyntaxError reports a malformed duration.
type HoursSyntaxError struct {
	Input string
}

func (e *HoursSyntaxError) Error() string {
	return fmt.Sprintf("invalid hours syntax: expected something like 3h30m, got %q", e.Input)
}
