package uurlog

import (
	"fmt"
	"strings"

	"github.com/zzptools/grootboek/calendar"
)

// Entry is one logged unit of work: a date, a duration, and a description
// with optional tags.
type Entry struct {
	Date        calendar.Date
	Hours       Hours
	Description string
	Tags        []string
}

// ParseEntry parses a single "DATE, HOURS, DESCRIPTION" line. Leading
// "[tag]" groups in the description become tags:
//
//	2020-01-02, 1h30m, [acme] fix the flux capacitor
func ParseEntry(data string) (Entry, error) {
	fields := strings.SplitN(data, ",", 3)
	if len(fields) != 3 {
		return Entry{}, &EntrySyntaxError{Input: data}
	}

	date, err := calendar.ParseDate(strings.TrimSpace(fields[0]))
	if err != nil {
		return Entry{}, err
	}

	hours, err := ParseHours(strings.TrimSpace(fields[1]))
	if err != nil {
		return Entry{}, err
	}

	description := strings.TrimSpace(fields[2])
	var tags []string
	for strings.HasPrefix(description, "[") {
		end := strings.IndexByte(description, ']')
		if end < 0 {
			break
		}
		tags = append(tags, description[1:end])
		description = strings.TrimSpace(description[end+1:])
	}

	return Entry{Date: date, Hours: hours, Description: description, Tags: tags}, nil
}

// Parse parses a whole hour log. Blank lines and "#" comments are skipped;
// the first malformed entry aborts the parse with a *ParseError naming the
// offending line.
func Parse(source string) ([]Entry, error) {
	var entries []Entry
	for i, line := range strings.Split(source, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, err := ParseEntry(line)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Token: line, Err: err}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Total sums the durations of all entries.
func Total(entries []Entry) Hours {
	var total Hours
	for _, entry := range entries {
		total = total.Add(entry.Hours)
	}
	return total
}

// FilterRange returns the entries whose dates fall inside the range,
// keeping file order.
func FilterRange(entries []Entry, r calendar.Range) []Entry {
	var filtered []Entry
	for _, entry := range entries {
		if r.Contains(entry.Date) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// EntrySyntaxError reports a line that does not have the three
// comma-separated entry fields.
type EntrySyntaxError struct {
	Input string
}

func (e *EntrySyntaxError) Error() string {
	return fmt.Sprintf("invalid entry syntax: expected \"date, hours, description\", got %q", e.Input)
}

// ParseError is a fatal error in an hour log file.
type ParseError struct {
	Line  int    // 1-indexed source line.
	Token string // The offending line.
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
