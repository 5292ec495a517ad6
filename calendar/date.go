// Package calendar implements validated Gregorian calendar values.
//
// A Date can only be constructed through validating constructors, so any
// Date value in circulation refers to a day that actually exists. All types
// are immutable values; arithmetic returns new values.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// Date is a day of the proleptic Gregorian calendar.
//
// The zero value is not a valid date; obtain one through NewDate,
// ParseDate, or the calendar arithmetic methods.
type Date struct {
	year  Year
	month Month
	day   int
}

// NewDate creates a date from its components.
// It fails when the month or day is out of range for the given year.
func NewDate(year Year, month Month, day int) (Date, error) {
	m, err := NewMonth(int(month))
	if err != nil {
		return Date{}, err
	}
	return year.WithMonth(m).WithDay(day)
}

// MustDate is like NewDate but panics on invalid input.
// Intended for tests and compile-time constants.
func MustDate(year Year, month Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// ParseDate parses a date in "YYYY-MM-DD" form.
//
// Syntax errors (wrong field count, non-numeric fields) are reported as
// InvalidDateSyntaxError. Semantically invalid dates are reported with the
// range error of the offending component, so callers can tell a malformed
// token apart from an out-of-range day.
func ParseDate(data string) (Date, error) {
	fields := strings.SplitN(data, "-", 3)
	if len(fields) != 3 {
		return Date{}, &InvalidDateSyntaxError{Input: data}
	}

	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return Date{}, &InvalidDateSyntaxError{Input: data}
	}
	month, err := strconv.Atoi(fields[1])
	if err != nil {
		return Date{}, &InvalidDateSyntaxError{Input: data}
	}
	day, err := strconv.Atoi(fields[2])
	if err != nil {
		return Date{}, &InvalidDateSyntaxError{Input: data}
	}

	return NewDate(Year(year), Month(month), day)
}

// Year returns the year component.
func (d Date) Year() Year {
	return d.year
}

// Month returns the month component.
func (d Date) Month() Month {
	return d.month
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.day
}

// YearMonth returns the month of the date.
func (d Date) YearMonth() YearMonth {
	return d.year.WithMonth(d.month)
}

// Next returns the day after d, rolling over month and year boundaries.
func (d Date) Next() Date {
	if d.day < d.YearMonth().TotalDays() {
		return Date{year: d.year, month: d.month, day: d.day + 1}
	}
	return d.YearMonth().Next().FirstDay()
}

// Prev returns the day before d, rolling over month and year boundaries.
func (d Date) Prev() Date {
	if d.day > 1 {
		return Date{year: d.year, month: d.month, day: d.day - 1}
	}
	return d.YearMonth().Prev().LastDay()
}

// Compare orders dates lexicographically by (year, month, day).
// It returns -1 when d is before other, 0 when equal and 1 when after.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return compareInt(int(d.year), int(other.year))
	case d.month != other.month:
		return compareInt(int(d.month), int(other.month))
	default:
		return compareInt(d.day, other.day)
	}
}

// Before reports whether d is before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", int(d.year), int(d.month), d.day)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// InvalidDateSyntaxError reports a date string that does not follow the
// "YYYY-MM-DD" syntax. Dates with valid syntax but out-of-range components
// are reported with InvalidMonthNumberError or InvalidDayForMonthError
// instead.
type InvalidDateSyntaxError struct {
	Input string
}

func (e *InvalidDateSyntaxError) Error() string {
	return fmt.Sprintf("invalid date syntax: %q, expected \"YYYY-MM-DD\"", e.Input)
}
