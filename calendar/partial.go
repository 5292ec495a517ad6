package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// PartialDate is a date specified down to the year, month, or day.
// It is used to select a period of one year, one month, or one day.
type PartialDate struct {
	year  Year
	month Month // 0 when only a year is given
	day   int   // 0 when no day is given
}

// PartialFromYear creates a partial date covering a whole year.
func PartialFromYear(year Year) PartialDate {
	return PartialDate{year: year}
}

// PartialFromYearMonth creates a partial date covering a whole month.
func PartialFromYearMonth(ym YearMonth) PartialDate {
	return PartialDate{year: ym.Year(), month: ym.Month()}
}

// PartialFromDate creates a partial date covering a single day.
func PartialFromDate(d Date) PartialDate {
	return PartialDate{year: d.Year(), month: d.Month(), day: d.Day()}
}

// ParsePartialDate parses a partial date in "YYYY[-MM[-DD]]" form.
func ParsePartialDate(data string) (PartialDate, error) {
	fields := strings.SplitN(strings.TrimSpace(data), "-", 3)

	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return PartialDate{}, &InvalidDateSyntaxError{Input: data}
	}
	if len(fields) == 1 {
		return PartialFromYear(Year(year)), nil
	}

	monthNumber, err := strconv.Atoi(fields[1])
	if err != nil {
		return PartialDate{}, &InvalidDateSyntaxError{Input: data}
	}
	month, err := NewMonth(monthNumber)
	if err != nil {
		return PartialDate{}, err
	}
	if len(fields) == 2 {
		return PartialFromYearMonth(Year(year).WithMonth(month)), nil
	}

	day, err := strconv.Atoi(fields[2])
	if err != nil {
		return PartialDate{}, &InvalidDateSyntaxError{Input: data}
	}
	date, err := Year(year).WithMonth(month).WithDay(day)
	if err != nil {
		return PartialDate{}, err
	}
	return PartialFromDate(date), nil
}

// AsRange returns the half-open date range [start, end) covered by the
// partial date: the whole year, the whole month, or the single day.
func (p PartialDate) AsRange() Range {
	switch {
	case p.month == 0:
		return Range{Start: p.year.FirstDay(), End: p.year.Next().FirstDay()}
	case p.day == 0:
		ym := p.year.WithMonth(p.month)
		return Range{Start: ym.FirstDay(), End: ym.Next().FirstDay()}
	default:
		d := Date{year: p.year, month: p.month, day: p.day}
		return Range{Start: d, End: d.Next()}
	}
}

func (p PartialDate) String() string {
	switch {
	case p.month == 0:
		return fmt.Sprintf("%04d", int(p.year))
	case p.day == 0:
		return fmt.Sprintf("%04d-%02d", int(p.year), int(p.month))
	default:
		return fmt.Sprintf("%04d-%02d-%02d", int(p.year), int(p.month), p.day)
	}
}

// Range is a half-open range of dates: Start is included, End is not.
type Range struct {
	Start Date
	End   Date
}

// Contains reports whether the date falls inside the range.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Start) && d.Before(r.End)
}
