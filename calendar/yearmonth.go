package calendar

import "fmt"

// YearMonth is a month of a specific year.
type YearMonth struct {
	year  Year
	month Month
}

// Year returns the year component.
func (ym YearMonth) Year() Year {
	return ym.year
}

// Month returns the month component.
func (ym YearMonth) Month() Month {
	return ym.month
}

// TotalDays returns the number of days in the month.
// The leap year rule only affects February.
func (ym YearMonth) TotalDays() int {
	switch ym.month {
	case January, March, May, July, August, October, December:
		return 31
	case April, June, September, November:
		return 30
	case February:
		if ym.year.HasLeapDay() {
			return 29
		}
		return 28
	default:
		panic(fmt.Sprintf("invalid month: %d", int(ym.month)))
	}
}

// WithDay combines the year and month with a day of the month.
// It returns an InvalidDayForMonthError when the day falls outside the month.
func (ym YearMonth) WithDay(day int) (Date, error) {
	if day < 1 || day > ym.TotalDays() {
		return Date{}, &InvalidDayForMonthError{Year: ym.year, Month: ym.month, Day: day}
	}
	return Date{year: ym.year, month: ym.month, day: day}, nil
}

// FirstDay returns the first day of the month.
func (ym YearMonth) FirstDay() Date {
	return Date{year: ym.year, month: ym.month, day: 1}
}

// LastDay returns the last day of the month.
func (ym YearMonth) LastDay() Date {
	return Date{year: ym.year, month: ym.month, day: ym.TotalDays()}
}

// Next returns the month after ym, rolling over into January of the next year.
func (ym YearMonth) Next() YearMonth {
	if ym.month == December {
		return YearMonth{year: ym.year.Next(), month: January}
	}
	return YearMonth{year: ym.year, month: ym.month + 1}
}

// Prev returns the month before ym, rolling over into December of the previous year.
func (ym YearMonth) Prev() YearMonth {
	if ym.month == January {
		return YearMonth{year: ym.year.Prev(), month: December}
	}
	return YearMonth{year: ym.year, month: ym.month - 1}
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", int(ym.year), int(ym.month))
}

// InvalidDayForMonthError reports a day that falls outside its month.
type InvalidDayForMonthError struct {
	Year  Year
	Month Month
	Day   int
}

func (e *InvalidDayForMonthError) Error() string {
	totalDays := e.Year.WithMonth(e.Month).TotalDays()
	return fmt.Sprintf("invalid day for %s %04d: %d, expected a value in the range 1-%d", e.Month, int(e.Year), e.Day, totalDays)
}
