package calendar

import "fmt"

// Year is a year of the proleptic Gregorian calendar.
// Negative values represent years before the common era.
type Year int

// HasLeapDay reports whether the year contains a February 29th.
func (y Year) HasLeapDay() bool {
	switch {
	case y%400 == 0:
		return true
	case y%100 == 0:
		return false
	default:
		return y%4 == 0
	}
}

// WithMonth combines the year with a month.
func (y Year) WithMonth(m Month) YearMonth {
	return YearMonth{year: y, month: m}
}

// FirstDay returns January 1st of the year.
func (y Year) FirstDay() Date {
	return Date{year: y, month: January, day: 1}
}

// LastDay returns December 31st of the year.
func (y Year) LastDay() Date {
	return Date{year: y, month: December, day: 31}
}

// Next returns the year after y.
func (y Year) Next() Year {
	return y + 1
}

// Prev returns the year before y.
func (y Year) Prev() Year {
	return y - 1
}

func (y Year) String() string {
	return fmt.Sprintf("%04d", int(y))
}
