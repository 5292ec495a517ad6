package calendar_test

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/zzptools/grootboek/calendar"
)

func TestHasLeapDay(t *testing.T) {
	tests := []struct {
		year     calendar.Year
		expected bool
	}{
		{2020, true},
		{2000, true},
		{2021, false},
		{1900, false},
		{2024, true},
		{1600, true},
		{2100, false},
	}

	for _, tt := range tests {
		t.Run(tt.year.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.year.HasLeapDay())
		})
	}
}

func TestNewMonth(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		for n := 1; n <= 12; n++ {
			m, err := calendar.NewMonth(n)
			assert.NoError(t, err)
			assert.Equal(t, n, m.Number())
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		for _, n := range []int{0, 13, -1, 100} {
			_, err := calendar.NewMonth(n)
			var monthErr *calendar.InvalidMonthNumberError
			assert.True(t, errors.As(err, &monthErr))
			assert.Equal(t, n, monthErr.Number)
		}
	})
}

func TestTotalDays(t *testing.T) {
	tests := []struct {
		year     calendar.Year
		month    calendar.Month
		expected int
	}{
		{2021, calendar.January, 31},
		{2021, calendar.February, 28},
		{2020, calendar.February, 29},
		{2021, calendar.April, 30},
		{2021, calendar.December, 31},
		{1900, calendar.February, 28},
		{2000, calendar.February, 29},
	}

	for _, tt := range tests {
		t.Run(tt.year.WithMonth(tt.month).String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.year.WithMonth(tt.month).TotalDays())
		})
	}
}

func TestNewDate(t *testing.T) {
	t.Run("AllValidDaysRoundTrip", func(t *testing.T) {
		for _, year := range []calendar.Year{1900, 2000, 2020, 2021} {
			for m := 1; m <= 12; m++ {
				month, err := calendar.NewMonth(m)
				assert.NoError(t, err)
				for day := 1; day <= year.WithMonth(month).TotalDays(); day++ {
					date, err := calendar.NewDate(year, month, day)
					assert.NoError(t, err)

					parsed, err := calendar.ParseDate(date.String())
					assert.NoError(t, err)
					assert.Equal(t, date, parsed)
				}
			}
		}
	})

	t.Run("DayOutOfRange", func(t *testing.T) {
		_, err := calendar.NewDate(2021, calendar.February, 29)
		var dayErr *calendar.InvalidDayForMonthError
		assert.True(t, errors.As(err, &dayErr))
		assert.Equal(t, 29, dayErr.Day)
		assert.Equal(t, calendar.February, dayErr.Month)
	})

	t.Run("MonthOutOfRange", func(t *testing.T) {
		_, err := calendar.NewDate(2021, 13, 1)
		var monthErr *calendar.InvalidMonthNumberError
		assert.True(t, errors.As(err, &monthErr))
	})
}

func TestParseDate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		date, err := calendar.ParseDate("2020-01-02")
		assert.NoError(t, err)
		assert.Equal(t, calendar.MustDate(2020, calendar.January, 2), date)
		assert.Equal(t, "2020-01-02", date.String())
	})

	t.Run("SyntaxErrors", func(t *testing.T) {
		for _, input := range []string{"", "2020", "2020-01", "2020-xx-01", "aaaa-01-01", "2020-01-bb"} {
			_, err := calendar.ParseDate(input)
			var syntaxErr *calendar.InvalidDateSyntaxError
			assert.True(t, errors.As(err, &syntaxErr), "expected syntax error for %q, got %v", input, err)
		}
	})

	t.Run("RangeErrorsAreNotSyntaxErrors", func(t *testing.T) {
		_, err := calendar.ParseDate("2021-02-29")
		var syntaxErr *calendar.InvalidDateSyntaxError
		assert.False(t, errors.As(err, &syntaxErr))
		var dayErr *calendar.InvalidDayForMonthError
		assert.True(t, errors.As(err, &dayErr))

		_, err = calendar.ParseDate("2021-13-01")
		var monthErr *calendar.InvalidMonthNumberError
		assert.True(t, errors.As(err, &monthErr))
	})
}

func TestNextPrev(t *testing.T) {
	tests := []struct {
		name string
		from calendar.Date
		to   calendar.Date
	}{
		{"PlainDay", calendar.MustDate(2020, calendar.March, 14), calendar.MustDate(2020, calendar.March, 15)},
		{"MonthRollover", calendar.MustDate(2020, calendar.January, 31), calendar.MustDate(2020, calendar.February, 1)},
		{"YearRollover", calendar.MustDate(2020, calendar.December, 31), calendar.MustDate(2021, calendar.January, 1)},
		{"LeapDay", calendar.MustDate(2020, calendar.February, 28), calendar.MustDate(2020, calendar.February, 29)},
		{"NonLeapFebruary", calendar.MustDate(2021, calendar.February, 28), calendar.MustDate(2021, calendar.March, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.to, tt.from.Next())
			assert.Equal(t, tt.from, tt.to.Prev())
			assert.Equal(t, tt.from, tt.from.Next().Prev())
			assert.Equal(t, tt.to, tt.to.Prev().Next())
		})
	}
}

func TestCompare(t *testing.T) {
	a := calendar.MustDate(2020, calendar.January, 2)
	b := calendar.MustDate(2020, calendar.February, 1)
	c := calendar.MustDate(2021, calendar.January, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.Before(c))
	assert.True(t, c.After(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(b))
}
