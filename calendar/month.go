package calendar

import "fmt"

// Month is a month of the Gregorian calendar, numbered 1 through 12.
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// NewMonth converts a month number to a Month.
// It returns an InvalidMonthNumberError for numbers outside 1-12.
func NewMonth(number int) (Month, error) {
	if number < 1 || number > 12 {
		return 0, &InvalidMonthNumberError{Number: number}
	}
	return Month(number), nil
}

// Number returns the month number, 1 through 12.
func (m Month) Number() int {
	return int(m)
}

func (m Month) String() string {
	switch m {
	case January:
		return "January"
	case February:
		return "February"
	case March:
		return "March"
	case April:
		return "April"
	case May:
		return "May"
	case June:
		return "June"
	case July:
		return "July"
	case August:
		return "August"
	case September:
		return "September"
	case October:
		return "October"
	case November:
		return "November"
	case December:
		return "December"
	default:
		return fmt.Sprintf("Month(%d)", int(m))
	}
}

// InvalidMonthNumberError reports a month number outside the range 1-12.
type InvalidMonthNumberError struct {
	Number int
}

func (e *InvalidMonthNumberError) Error() string {
	return fmt.Sprintf("invalid month number: %d, expected a value in the range 1-12", e.Number)
}
