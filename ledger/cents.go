package ledger

import (
	"fmt"
	"strings"
)

// Cents is a monetary amount in whole cents. Arithmetic on cents is exact;
// there is no floating point anywhere in the bookkeeping.
type Cents int64

// Add returns the sum of both amounts.
func (c Cents) Add(other Cents) Cents {
	return c + other
}

// Neg returns the amount with its sign flipped.
func (c Cents) Neg() Cents {
	return -c
}

// IsZero reports whether the amount is exactly zero.
func (c Cents) IsZero() bool {
	return c == 0
}

// IsNegative reports whether the amount is below zero.
func (c Cents) IsNegative() bool {
	return c < 0
}

// String formats the amount as whole units with two decimals and an
// explicit sign, e.g. "+1.50" or "-0.01".
func (c Cents) String() string {
	sign := "+"
	value := int64(c)
	if value < 0 {
		sign = "-"
		value = -value
	}
	return fmt.Sprintf("%s%d.%02d", sign, value/100, value%100)
}

// ParseCents parses an unsigned amount in "W" or "W.DD" form, where the
// decimal part has exactly two digits. The sign is not part of the amount
// syntax; callers handle it separately.
func ParseCents(data string) (Cents, error) {
	whole, decimals, found := strings.Cut(data, ".")
	if found && len(decimals) != 2 {
		return 0, &CentsSyntaxError{Input: data}
	}

	units, err := parseDigits(whole)
	if err != nil {
		return 0, &CentsSyntaxError{Input: data}
	}
	cents := units * 100

	if found {
		fraction, err := parseDigits(decimals)
		if err != nil {
			return 0, &CentsSyntaxError{Input: data}
		}
		cents += fraction
	}

	return Cents(cents), nil
}

// parseDigits parses a non-empty run of ASCII digits. Unlike
// strconv.Atoi it rejects signs and whitespace.
func parseDigits(data string) (int64, error) {
	if data == "" {
		return 0, fmt.Errorf("empty number")
	}
	var value int64
	for _, c := range []byte(data) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid digit %q", c)
		}
		value = value*10 + int64(c-'0')
	}
	return value, nil
}

// CentsSyntaxError reports an amount that is not in "W" or "W.DD" form.
type CentsSyntaxError struct {
	Input string
}

func (e *CentsSyntaxError) Error() string {
	return fmt.Sprintf("invalid amount %q, expected whole cents like 12.50", e.Input)
}
