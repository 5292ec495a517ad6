package ledger_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/zzptools/grootboek/ledger"
)

func TestCentsString(t *testing.T) {
	tests := []struct {
		cents    ledger.Cents
		expected string
	}{
		{0, "+0.00"},
		{1, "+0.01"},
		{-1, "-0.01"},
		{150, "+1.50"},
		{-150, "-1.50"},
		{1000, "+10.00"},
		{-12345, "-123.45"},
		{100050, "+1000.50"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cents.String())
		})
	}
}

func TestParseCents(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		tests := []struct {
			input    string
			expected ledger.Cents
		}{
			{"0", 0},
			{"5", 500},
			{"1.50", 150},
			{"0.05", 5},
			{"123.45", 12345},
			{"1000", 100000},
		}

		for _, tt := range tests {
			c, err := ledger.ParseCents(tt.input)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, input := range []string{"", ".", "1.5", "1.500", "1.", "1.5x", "x.50", "1,50", "1.-5", "+1.50", " 1.50"} {
			_, err := ledger.ParseCents(input)
			assert.Error(t, err, "expected error for %q", input)
		}
	})
}

func TestCentsArithmetic(t *testing.T) {
	assert.Equal(t, ledger.Cents(150), ledger.Cents(100).Add(50))
	assert.Equal(t, ledger.Cents(-50), ledger.Cents(100).Add(-150))
	assert.Equal(t, ledger.Cents(-100), ledger.Cents(100).Neg())
	assert.True(t, ledger.Cents(0).IsZero())
	assert.False(t, ledger.Cents(1).IsZero())
	assert.True(t, ledger.Cents(-1).IsNegative())
	assert.False(t, ledger.Cents(0).IsNegative())
}
