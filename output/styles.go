// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/zzptools/grootboek/ledger"
)

// Styles provides styled output helpers for the CLI.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		Bold().
		String()
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		Bold().
		String()
}

// Date returns a styled date (cyan).
func (s *Styles) Date(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("6")).
		String()
}

// Description returns a styled transaction description (magenta).
func (s *Styles) Description(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("5")).
		String()
}

// Account returns a styled account name (yellow).
func (s *Styles) Account(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		String()
}

// Tag returns a styled tag (cyan).
func (s *Styles) Tag(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("6")).
		String()
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Cents returns a styled amount: green when positive, red when negative,
// dimmed gray when zero.
func (s *Styles) Cents(c ledger.Cents) string {
	text := c.String()
	switch {
	case c > 0:
		return s.output.String(text).Foreground(s.output.Color("2")).String()
	case c < 0:
		return s.output.String(text).Foreground(s.output.Color("1")).String()
	default:
		return s.output.String(text).Foreground(s.output.Color("241")).String()
	}
}

// Output returns the underlying termenv Output for advanced usage.
func (s *Styles) Output() *termenv.Output {
	return s.output
}
