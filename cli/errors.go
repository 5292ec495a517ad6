package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"github.com/zzptools/grootboek/ledger"
	"github.com/zzptools/grootboek/loader"
	"github.com/zzptools/grootboek/uurlog"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// renderLoadError prints a load failure to stderr, with source context
// when the file was readable but did not parse, and returns a short error
// for the non-zero exit.
func renderLoadError(ctx *kong.Context, result *loader.Result, err error) error {
	var ioErr *loader.IOError
	if errors.As(err, &ioErr) {
		printError(ctx.Stderr, err.Error())
		return fmt.Errorf("could not read %s", ioErr.Filename)
	}

	var source []byte
	if result != nil {
		source = result.Source
	}
	_, _ = fmt.Fprintln(ctx.Stderr, NewErrorRenderer(source).Render(err))
	return fmt.Errorf("parse error")
}

// ErrorRenderer renders parse errors with terminal styling and source
// context, pointing a caret at the offending token.
type ErrorRenderer struct {
	source []byte
}

// NewErrorRenderer creates a renderer with source content for context.
func NewErrorRenderer(source []byte) *ErrorRenderer {
	return &ErrorRenderer{source: source}
}

// Render formats a single error with styling and context.
func (r *ErrorRenderer) Render(err error) string {
	var ledgerErr *ledger.ParseError
	if errors.As(err, &ledgerErr) {
		return r.renderWithSourceContext(ledgerErr.Error(), ledgerErr.Line, ledgerErr.Token)
	}

	var hoursErr *uurlog.ParseError
	if errors.As(err, &hoursErr) {
		return r.renderWithSourceContext(hoursErr.Error(), hoursErr.Line, hoursErr.Token)
	}

	return err.Error()
}

// renderWithSourceContext shows the error message followed by the source
// lines around the offending one, with a caret under the offending token.
func (r *ErrorRenderer) renderWithSourceContext(message string, line int, token string) string {
	var buf strings.Builder

	buf.WriteString(errorStyle.Render(message))

	if r.source == nil {
		return buf.String()
	}
	sourceLines := strings.Split(string(r.source), "\n")
	if line < 1 || line > len(sourceLines) {
		return buf.String()
	}

	buf.WriteString("\n\n")

	// Two lines of context before, one after.
	start := max(line-3, 0)
	end := min(line+1, len(sourceLines))

	for i := start; i < end; i++ {
		buf.WriteString("   ")
		buf.WriteString(errContextStyle.Render(sourceLines[i]))
		buf.WriteByte('\n')

		if i != line-1 {
			continue
		}

		// Point at the token within the offending line.
		column := strings.Index(sourceLines[i], token)
		width := len(token)
		if column < 0 {
			column, width = 0, len(sourceLines[i])
		}
		buf.WriteString("   ")
		buf.WriteString(strings.Repeat(" ", column))
		buf.WriteString(errCaretStyle.Render(strings.Repeat("^", max(width, 1))))
		buf.WriteByte('\n')
	}

	return buf.String()
}
