package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/zzptools/grootboek/ledger"
)

func TestErrorRenderer_RenderParseErrorWithSourceContext(t *testing.T) {
	source := `2020-01-02: buy coffee
+1.50 assets/cash
1.50 expenses/coffee`

	parseErr := &ledger.ParseError{
		Kind:  ledger.MissingSign,
		Token: "1.50",
		Line:  3,
	}

	renderer := NewErrorRenderer([]byte(source))
	output := renderer.Render(parseErr)

	assert.Contains(t, output, "missing sign")
	assert.Contains(t, output, "expenses/coffee")
	assert.Contains(t, output, "^^^^")

	// Source lines are indented with 3 spaces.
	foundIndentedLine := false
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "   ") && strings.Contains(line, "expenses/coffee") {
			foundIndentedLine = true
			break
		}
	}
	assert.True(t, foundIndentedLine)
}

func TestErrorRenderer_CaretPointsAtToken(t *testing.T) {
	source := "2020-13-01: too many months"

	parseErr := &ledger.ParseError{
		Kind:  ledger.InvalidDate,
		Token: "2020-13-01",
		Line:  1,
	}

	output := NewErrorRenderer([]byte(source)).Render(parseErr)

	lines := strings.Split(output, "\n")
	var caretLine string
	for _, line := range lines {
		if strings.Contains(line, "^") {
			caretLine = line
		}
	}
	assert.NotEqual(t, "", caretLine)
	assert.Contains(t, caretLine, strings.Repeat("^", len("2020-13-01")))
}

func TestErrorRenderer_RenderWithoutSource(t *testing.T) {
	parseErr := &ledger.ParseError{
		Kind:  ledger.MissingDescription,
		Token: "2020-01-02",
		Line:  1,
	}

	output := NewErrorRenderer(nil).Render(parseErr)

	assert.Equal(t, parseErr.Error(), output)
}

func TestErrorRenderer_UnknownErrorPassesThrough(t *testing.T) {
	output := NewErrorRenderer(nil).Render(errors.New("boom"))
	assert.Equal(t, "boom", output)
}
