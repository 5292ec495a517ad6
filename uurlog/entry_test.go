package uurlog_test

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/zzptools/grootboek/calendar"
	"github.com/zzptools/grootboek/uurlog"
)

func TestParseEntry(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		entry, err := uurlog.ParseEntry("2020-01-02, 10h12m, goofing around")
		assert.NoError(t, err)
		assert.Equal(t, calendar.MustDate(2020, calendar.January, 2), entry.Date)
		assert.Equal(t, uint(612), entry.Hours.TotalMinutes())
		assert.Equal(t, "goofing around", entry.Description)
		assert.Equal(t, 0, len(entry.Tags))
	})

	t.Run("Tags", func(t *testing.T) {
		entry, err := uurlog.ParseEntry("2020-01-02, 1h30m, [acme] [billable] fix the flux capacitor")
		assert.NoError(t, err)
		assert.Equal(t, []string{"acme", "billable"}, entry.Tags)
		assert.Equal(t, "fix the flux capacitor", entry.Description)
	})

	t.Run("MissingFields", func(t *testing.T) {
		_, err := uurlog.ParseEntry("20m, stabbing co-workers")
		var syntaxErr *uurlog.EntrySyntaxError
		assert.True(t, errors.As(err, &syntaxErr))
	})

	t.Run("BadDate", func(t *testing.T) {
		_, err := uurlog.ParseEntry("when was this again?, 1h30m, swapping production and test")
		var syntaxErr *calendar.InvalidDateSyntaxError
		assert.True(t, errors.As(err, &syntaxErr))
	})

	t.Run("BadHours", func(t *testing.T) {
		_, err := uurlog.ParseEntry("2020-01-01, 17hhh20mmm, new years *hiccup*")
		var hoursErr *uurlog.HoursSyntaxError
		assert.True(t, errors.As(err, &hoursErr))
	})
}

func TestParse(t *testing.T) {
	source := `# january
2020-01-02, 8h, writing reports

2020-01-03, 6h30m, [acme] meetings
`

	entries, err := uurlog.Parse(source)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(entries))
	assert.Equal(t, uurlog.FromHoursMinutes(14, 30), uurlog.Total(entries))
}

func TestParseReportsLine(t *testing.T) {
	_, err := uurlog.Parse("2020-01-02, 8h, fine\nbroken line\n")
	var parseErr *uurlog.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Line)
	assert.Equal(t, "broken line", parseErr.Token)
}

func TestFilterRange(t *testing.T) {
	entries, err := uurlog.Parse(`2020-01-31, 1h, january
2020-02-01, 2h, february
2020-02-29, 3h, leap day
2020-03-01, 4h, march
`)
	assert.NoError(t, err)

	period, err := calendar.ParsePartialDate("2020-02")
	assert.NoError(t, err)

	filtered := uurlog.FilterRange(entries, period.AsRange())
	assert.Equal(t, 2, len(filtered))
	assert.Equal(t, "february", filtered[0].Description)
	assert.Equal(t, "leap day", filtered[1].Description)
}
