package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/zzptools/grootboek/calendar"
	"github.com/zzptools/grootboek/loader"
	"github.com/zzptools/grootboek/output"
	"github.com/zzptools/grootboek/uurlog"
)

// HoursCmd lists the entries of an hour log file with a running total.
type HoursCmd struct {
	File string `arg:"" help:"Hour log file to list." type:"existingfile"`

	Period string `help:"Restrict to a period: YYYY, YYYY-MM, or YYYY-MM-DD." placeholder:"PERIOD"`
	Tag    string `help:"Only list entries carrying this tag." placeholder:"TAG"`
}

func (c *HoursCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.withTelemetry(ctx.Stderr, func(runCtx context.Context) error {
		entries, source, err := loader.LoadHours(runCtx, c.File)
		if err != nil {
			_, _ = fmt.Fprintln(ctx.Stderr, NewErrorRenderer(source).Render(err))
			return fmt.Errorf("parse error")
		}

		if c.Period != "" {
			partial, err := calendar.ParsePartialDate(c.Period)
			if err != nil {
				return fmt.Errorf("invalid period %q: %w", c.Period, err)
			}
			entries = uurlog.FilterRange(entries, partial.AsRange())
		}
		if c.Tag != "" {
			entries = slices.DeleteFunc(slices.Clone(entries), func(e uurlog.Entry) bool {
				return !slices.Contains(e.Tags, c.Tag)
			})
		}

		styles := output.NewStyles(ctx.Stdout)

		width := 0
		for _, entry := range entries {
			if w := runewidth.StringWidth(entry.Hours.String()); w > width {
				width = w
			}
		}

		for _, entry := range entries {
			hours := entry.Hours.String()
			padding := strings.Repeat(" ", width-runewidth.StringWidth(hours))

			line := fmt.Sprintf("%s %s%s %s",
				styles.Date(entry.Date.String()),
				padding, hours,
				entry.Description,
			)
			for _, tag := range entry.Tags {
				line += " " + styles.Tag("["+tag+"]")
			}
			_, _ = fmt.Fprintln(ctx.Stdout, line)
		}

		_, _ = fmt.Fprintf(ctx.Stdout, "%s %s over %d entries\n",
			styles.Dim("total:"),
			uurlog.Total(entries),
			len(entries),
		)
		return nil
	})
}
