package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/zzptools/grootboek/output"
)

// ShowCmd prints the transactions of a ledger file in full.
type ShowCmd struct {
	File FileOrStdin `arg:"" help:"Ledger file to print, or - for stdin."`

	Account string `help:"Only show transactions touching this account or its children." placeholder:"PATH"`

	periodFlags
}

func (c *ShowCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.withTelemetry(ctx.Stderr, func(runCtx context.Context) error {
		result, err := c.File.Load(runCtx)
		if err != nil {
			return renderLoadError(ctx, result, err)
		}

		transactions, err := c.filter(result.Transactions)
		if err != nil {
			return err
		}

		styles := output.NewStyles(ctx.Stdout)

		first := true
		for _, transaction := range transactions {
			if c.Account != "" && !transaction.MutatesAccount(c.Account) {
				continue
			}

			if !first {
				_, _ = fmt.Fprintln(ctx.Stdout)
			}
			first = false

			_, _ = fmt.Fprintf(ctx.Stdout, "%s: %s\n",
				styles.Date(transaction.Date.String()),
				styles.Description(transaction.Description),
			)
			for _, tag := range transaction.Tags {
				_, _ = fmt.Fprintf(ctx.Stdout, "  %s: %s\n", styles.Tag(tag.Label), tag.Value)
			}
			for _, mutation := range transaction.Mutations {
				_, _ = fmt.Fprintf(ctx.Stdout, "  %s %s\n",
					styles.Cents(mutation.Amount),
					styles.Account(string(mutation.Account)),
				)
			}
		}
		return nil
	})
}
