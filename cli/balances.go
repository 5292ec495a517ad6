package cli

import (
	"context"
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/zzptools/grootboek/calendar"
	"github.com/zzptools/grootboek/ledger"
	"github.com/zzptools/grootboek/output"
)

// periodFlags selects a slice of the ledger by date. A --period shorthand
// covers a whole year, month, or day; --start-date and --end-date bound
// the range explicitly (end is exclusive).
type periodFlags struct {
	Period    string `help:"Restrict to a period: YYYY, YYYY-MM, or YYYY-MM-DD." placeholder:"PERIOD"`
	StartDate string `help:"Restrict to dates on or after this date (YYYY-MM-DD)." placeholder:"DATE"`
	EndDate   string `help:"Restrict to dates before this date (YYYY-MM-DD)." placeholder:"DATE"`
}

// filter returns the transactions that fall inside the selected period.
// Without any period flags it returns transactions unchanged.
func (p *periodFlags) filter(transactions []ledger.Transaction) ([]ledger.Transaction, error) {
	if p.Period == "" && p.StartDate == "" && p.EndDate == "" {
		return transactions, nil
	}

	var contains func(calendar.Date) bool

	if p.Period != "" {
		if p.StartDate != "" || p.EndDate != "" {
			return nil, fmt.Errorf("--period cannot be combined with --start-date or --end-date")
		}
		partial, err := calendar.ParsePartialDate(p.Period)
		if err != nil {
			return nil, fmt.Errorf("invalid period %q: %w", p.Period, err)
		}
		contains = partial.AsRange().Contains
	} else {
		start, end := calendar.Date{}, calendar.Date{}
		hasStart, hasEnd := false, false
		var err error

		if p.StartDate != "" {
			if start, err = calendar.ParseDate(p.StartDate); err != nil {
				return nil, fmt.Errorf("invalid start date %q: %w", p.StartDate, err)
			}
			hasStart = true
		}
		if p.EndDate != "" {
			if end, err = calendar.ParseDate(p.EndDate); err != nil {
				return nil, fmt.Errorf("invalid end date %q: %w", p.EndDate, err)
			}
			hasEnd = true
		}
		contains = func(d calendar.Date) bool {
			if hasStart && d.Before(start) {
				return false
			}
			if hasEnd && !d.Before(end) {
				return false
			}
			return true
		}
	}

	var filtered []ledger.Transaction
	for _, transaction := range transactions {
		if contains(transaction.Date) {
			filtered = append(filtered, transaction)
		}
	}
	return filtered, nil
}

// BalancesCmd reports per-account balances aggregated over the account
// hierarchy, as a tree (default) or a flat list of leaf balances.
type BalancesCmd struct {
	File FileOrStdin `arg:"" help:"Ledger file to report on, or - for stdin."`

	Flat    bool   `help:"List own balances per account instead of the tree."`
	Nonzero bool   `help:"Omit zero balances from the flat report."`
	Account string `help:"Only count mutations on this account or its children." placeholder:"PATH"`

	periodFlags
}

func (c *BalancesCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.withTelemetry(ctx.Stderr, func(runCtx context.Context) error {
		result, err := c.File.Load(runCtx)
		if err != nil {
			return renderLoadError(ctx, result, err)
		}

		transactions, err := c.filter(result.Transactions)
		if err != nil {
			return err
		}

		tree := ledger.NewTree()
		for _, transaction := range transactions {
			for _, mutation := range transaction.Mutations {
				if c.Account != "" && !mutation.Account.MatchesPrefix(c.Account) {
					continue
				}
				tree.Add(mutation)
			}
		}

		styles := output.NewStyles(ctx.Stdout)
		renderer := &ledger.Renderer{
			FormatCents: styles.Cents,
			OmitZero:    c.Nonzero,
		}

		if c.Flat {
			return renderer.RenderFlat(ctx.Stdout, tree)
		}
		return renderer.RenderTree(ctx.Stdout, tree)
	})
}
