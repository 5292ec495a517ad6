package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/zzptools/grootboek/telemetry"
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Balances BalancesCmd `cmd:"" help:"Report per-account balances as a tree or flat list."`
	Check    CheckCmd    `cmd:"" help:"Check a ledger file for unbalanced transactions."`
	Show     ShowCmd     `cmd:"" help:"Print the transactions of a ledger file."`
	Hours    HoursCmd    `cmd:"" help:"List hour log entries with totals."`
	Invoice  InvoiceCmd  `cmd:"" help:"Generate an invoice from an hour log."`
}

// withTelemetry wraps run with an optional timing collector. The report
// goes to w after run finishes, whether it failed or not.
func (g *Globals) withTelemetry(w io.Writer, run func(ctx context.Context) error) error {
	if !g.Telemetry {
		return run(context.Background())
	}

	collector := telemetry.NewTimingCollector()
	ctx := telemetry.WithCollector(context.Background(), collector)

	err := run(ctx)

	_, _ = fmt.Fprintln(w)
	collector.Report(w)

	return err
}
