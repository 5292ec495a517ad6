package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/glamour"

	"github.com/zzptools/grootboek/calendar"
	"github.com/zzptools/grootboek/config"
	"github.com/zzptools/grootboek/invoice"
	"github.com/zzptools/grootboek/loader"
	"github.com/zzptools/grootboek/uurlog"
)

// InvoiceCmd generates a Markdown invoice from an hour log, using the
// company configuration and the customer's rate and address.
//
// The company configuration (grootboek.toml) is found by walking up from
// the working directory; the customer configuration (customer.toml) by
// walking up from the hour log's directory, stopping at the company root.
type InvoiceCmd struct {
	Hours  string `arg:"" help:"Hour log file to invoice." type:"existingfile"`
	Period string `arg:"" help:"Period to invoice: YYYY, YYYY-MM, or YYYY-MM-DD."`

	Number  string `help:"Invoice number. Defaults to the period without dashes." placeholder:"NUMBER"`
	Output  string `help:"Output file. Defaults to factuur-NUMBER.md next to the hour log." placeholder:"FILE" short:"o"`
	Preview bool   `help:"Render the invoice to the terminal instead of writing a file."`
	Force   bool   `help:"Overwrite the output file without asking."`
}

func (c *InvoiceCmd) Run(ctx *kong.Context, globals *Globals) error {
	return globals.withTelemetry(ctx.Stderr, func(runCtx context.Context) error {
		inv, cfg, err := c.build(runCtx)
		if err != nil {
			return err
		}

		var doc bytes.Buffer
		if err := invoice.RenderMarkdown(&doc, inv, cfg.Localization); err != nil {
			return err
		}

		if c.Preview {
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(100),
			)
			if err != nil {
				return fmt.Errorf("failed to create preview renderer: %w", err)
			}
			rendered, err := renderer.Render(doc.String())
			if err != nil {
				return fmt.Errorf("failed to render preview: %w", err)
			}
			_, _ = fmt.Fprint(ctx.Stdout, rendered)
			return nil
		}

		outputPath := c.Output
		if outputPath == "" {
			outputPath = filepath.Join(filepath.Dir(c.Hours), fmt.Sprintf("factuur-%s.md", inv.Number))
		}

		if !c.Force {
			if _, err := os.Stat(outputPath); err == nil {
				overwrite, err := promptYesNo(fmt.Sprintf("%s exists. Overwrite?", outputPath))
				if err != nil {
					return err
				}
				if !overwrite {
					printError(ctx.Stderr, "aborted")
					return nil
				}
			}
		}

		if err := os.WriteFile(outputPath, doc.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write invoice: %w", err)
		}
		printSuccess(ctx.Stdout, fmt.Sprintf("wrote %s", outputPath))
		return nil
	})
}

// build loads the configurations and the hour log and assembles the
// invoice for the requested period.
func (c *InvoiceCmd) build(runCtx context.Context) (*invoice.Invoice, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, err
	}

	cfgPath, ok := config.Find(string(filepath.Separator), cwd, config.ConfigFileName)
	if !ok {
		return nil, nil, fmt.Errorf("no %s found in %s or any parent directory", config.ConfigFileName, cwd)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	hoursDir, err := filepath.Abs(filepath.Dir(c.Hours))
	if err != nil {
		return nil, nil, err
	}
	customerPath, ok := config.Find(filepath.Dir(cfgPath), hoursDir, config.CustomerFileName)
	if !ok {
		return nil, nil, fmt.Errorf("no %s found between %s and %s", config.CustomerFileName, hoursDir, filepath.Dir(cfgPath))
	}
	customer, err := config.LoadCustomer(customerPath)
	if err != nil {
		return nil, nil, err
	}
	if customer.Invoice.CentsPerHour == 0 {
		return nil, nil, fmt.Errorf("%s sets no cents-per-hour rate", customerPath)
	}

	partial, err := calendar.ParsePartialDate(c.Period)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid period %q: %w", c.Period, err)
	}

	entries, _, err := loader.LoadHours(runCtx, c.Hours)
	if err != nil {
		return nil, nil, err
	}
	entries = uurlog.FilterRange(entries, partial.AsRange())
	if len(entries) == 0 {
		return nil, nil, fmt.Errorf("no hour entries in period %s", partial)
	}

	number := c.Number
	if number == "" {
		number = strings.ReplaceAll(partial.String(), "-", "")
	}

	unit := cfg.Localization.Hours
	if unit == "" {
		unit = "uur"
	}

	now := time.Now()
	date, err := calendar.NewDate(calendar.Year(now.Year()), calendar.Month(now.Month()), now.Day())
	if err != nil {
		return nil, nil, err
	}

	inv := &invoice.Invoice{
		Number:   number,
		Date:     date,
		Company:  cfg.Company,
		Customer: customer.Customer,
		Currency: cfg.Localization.Currency,
		Entries:  invoice.FromHourEntries(entries, customer, cfg.Tax.VATPercent, unit),
	}
	return inv, cfg, nil
}
