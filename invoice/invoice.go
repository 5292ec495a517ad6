// Package invoice builds invoices from hour log entries and renders them
// as Markdown documents. PDF generation is deliberately out of scope; the
// Markdown output is the delivery artifact and can be converted or
// previewed elsewhere.
package invoice

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/zzptools/grootboek/calendar"
	"github.com/zzptools/grootboek/config"
	"github.com/zzptools/grootboek/ledger"
	"github.com/zzptools/grootboek/uurlog"
)

// Entry is one line on an invoice.
type Entry struct {
	Date        calendar.Date
	Description string

	// Quantity is the number of units delivered, e.g. 1.5 hours.
	Quantity decimal.Decimal

	// Unit names the unit of the quantity, e.g. "uur".
	Unit string

	// UnitPrice is the price per unit, excluding VAT.
	UnitPrice ledger.Cents

	// VATPercent is the VAT percentage applied to this line.
	VATPercent decimal.Decimal
}

// TotalExVAT returns the line total excluding VAT, rounded to whole cents.
func (e Entry) TotalExVAT() ledger.Cents {
	total := e.Quantity.Mul(decimal.NewFromInt(int64(e.UnitPrice)))
	return ledger.Cents(total.Round(0).IntPart())
}

// TotalVAT returns the VAT amount of the line, rounded to whole cents.
func (e Entry) TotalVAT() ledger.Cents {
	exVAT := decimal.NewFromInt(int64(e.TotalExVAT()))
	vat := exVAT.Mul(e.VATPercent).Div(decimal.NewFromInt(100))
	return ledger.Cents(vat.Round(0).IntPart())
}

// TotalIncVAT returns the line total including VAT.
func (e Entry) TotalIncVAT() ledger.Cents {
	return e.TotalExVAT().Add(e.TotalVAT())
}

// Invoice is a complete invoice: sender, recipient, and the invoiced lines.
type Invoice struct {
	Number   string
	Date     calendar.Date
	Company  config.Company
	Customer config.Customer

	// Currency is the ISO 4217 code used to display amounts.
	Currency string

	Entries []Entry
}

// TotalExVAT returns the invoice total excluding VAT.
func (inv *Invoice) TotalExVAT() ledger.Cents {
	var total ledger.Cents
	for _, entry := range inv.Entries {
		total = total.Add(entry.TotalExVAT())
	}
	return total
}

// TotalVAT returns the total VAT over all lines.
func (inv *Invoice) TotalVAT() ledger.Cents {
	var total ledger.Cents
	for _, entry := range inv.Entries {
		total = total.Add(entry.TotalVAT())
	}
	return total
}

// TotalIncVAT returns the invoice total including VAT.
func (inv *Invoice) TotalIncVAT() ledger.Cents {
	return inv.TotalExVAT().Add(inv.TotalVAT())
}

// VATTotals returns the VAT totals grouped per VAT percentage, in first
// seen order.
func (inv *Invoice) VATTotals() []VATTotal {
	var totals []VATTotal
	index := make(map[string]int)
	for _, entry := range inv.Entries {
		key := entry.VATPercent.String()
		i, ok := index[key]
		if !ok {
			i = len(totals)
			index[key] = i
			totals = append(totals, VATTotal{Percent: entry.VATPercent})
		}
		totals[i].Amount = totals[i].Amount.Add(entry.TotalVAT())
	}
	return totals
}

// VATTotal is the summed VAT for one VAT percentage.
type VATTotal struct {
	Percent decimal.Decimal
	Amount  ledger.Cents
}

// DisplayCents renders an amount in the invoice's currency, e.g. "€95.00".
func (inv *Invoice) DisplayCents(c ledger.Cents) string {
	currency := inv.Currency
	if currency == "" {
		currency = "EUR"
	}
	return money.New(int64(c), currency).Display()
}

// FromHourEntries converts hour log entries to invoice lines using the
// customer's hourly rate. When the customer config sets SummarizePerDay,
// all entries of one day merge into a single line with that description.
// Durations become decimal quantities with minute precision.
func FromHourEntries(entries []uurlog.Entry, customer *config.CustomerConfig, vatPercent int, unit string) []Entry {
	vat := decimal.NewFromInt(int64(vatPercent))
	rate := ledger.Cents(customer.Invoice.CentsPerHour)

	var lines []Entry
	index := make(map[calendar.Date]int)

	for _, entry := range entries {
		quantity := decimal.NewFromInt(int64(entry.Hours.TotalMinutes())).Div(decimal.NewFromInt(60))

		if customer.Invoice.SummarizePerDay != "" {
			if i, ok := index[entry.Date]; ok {
				lines[i].Quantity = lines[i].Quantity.Add(quantity)
				continue
			}
			index[entry.Date] = len(lines)
			lines = append(lines, Entry{
				Date:        entry.Date,
				Description: customer.Invoice.SummarizePerDay,
				Quantity:    quantity,
				Unit:        unit,
				UnitPrice:   rate,
				VATPercent:  vat,
			})
			continue
		}

		lines = append(lines, Entry{
			Date:        entry.Date,
			Description: entry.Description,
			Quantity:    quantity,
			Unit:        unit,
			UnitPrice:   rate,
			VATPercent:  vat,
		})
	}

	return lines
}
