package invoice

import (
	"fmt"
	"io"
	"strings"

	"github.com/zzptools/grootboek/config"
)

// RenderMarkdown writes the invoice as a Markdown document. Localized
// words come from the localization config; missing translations fall back
// to Dutch, the original language of these documents.
func RenderMarkdown(w io.Writer, inv *Invoice, loc config.Localization) error {
	word := func(value, fallback string) string {
		if value != "" {
			return value
		}
		return fallback
	}
	invoiceWord := word(loc.Invoice, "Factuur")
	hoursWord := word(loc.Hours, "uren")

	var buf strings.Builder

	fmt.Fprintf(&buf, "# %s %s\n\n", invoiceWord, inv.Number)
	fmt.Fprintf(&buf, "%s\n\n", inv.Date)

	buf.WriteString("| | |\n|---:|:---|\n")
	writeParty(&buf, "Aan", inv.Customer.Name, inv.Customer.Address)
	writeParty(&buf, "Van", inv.Company.Name, inv.Company.Address)
	for _, kv := range inv.Company.Contact {
		fmt.Fprintf(&buf, "| %s: | %s |\n", kv.Name, kv.Value)
	}
	for _, kv := range inv.Company.Legal {
		fmt.Fprintf(&buf, "| %s: | %s |\n", kv.Name, kv.Value)
	}
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "| Datum | Omschrijving | %s | Prijs | Totaal |\n", capitalize(hoursWord))
	buf.WriteString("|:---|:---|---:|---:|---:|\n")
	for _, entry := range inv.Entries {
		quantity := entry.Quantity.StringFixed(2)
		if entry.Unit != "" {
			quantity += " " + entry.Unit
		}
		fmt.Fprintf(&buf, "| %s | %s | %s | %s | %s |\n",
			entry.Date,
			entry.Description,
			quantity,
			inv.DisplayCents(entry.UnitPrice),
			inv.DisplayCents(entry.TotalExVAT()),
		)
	}
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "| | |\n|---:|---:|\n")
	fmt.Fprintf(&buf, "| Subtotaal: | %s |\n", inv.DisplayCents(inv.TotalExVAT()))
	for _, vat := range inv.VATTotals() {
		fmt.Fprintf(&buf, "| BTW %s%%: | %s |\n", vat.Percent, inv.DisplayCents(vat.Amount))
	}
	fmt.Fprintf(&buf, "| **Totaal:** | **%s** |\n", inv.DisplayCents(inv.TotalIncVAT()))

	if len(inv.Company.Payment) > 0 {
		buf.WriteString("\n")
		for _, kv := range inv.Company.Payment {
			fmt.Fprintf(&buf, "%s: %s  \n", kv.Name, kv.Value)
		}
	}

	_, err := io.WriteString(w, buf.String())
	return err
}

func writeParty(buf *strings.Builder, label, name string, address []string) {
	fmt.Fprintf(buf, "| %s: | %s |\n", label, name)
	for _, line := range address {
		fmt.Fprintf(buf, "| | %s |\n", line)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
