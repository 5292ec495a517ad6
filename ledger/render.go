package ledger

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Renderer writes balance reports for an aggregation tree.
//
// FormatCents can be set to style amounts (e.g. terminal colors); it
// defaults to the plain Cents string. OmitZero drops zero-balance entries
// from flat reports.
type Renderer struct {
	FormatCents func(Cents) string
	OmitZero    bool
}

func (r *Renderer) formatCents(c Cents) string {
	if r.FormatCents != nil {
		return r.FormatCents(c)
	}
	return c.String()
}

// RenderTree writes the tree as an indented hierarchy with tree-drawing
// connectors, showing cumulative balances:
//
//	Total: +0.00
//	├─ assets: -1.50
//	│  └─ cash: -1.50
//	└─ expenses: +1.50
//	   └─ coffee: +1.50
func (r *Renderer) RenderTree(w io.Writer, tree *Tree) error {
	if _, err := fmt.Fprintf(w, "Total: %s\n", r.formatCents(tree.Root().Cumulative)); err != nil {
		return err
	}
	return r.renderSubtree(w, tree.Root(), "")
}

func (r *Renderer) renderSubtree(w io.Writer, node *Node, indent string) error {
	children := node.Children()
	for i, child := range children {
		connector, childIndent := "├─", "│  "
		if i == len(children)-1 {
			connector, childIndent = "└─", "   "
		}

		_, err := fmt.Fprintf(w, "%s%s %s: %s\n", indent, connector, child.Account.Name(), r.formatCents(child.Cumulative))
		if err != nil {
			return err
		}
		if err := r.renderSubtree(w, child, indent+childIndent); err != nil {
			return err
		}
	}
	return nil
}

// RenderFlat writes the tree as a flat list of (own balance, full account
// path) pairs with the amounts right-aligned:
//
//	 -1.50 assets/cash
//	+10.00 assets/bank/checking
func (r *Renderer) RenderFlat(w io.Writer, tree *Tree) error {
	type row struct {
		amount  Cents
		account Account
	}

	var rows []row
	tree.Root().Walk(func(node *Node) {
		if node == tree.Root() {
			return
		}
		if r.OmitZero && node.Own.IsZero() {
			return
		}
		// Inner nodes without mutations of their own stay out of the
		// flat report; their totals live in the tree report.
		if node.Own.IsZero() && len(node.Children()) > 0 {
			return
		}
		rows = append(rows, row{amount: node.Own, account: node.Account})
	})

	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row.amount.String()); w > width {
			width = w
		}
	}

	for _, row := range rows {
		padding := strings.Repeat(" ", width-runewidth.StringWidth(row.amount.String()))
		if _, err := fmt.Fprintf(w, "%s%s %s\n", padding, r.formatCents(row.amount), row.account); err != nil {
			return err
		}
	}
	return nil
}
