// Package renderer turns till data into markdown for terminal display.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/yatai/till"
)

// CartMarkdown renders the in-progress cart as the operator sees it before
// checkout: one row per aggregated item, then the subtotal.
func CartMarkdown(items []till.CheckoutItem, subtotal till.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Cart")
	if len(items) == 0 {
		doc.PlainText("The cart is empty. Add items before checking out.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Item", "Qty", "Price"},
	}
	for _, it := range items {
		table.Rows = append(table.Rows, []string{
			it.Name,
			fmt.Sprintf("%d", it.Qty),
			till.M(it.Price, subtotal.Currency()).String(),
		})
	}
	doc.Table(table)
	doc.PlainText(md.Bold("Subtotal: " + subtotal.String()))
	return doc.String()
}

// MenuMarkdown renders the catalog, so the operator can see the ids to add.
func MenuMarkdown(catalog *till.Catalog) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Menu")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Id", "Item", "Price"},
	}
	for _, it := range catalog.Items() {
		table.Rows = append(table.Rows, []string{
			it.ID,
			it.Name,
			till.M(it.Price, catalog.Currency()).String(),
		})
	}
	doc.Table(table)
	return doc.String()
}
