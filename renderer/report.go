package renderer

import (
	"bytes"
	"fmt"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/yatai/till"
)

// ReportMarkdown renders the day's ledger: one row per checkout with its
// item breakdown, then the daily total.
func ReportMarkdown(day till.Day, records []till.CheckoutRecord, total till.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ledger " + day.String())
	if len(records) == 0 {
		doc.PlainText("No checkouts recorded today.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Time", "Id", "Items", "Total"},
	}
	for _, r := range records {
		table.Rows = append(table.Rows, []string{
			r.Time,
			r.ID,
			itemsSummary(r.Items),
			till.M(r.Total, total.Currency()).String(),
		})
	}
	doc.Table(table)
	doc.PlainText(md.Bold(fmt.Sprintf("%d checkouts, total %s", len(records), total)))
	return doc.String()
}

func itemsSummary(items []till.CheckoutItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", it.Name, it.Qty))
	}
	return strings.Join(parts, ", ")
}
