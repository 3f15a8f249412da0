package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/yatai/till/console"
)

// StatusMarkdown renders the last polled console status. The degraded flag
// marks the cache as stale instead of hiding it.
func StatusMarkdown(status console.Status, ok, degraded bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Services")
	if !ok {
		doc.PlainText("No status polled yet; the console may be unreachable.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Service", "State", "Port"},
	}
	table.Rows = append(table.Rows,
		[]string{"stream", state(status.StreamRunning), fmt.Sprintf("%d", status.StreamPort)},
		[]string{"master", state(status.MasterRunning), fmt.Sprintf("%d", status.MasterPort)},
		[]string{"predict", "-", fmt.Sprintf("%d", status.PredictPort)},
	)
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Camera %d, polled at %s.", status.CameraID, status.At.Format("15:04:05")))
	if degraded {
		doc.PlainText(md.Bold("The console is unreachable; this status is stale."))
	}
	return doc.String()
}

func state(running bool) string {
	if running {
		return "running"
	}
	return "stopped"
}
