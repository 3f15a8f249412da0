package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yatai/till"
)

type exportCmd struct {
	outDir string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the day's ledger as JSON" }
func (*exportCmd) Usage() string {
	return `pos export [-o <dir>]

  Writes the day's ledger as pretty JSON into orders_<date>.json.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outDir, "o", ".", "Directory to write the export into")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, ledger, err := openTill()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	path, err := ledger.Export(c.outDir)
	if errors.Is(err, till.ErrEmptyLedger) {
		fmt.Fprintln(os.Stderr, "Nothing to export: no checkouts recorded today.")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Exported %s\n", path)
	return subcommands.ExitSuccess
}
