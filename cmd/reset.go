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

type resetCmd struct {
	yes bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete the day's orders and cart" }
func (*resetCmd) Usage() string {
	return `pos reset [-y]

  Deletes both the orders and the cart keys for the current date after
  confirmation. When both are already empty a reinitialize prompt is
  offered instead of the destructive one.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Assume yes, skip the confirmation prompt")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, ledger, err := openTill()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	err = ledger.Reset(confirmer(c.yes))
	if errors.Is(err, till.ErrDeclined) {
		fmt.Fprintln(os.Stderr, "Aborted; nothing was deleted.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Reset %s.\n", ledger.Day())
	return subcommands.ExitSuccess
}
