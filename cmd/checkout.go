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

type checkoutCmd struct{}

func (*checkoutCmd) Name() string     { return "checkout" }
func (*checkoutCmd) Synopsis() string { return "commit the cart into the day's ledger" }
func (*checkoutCmd) Usage() string {
	return `pos checkout

  Commits the current cart as one ledger record and empties the cart.
  An empty cart refuses to commit.
`
}

func (*checkoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cart, ledger, err := openTill()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	record, err := till.Checkout(cart, ledger)
	if errors.Is(err, till.ErrEmptyCart) {
		fmt.Fprintln(os.Stderr, "The cart is empty; nothing to check out.")
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	total := till.M(record.Total, ledger.DailyTotal().Currency())
	fmt.Printf("Checked out %s for %s. Daily total: %s\n", record.ID, total, ledger.DailyTotal())
	return subcommands.ExitSuccess
}
