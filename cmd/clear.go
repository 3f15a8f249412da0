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

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "empty the cart" }
func (*clearCmd) Usage() string {
	return `pos clear [-y]

  Empties the in-progress cart after confirmation. The ledger is untouched.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Assume yes, skip the confirmation prompt")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cart, _, err := openTill()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	err = cart.Clear(confirmer(c.yes))
	if errors.Is(err, till.ErrDeclined) {
		fmt.Fprintln(os.Stderr, "Aborted; the cart is untouched.")
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Cart is empty.")
	return subcommands.ExitSuccess
}
