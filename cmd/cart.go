package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yatai/till"
	"github.com/yatai/till/renderer"
)

type cartCmd struct{}

func (*cartCmd) Name() string     { return "cart" }
func (*cartCmd) Synopsis() string { return "show the in-progress cart" }
func (*cartCmd) Usage() string {
	return `pos cart

  Shows the cart grouped the way 'pos checkout' will commit it.
`
}

func (*cartCmd) SetFlags(f *flag.FlagSet) {}

func (c *cartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cart, _, err := openTill()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	items, _ := till.Aggregate(cart.Load())
	printMarkdown(renderer.CartMarkdown(items, cart.Subtotal()))
	return subcommands.ExitSuccess
}
