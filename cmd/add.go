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

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add menu items to the cart" }
func (*addCmd) Usage() string {
	return `pos add <id> [<id>...]

  Adds one unit of each given menu item to the cart. Ids come from
  'pos menu'; unknown ids are ignored.
`
}

func (*addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no menu id given.")
		return subcommands.ExitUsageError
	}
	cart, _, err := openTill()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, id := range f.Args() {
		cart.Add(id)
	}
	items, _ := till.Aggregate(cart.Load())
	printMarkdown(renderer.CartMarkdown(items, cart.Subtotal()))
	return subcommands.ExitSuccess
}
