package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/yatai/till/console"
)

type openCmd struct{}

func (*openCmd) Name() string     { return "open" }
func (*openCmd) Synopsis() string { return "print the URL of a sub-service" }
func (*openCmd) Usage() string {
	return `pos open stream|master|predict

  Resolves the service URL from the console host and the last polled
  ports, falling back to the default ports when the console was never
  reached.
`
}

func (*openCmd) SetFlags(f *flag.FlagSet) {}

func (c *openCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	svc := console.Service(f.Arg(0))
	switch svc {
	case console.Stream, console.Master, console.Predict:
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown service %q, want stream, master or predict.\n", f.Arg(0))
		return subcommands.ExitUsageError
	}
	client, _, err := consoleClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	url, err := client.ServiceURL(ctx, svc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(url)
	return subcommands.ExitSuccess
}
