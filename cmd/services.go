package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/google/subcommands"
	"github.com/yatai/till/console"
	"github.com/yatai/till/renderer"
)

type servicesCmd struct {
	every time.Duration
}

func (*servicesCmd) Name() string     { return "services" }
func (*servicesCmd) Synopsis() string { return "control the stall's auxiliary services" }
func (*servicesCmd) Usage() string {
	return `pos services status
pos services watch [-every <duration>]
pos services start|stop stream|master

  Polls or mutates the running state of the stream and master services
  through the service console.
`
}

func (c *servicesCmd) SetFlags(f *flag.FlagSet) {
	f.DurationVar(&c.every, "every", 0, "Polling cadence for watch (defaults to CONSOLE_POLL_INTERVAL)")
}

func (c *servicesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, cfg, err := consoleClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	action := f.Arg(0)
	switch action {
	case "", "status":
		client.Refresh(ctx)
		c.render(client)
		return subcommands.ExitSuccess

	case "watch":
		every := c.every
		if every == 0 {
			every = cfg.PollInterval
		}
		return c.watch(ctx, client, every)

	case "start", "stop":
		svc := console.Service(f.Arg(1))
		if svc != console.Stream && svc != console.Master {
			fmt.Fprintf(os.Stderr, "Error: unknown service %q, want stream or master.\n", f.Arg(1))
			return subcommands.ExitUsageError
		}
		if action == "start" {
			err = client.Start(ctx, svc)
		} else {
			err = client.Stop(ctx, svc)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		// The forced refresh already ran; show what the console answered.
		c.render(client)
		if err != nil {
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess

	default:
		fmt.Fprintf(os.Stderr, "Error: unknown action %q.\n", action)
		return subcommands.ExitUsageError
	}
}

// watch polls on a fixed cadence and redraws until interrupted.
func (c *servicesCmd) watch(ctx context.Context, client *console.Client, every time.Duration) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	poller := console.NewPoller(client, every)
	poller.Start(ctx)
	defer poller.Stop()

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		fmt.Println("\033[2J")
		c.render(client)
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return subcommands.ExitSuccess
		}
	}
}

func (c *servicesCmd) render(client *console.Client) {
	status, ok := client.Last()
	printMarkdown(renderer.StatusMarkdown(status, ok, client.Degraded()))
}
