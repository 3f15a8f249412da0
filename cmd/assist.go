package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/yatai/till/agent"
	"github.com/yatai/till/renderer"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with the sales analyst about today's ledger" }
func (*assistCmd) Usage() string {
	return `pos assist [question]

  Starts an interactive session with the Gemini-backed sales analyst,
  seeded with the day's ledger.
`
}

func (*assistCmd) SetFlags(f *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}

	_, ledger, err := openTill()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	briefing := renderer.ReportMarkdown(ledger.Day(), ledger.Load(), ledger.DailyTotal())

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	analyst := agent.New(os.Stdout, os.Stdin)
	if err := analyst.Run(ctx, client, briefing, prompts...); err != nil {
		fmt.Fprintln(os.Stderr, "Assist failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
