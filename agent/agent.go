// Package agent implements the Gemini-backed sales analyst the operator
// can chat with about the day's ledger.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const system = `You are the sales analyst of a small food stall.
You are given today's ledger: the committed checkouts, their line items and
the daily total. Answer the operator's questions about sales patterns,
best sellers and what to prepare, briefly and concretely. Amounts are in
the stall's currency.`

// Analyst is the chat session with the sales analyst.
type Analyst struct {
	w    io.Writer
	r    *bufio.Reader
	chat *genai.Chat
}

// New creates an analyst writing to w and reading operator input from r.
func New(w io.Writer, r io.Reader) *Analyst {
	return &Analyst{w: w, r: bufio.NewReader(r)}
}

// Start creates the chat, seeded with the briefing (the rendered ledger).
func (a *Analyst) Start(ctx context.Context, client *genai.Client, briefing string) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: system + "\n\nToday's ledger:\n" + briefing}},
		},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the analyst's text answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "assist> "

// Run starts the interactive REPL session. Optional prompts are consumed
// before reading from the operator; "bye" or EOF ends the session.
func (a *Analyst) Run(ctx context.Context, client *genai.Client, briefing string, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client, briefing); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Sales assist for today's ledger. Type 'bye' to exit.")
	for {
		fmt.Fprint(a.w, prompt)
		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			if strings.TrimSpace(input) == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}
		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
