package main

import (
	"fmt"

	cdpagent "github.com/pswitchy/CDP-Support-Chatbot"
)

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question about a supported CDP"`
}

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Agent.Answer(deps.Ctx, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cdpagent.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer.Answer)
	return nil
}
