package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio/renderer"
	"github.com/google/subcommands"
)

type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "holding" }
func (*holdingCmd) Synopsis() string { return "display the current holdings" }
func (*holdingCmd) Usage() string {
	return `sfo holding

  Displays the open positions with cost basis, market value and returns,
  largest position first.

`
}

func (c *holdingCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	as, err := newAccountingSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HoldingsMarkdown(as.Holdings()))
	return subcommands.ExitSuccess
}
