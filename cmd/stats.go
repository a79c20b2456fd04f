package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio/renderer"
	"github.com/google/subcommands"
)

type statsCmd struct{}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display portfolio-wide statistics" }
func (*statsCmd) Usage() string {
	return `sfo stats

  Displays the full metrics bundle: value, performance (CAGR, IRR,
  volatility, Sharpe), trade quality and concentration.

`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	as, err := newAccountingSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.StatsMarkdown(as.Stats()))
	return subcommands.ExitSuccess
}
