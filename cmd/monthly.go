package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio/renderer"
	"github.com/google/subcommands"
)

type monthlyCmd struct{}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display the month-end valuation series" }
func (*monthlyCmd) Usage() string {
	return `sfo monthly

  Displays the portfolio value at the end of every month since the first
  transaction, with the net cash flow of each month.

`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {}

func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	as, err := newAccountingSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.MonthlyValuesMarkdown(as.MonthlyValues()))
	return subcommands.ExitSuccess
}
