package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio/renderer"
	"github.com/google/subcommands"
)

type txCmd struct{}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the ledger transactions" }
func (*txCmd) Usage() string {
	return `sfo tx

  Lists all transactions in chronological order.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TransactionsMarkdown(ledger))
	return subcommands.ExitSuccess
}
