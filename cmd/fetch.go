package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

type fetchCmd struct{}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch quotes, history and betas for the ledger securities" }
func (*fetchCmd) Usage() string {
	return `sfo fetch

  Fetches the latest quote, five years of monthly closes, and the beta of
  every security in the ledger, and stores them in the market data file.
  Responses are cached on disk for a day.

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	market, err := DecodeMarketData()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading market data: %v\n", err)
		return subcommands.ExitFailure
	}

	stockfolio.UpdateMarketData(market, ledger)

	if err := EncodeMarketData(market); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving market data: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Market data saved to %s\n", *marketFile)
	return subcommands.ExitSuccess
}
