package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	date     string
	security string
	shares   float64
	price    float64
	fees     float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of a security" }
func (*sellCmd) Usage() string {
	return `sfo sell -s <security> -q <shares> -p <price> [-f <fees>] [-d <date>]

  Appends a sell transaction to the ledger. Selling more shares than held
  is not an error: the sale is capped at the held quantity when reports
  are computed.

`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", stockfolio.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.security, "s", "", "Security ticker")
	f.Float64Var(&c.shares, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.Float64Var(&c.fees, "f", 0, "Transaction fees")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := stockfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := stockfolio.NewSell(on, strings.ToUpper(c.security), stockfolio.Q(c.shares), stockfolio.USD(c.price), stockfolio.USD(c.fees))
	if err := tx.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid transaction: %v\n", err)
		return subcommands.ExitUsageError
	}

	return EncodeTransaction(tx)
}
