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

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	date     string
	security string
	shares   float64
	price    float64
	fees     float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of a security" }
func (*buyCmd) Usage() string {
	return `sfo buy -s <security> -q <shares> -p <price> [-f <fees>] [-d <date>]

  Appends a buy transaction to the ledger.

Usage Examples:
# Buy 10 shares of AAPL at $150 with $1 of fees.
$ sfo buy -s AAPL -q 10 -p 150 -f 1

`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", stockfolio.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.security, "s", "", "Security ticker")
	f.Float64Var(&c.shares, "q", 0, "Number of shares")
	f.Float64Var(&c.price, "p", 0, "Price per share")
	f.Float64Var(&c.fees, "f", 0, "Transaction fees")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := stockfolio.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tx := stockfolio.NewBuy(on, strings.ToUpper(c.security), stockfolio.Q(c.shares), stockfolio.USD(c.price), stockfolio.USD(c.fees))
	if err := tx.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid transaction: %v\n", err)
		return subcommands.ExitUsageError
	}

	return EncodeTransaction(tx)
}
