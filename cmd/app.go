// Package cmd implements the CLI application to manage a stock portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")
	c.Register(&exportCmd{}, "transactions")

	c.Register(&fetchCmd{}, "market")

	c.Register(&holdingCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&statsCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", "transactions.jsonl", "Path to the ledger file containing transactions (JSONL format)")
var marketFile = flag.String("market-file", "market.jsonl", "Path to the market data file (JSONL format)")

// DecodeLedger reads the app default ledger file. A missing file yields an
// empty ledger, so every command works on a fresh directory.
func DecodeLedger() (*stockfolio.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		return stockfolio.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return stockfolio.DecodeLedger(f)
}

// DecodeMarketData reads the app default market data file, empty when the
// file does not exist yet.
func DecodeMarketData() (*stockfolio.MarketData, error) {
	f, err := os.Open(*marketFile)
	if errors.Is(err, fs.ErrNotExist) {
		return stockfolio.NewMarketData(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return stockfolio.DecodeMarketData(f)
}

// EncodeMarketData rewrites the app default market data file.
func EncodeMarketData(m *stockfolio.MarketData) error {
	f, err := os.Create(*marketFile)
	if err != nil {
		return err
	}
	defer f.Close()
	return stockfolio.EncodeMarketData(f, m)
}

// EncodeTransaction appends a single transaction to the app default ledger file.
func EncodeTransaction(tx stockfolio.Transaction) subcommands.ExitStatus {
	filename := *ledgerFile
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := stockfolio.EncodeTransaction(f, tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended transaction to %s\n", filename)
	return subcommands.ExitSuccess
}

// newAccountingSystem loads both files and assembles the accounting system.
func newAccountingSystem() (*stockfolio.AccountingSystem, error) {
	ledger, err := DecodeLedger()
	if err != nil {
		return nil, fmt.Errorf("could not load ledger: %w", err)
	}
	market, err := DecodeMarketData()
	if err != nil {
		return nil, fmt.Errorf("could not load market data: %w", err)
	}
	return stockfolio.NewAccountingSystem(ledger, market), nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
