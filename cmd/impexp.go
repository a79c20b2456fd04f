package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stockfolio"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a CSV file" }
func (*importCmd) Usage() string {
	return `sfo import -i <file.csv>

  Imports transactions from a CSV file with columns
  date,side,security,shares,price,fees (header optional) and appends them
  to the ledger.

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "i", "", "CSV file to import")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -i <file.csv> is required")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	txs, err := stockfolio.ImportCSV(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	out, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer out.Close()

	for _, tx := range txs {
		if err := stockfolio.EncodeTransaction(out, tx); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Imported %d transactions from %s\n", len(txs), c.file)
	return subcommands.ExitSuccess
}

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the ledger to a CSV file" }
func (*exportCmd) Usage() string {
	return `sfo export [-o <file.csv>]

  Exports all transactions as CSV, to stdout by default.

`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "o", "", "Destination file, stdout when empty")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if c.file != "" {
		w, err = os.Create(c.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.file, err)
			return subcommands.ExitFailure
		}
		defer w.Close()
	}

	if err := stockfolio.ExportCSV(w, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
