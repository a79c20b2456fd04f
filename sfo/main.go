// Command sfo is a stock portfolio tracker: it records buy and sell
// transactions in a plain JSONL ledger and reports holdings, trade history
// and performance statistics from it.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/stockfolio/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion handles the invocation entirely when the completion
	// environment variables are set.
	completion().Complete("sfo")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	txFlags := map[string]complete.Predictor{
		"d": predict.Nothing,
		"s": predict.Nothing,
		"q": predict.Nothing,
		"p": predict.Nothing,
		"f": predict.Nothing,
	}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
			"market-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"buy":     {Flags: txFlags},
			"sell":    {Flags: txFlags},
			"tx":      {},
			"import":  {Flags: map[string]complete.Predictor{"i": predict.Files("*.csv")}},
			"export":  {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"fetch":   {},
			"holding": {},
			"history": {},
			"stats":   {},
			"monthly": {},
			"topic":   {Args: predict.Nothing},
		},
	}
}
