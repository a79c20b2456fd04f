package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/stockfolio"
)

// TransactionsMarkdown renders the ledger in chronological order.
func TransactionsMarkdown(l *stockfolio.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")
	if l.Len() == 0 {
		fmt.Fprintln(&b, "Ledger is empty.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Side | Security | Shares | Price | Fees | Amount |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|---:|")
	for tx := range l.Transactions() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			tx.Date,
			tx.Side,
			tx.Security,
			quantity(tx.Shares.AsFloat()),
			money(tx.Price.AsFloat()),
			money(tx.Fees.AsFloat()),
			money(tx.Amount.AsFloat()),
		)
	}
	return b.String()
}
