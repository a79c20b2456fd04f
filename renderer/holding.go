package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/stockfolio"
)

// HoldingsMarkdown renders the open holdings as a markdown table, largest
// position first.
func HoldingsMarkdown(holdings []stockfolio.Holding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")
	if len(holdings) == 0 {
		fmt.Fprintln(&b, "No open positions.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Security | Shares | Avg Cost | Price | Value | Unrealized | Return | Total Return |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|")

	var totalValue, totalCost, totalReturn float64
	for _, h := range holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			h.Security,
			quantity(h.Shares),
			money(h.AvgCost),
			money(h.Price),
			money(h.MarketValue),
			signedMoney(h.UnrealizedPnL),
			h.UnrealizedPnLPercent.SignedString(),
			h.TotalReturnPercent.SignedString(),
		)
		totalValue += h.MarketValue
		totalCost += h.TotalCost
		totalReturn += h.TotalReturn
	}
	fmt.Fprintf(&b, "| **Total** | | | | **%s** | **%s** | | **%s** |\n",
		money(totalValue), signedMoney(totalValue-totalCost), signedMoney(totalReturn))
	return b.String()
}
