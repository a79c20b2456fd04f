package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/stockfolio"
)

// ClosedPositionsMarkdown renders the trade history: closed positions
// first, then partial, then still-open ones.
func ClosedPositionsMarkdown(positions []stockfolio.ClosedPosition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Trade History\n\n")
	if len(positions) == 0 {
		fmt.Fprintln(&b, "No trades recorded.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Security | Status | Bought | Sold | Remaining | Avg Buy | Avg Sell | Realized | Return | Held | Trades |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|---:|---:|---:|")
	for _, p := range positions {
		avgSell := "-"
		if p.SharesSold > 0 {
			avgSell = money(p.AvgSellPrice)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %dd | %d |\n",
			p.Security,
			p.Status,
			quantity(p.SharesBought),
			quantity(p.SharesSold),
			quantity(p.RemainingShares),
			money(p.AvgBuyPrice),
			avgSell,
			signedMoney(p.RealizedPnL),
			p.RealizedReturnPercent.SignedString(),
			p.HoldingPeriodDays,
			p.Trades,
		)
	}
	return b.String()
}
