package renderer

import (
	"fmt"
	"math"
	"strings"

	"github.com/etnz/stockfolio"
)

// StatsMarkdown renders the full metrics bundle as a markdown report.
func StatsMarkdown(s *stockfolio.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Statistics\n\n")

	fmt.Fprintln(&b, "## Value")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Value | %s |\n", money(s.TotalValue))
	fmt.Fprintf(&b, "| Cost Basis | %s |\n", money(s.TotalCost))
	fmt.Fprintf(&b, "| Unrealized P&L | %s (%s) |\n", signedMoney(s.TotalUnrealized), s.TotalUnrealizedPct.SignedString())
	fmt.Fprintf(&b, "| Realized Gains | %s |\n", signedMoney(s.RealizedGains))
	fmt.Fprintf(&b, "| Total Return | %s (%s) |\n", signedMoney(s.TotalReturn), s.TotalReturnPct.SignedString())
	fmt.Fprintf(&b, "| Net Invested | %s |\n", money(s.NetInvested))
	fmt.Fprintf(&b, "| Capital Deployed | %s |\n", money(s.CapitalDeployed))
	fmt.Fprintf(&b, "| Capital Efficiency | %s |\n", s.CapitalEfficiency)
	fmt.Fprintf(&b, "| Total Fees | %s |\n", money(s.TotalFees))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Performance")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| CAGR | %s |\n", s.CAGR.SignedString())
	fmt.Fprintf(&b, "| IRR | %s |\n", s.IRR.SignedString())
	fmt.Fprintf(&b, "| Volatility (annualized) | %s |\n", s.Volatility)
	fmt.Fprintf(&b, "| Sharpe Ratio | %s |\n", ratio(s.Sharpe))
	fmt.Fprintf(&b, "| Years Invested | %.2f |\n", s.YearsInvested)
	fmt.Fprintf(&b, "| Days In Market | %d |\n", s.DaysInMarket)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Trades")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Winners / Losers | %d / %d |\n", s.Winners, s.Losers)
	fmt.Fprintf(&b, "| Win Rate | %s |\n", s.WinRate)
	fmt.Fprintf(&b, "| Profit Factor | %s |\n", ratio(s.ProfitFactor))
	fmt.Fprintf(&b, "| Avg Win | %s |\n", signedMoney(s.AvgWin))
	fmt.Fprintf(&b, "| Avg Loss | %s |\n", signedMoney(s.AvgLoss))
	fmt.Fprintf(&b, "| Risk/Reward | %s |\n", ratio(s.RiskReward))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "## Allocation")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Holdings | %d |\n", s.HoldingsCount)
	fmt.Fprintf(&b, "| Transactions | %d |\n", s.TotalTransactions)
	fmt.Fprintf(&b, "| Avg Position Size | %s |\n", money(s.AvgPositionSize))
	fmt.Fprintf(&b, "| HHI | %.0f |\n", s.HHI)
	fmt.Fprintf(&b, "| Top 5 Concentration | %s |\n", s.Top5Concentration)
	fmt.Fprintf(&b, "| Portfolio Beta | %.2f |\n", s.Beta)
	if s.BestPerformer != nil {
		fmt.Fprintf(&b, "| Best Performer | %s (%s) |\n", s.BestPerformer.Security, s.BestPerformer.UnrealizedPnLPercent.SignedString())
	}
	if s.WorstPerformer != nil {
		fmt.Fprintf(&b, "| Worst Performer | %s (%s) |\n", s.WorstPerformer.Security, s.WorstPerformer.UnrealizedPnLPercent.SignedString())
	}
	if s.LargestHolding != nil {
		fmt.Fprintf(&b, "| Largest Holding | %s (%s) |\n", s.LargestHolding.Security, money(s.LargestHolding.MarketValue))
	}
	return b.String()
}

// ratio formats a dimensionless ratio, rendering infinities explicitly.
func ratio(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	if math.IsInf(v, -1) {
		return "-∞"
	}
	return fmt.Sprintf("%.2f", v)
}
