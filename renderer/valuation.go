package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/stockfolio"
)

// MonthlyValuesMarkdown renders the month-end valuation series with the net
// cash flow of each month.
func MonthlyValuesMarkdown(snapshots []stockfolio.MonthlySnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Monthly Valuation\n\n")
	if len(snapshots) == 0 {
		fmt.Fprintln(&b, "No valuation history.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Month | Value | Net Cash Flow | Change |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	var prev float64
	for i, m := range snapshots {
		change := "-"
		if i > 0 && prev != 0 {
			change = fmt.Sprintf("%+.2f%%", (m.Value-prev)/prev*100)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", m.Month, money(m.Value), signedMoney(m.NetCashFlow), change)
		prev = m.Value
	}
	return b.String()
}
