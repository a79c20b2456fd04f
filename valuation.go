package stockfolio

import "sort"

// MonthlySnapshot is one point of the gap-free monthly valuation series:
// the portfolio's market value at the end of a calendar month, plus the net
// external cash flow (buys minus sells) dated in that month.
type MonthlySnapshot struct {
	Month       string // "YYYY-MM"
	Value       float64
	NetCashFlow float64
}

// monthHolding is the average-cost holdings state carried through the
// monthly replay. The valuation series feeds volatility and growth charts;
// it does not need lot-level precision, only a stable cost-basis fallback.
type monthHolding struct {
	shares    float64
	totalCost float64
}

// MonthlyValues replays the ledger into a continuous month-by-month
// valuation series, from the month of the first transaction to the current
// month, with no gaps. Months without transactions carry the previous
// holdings state forward, but their market value is still computed fresh.
//
// Pricing priority for a holding in month M: live price (current month
// only), then the exact historical close for M, then the most recent
// historical close at or before M, then the cost basis per share.
func (as *AccountingSystem) MonthlyValues() []MonthlySnapshot {
	first, ok := as.Ledger.FirstDate()
	if !ok {
		return nil
	}

	holdings := make(map[string]*monthHolding)
	snapshots := make(map[string]map[string]monthHolding)
	flows := make(map[string]float64)

	for tx := range as.Ledger.Transactions() {
		monthKey := tx.Date.MonthKey()
		h, okh := holdings[tx.Security]
		if !okh {
			h = &monthHolding{}
			holdings[tx.Security] = h
		}

		if tx.Side == Buy {
			h.shares += tx.Shares.AsFloat()
			h.totalCost += tx.Amount.AsFloat()
			flows[monthKey] += tx.Amount.AsFloat()
		} else {
			var avgCost float64
			if h.shares > 0 {
				avgCost = h.totalCost / h.shares
			}
			sellShares := min(tx.Shares.AsFloat(), h.shares)
			h.shares -= sellShares
			h.totalCost = max(0, h.shares*avgCost)
			flows[monthKey] -= tx.Amount.AsFloat()
		}

		// Snapshot the state as of the end of this month (deep copy: later
		// months keep mutating the live map).
		snap := make(map[string]monthHolding, len(holdings))
		for sec, hh := range holdings {
			snap[sec] = *hh
		}
		snapshots[monthKey] = snap
	}

	today := Today()
	currentMonth := today.MonthKey()

	var series []MonthlySnapshot
	var last map[string]monthHolding
	for _, monthKey := range MonthKeys(first, today) {
		state, oks := snapshots[monthKey]
		var netCashFlow float64
		if oks {
			netCashFlow = flows[monthKey]
		} else {
			state = last
		}
		if state == nil {
			continue
		}
		last = state

		// Deterministic order: float summation must not depend on map order,
		// or two identical calls could disagree in the last ulp.
		secs := make([]string, 0, len(state))
		for security := range state {
			secs = append(secs, security)
		}
		sort.Strings(secs)

		var value float64
		for _, security := range secs {
			h := state[security]
			if h.shares <= 0 {
				continue
			}
			value += h.shares * as.monthPrice(security, monthKey, currentMonth, h)
		}
		series = append(series, MonthlySnapshot{Month: monthKey, Value: value, NetCashFlow: netCashFlow})
	}
	return series
}

// monthPrice resolves the price of one holding for one month, walking the
// documented fallback chain.
func (as *AccountingSystem) monthPrice(security, monthKey, currentMonth string, h monthHolding) float64 {
	if monthKey == currentMonth {
		if p, ok := as.Market.Price(security); ok {
			return p
		}
	}
	if p, ok := as.Market.PriceAsOf(security, monthKey); ok {
		return p
	}
	// Last resort when no market data exists at all: cost basis per share.
	if h.shares > 0 {
		return h.totalCost / h.shares
	}
	return 0
}
