package stockfolio

import (
	"math"
	"sort"
)

// riskFreeRate is the fixed annual risk-free rate proxy used by the Sharpe
// ratio, in percent.
const riskFreeRate = 5.0

// Stats is the full metrics bundle of the portfolio. Every field is always
// populated: numerically degenerate metrics resolve to 0 or to an explicit
// infinity, never to NaN, so the bundle is always renderable.
type Stats struct {
	TotalValue           float64
	TotalCost            float64 // FIFO cost basis of open holdings
	TotalUnrealized      float64
	TotalUnrealizedPct   Percent
	RealizedGains        float64 // total FIFO realized gains, net of sell fees
	TotalReturn          float64 // unrealized + realized
	TotalReturnPct       Percent // over lifetime capital deployed
	NetInvested          float64 // buys - sells, the capital at risk today
	CapitalDeployed      float64 // lifetime buys only
	CapitalEfficiency    Percent // value / lifetime capital deployed
	TotalFees            float64
	HoldingsCount        int
	TotalTransactions    int
	DaysInMarket         int
	YearsInvested        float64
	AvgPositionSize      float64
	AvgUnrealizedPct     Percent
	BestPerformer        *Holding // by unrealized percent
	WorstPerformer       *Holding
	LargestHolding       *Holding // by market value

	// Money-weighted and time-weighted performance.
	CAGR       Percent // +Inf when more was withdrawn than deployed
	IRR        Percent // Newton-Raphson money-weighted annual return
	Volatility Percent // annualized stddev of Modified-Dietz monthly returns
	Sharpe     float64

	// Trade quality, over open holdings and closed trades together.
	Winners      int
	Losers       int
	WinRate      Percent
	ProfitFactor float64 // +Inf with profits and no losses
	AvgWin       float64
	AvgLoss      float64
	RiskReward   float64 // +Inf with wins and no losses

	// Concentration and market exposure.
	HHI               float64 // Herfindahl-Hirschman index of value weights
	Top5Concentration Percent
	Beta              float64 // value-weighted, missing betas default to 1.0
}

// cashFlow is a dated flow of the IRR series: negative for money deployed,
// positive for money returned.
type cashFlow struct {
	date   Date
	amount float64
}

// Stats computes the whole metrics bundle from a single FIFO matching pass.
// It is a pure function of the ledger and market data: calling it twice
// with identical inputs yields identical bundles.
func (as *AccountingSystem) Stats() *Stats {
	b := newBook(as.Ledger)
	holdings := as.holdings(b)
	today := Today()

	s := &Stats{
		HoldingsCount:     len(holdings),
		TotalTransactions: as.Ledger.Len(),
		RealizedGains:     b.realized.AsFloat(),
	}

	for i := range holdings {
		h := &holdings[i]
		s.TotalValue += h.MarketValue
		s.TotalCost += h.TotalCost
		s.AvgUnrealizedPct += h.UnrealizedPnLPercent
		if s.BestPerformer == nil || h.UnrealizedPnLPercent > s.BestPerformer.UnrealizedPnLPercent {
			s.BestPerformer = h
		}
		if s.WorstPerformer == nil || h.UnrealizedPnLPercent < s.WorstPerformer.UnrealizedPnLPercent {
			s.WorstPerformer = h
		}
	}
	if len(holdings) > 0 {
		s.LargestHolding = &holdings[0] // already sorted by market value
		s.AvgUnrealizedPct /= Percent(len(holdings))
		s.AvgPositionSize = s.TotalValue / float64(len(holdings))
	}
	s.TotalUnrealized = s.TotalValue - s.TotalCost
	if s.TotalCost > 0 {
		s.TotalUnrealizedPct = Percent(s.TotalUnrealized / s.TotalCost * 100)
	}
	s.TotalReturn = s.TotalUnrealized + s.RealizedGains

	// Lifetime flows.
	var totalBuys, totalSells float64
	for tx := range as.Ledger.Transactions() {
		s.TotalFees += tx.Fees.AsFloat()
		if tx.Side == Buy {
			totalBuys += tx.Amount.AsFloat()
		} else {
			totalSells += tx.Amount.AsFloat()
		}
	}
	s.NetInvested = totalBuys - totalSells
	s.CapitalDeployed = totalBuys
	if s.CapitalDeployed > 0 {
		s.CapitalEfficiency = Percent(s.TotalValue / s.CapitalDeployed * 100)
		s.TotalReturnPct = Percent(s.TotalReturn / s.CapitalDeployed * 100)
	}

	first, hasFirst := as.Ledger.FirstDate()
	if hasFirst {
		s.DaysInMarket = max(0, today.DaysSince(first))
	}
	s.YearsInvested = math.Max(0.01, float64(s.DaysInMarket)/365.25)

	// CAGR against the capital actually at risk. Withdrawing more than was
	// deployed while still holding value is reported as infinite growth by
	// policy: the position is free-carried.
	switch {
	case s.NetInvested > 0 && s.TotalValue > 0:
		s.CAGR = Percent((math.Pow(s.TotalValue/s.NetInvested, 1/s.YearsInvested) - 1) * 100)
	case s.NetInvested <= 0 && s.TotalValue > 0:
		s.CAGR = Percent(math.Inf(1))
	}

	// IRR over every dated flow, with the current value as the final flow.
	var flows []cashFlow
	for tx := range as.Ledger.Transactions() {
		amount := tx.Amount.AsFloat()
		if tx.Side == Buy {
			amount = -amount
		}
		flows = append(flows, cashFlow{date: tx.Date, amount: amount})
	}
	if hasFirst {
		flows = append(flows, cashFlow{date: today, amount: s.TotalValue})
	}
	s.IRR = internalRateOfReturn(flows, 0.10)

	// Trade quality counts cover open positions and closed trades alike: a
	// fully-closed losing trade still counts against the win rate even
	// though it no longer has a holding.
	var grossProfits, grossLosses float64
	for _, h := range holdings {
		if h.UnrealizedPnL >= 0 {
			s.Winners++
			grossProfits += h.UnrealizedPnL
		} else {
			s.Losers++
			grossLosses += -h.UnrealizedPnL
		}
	}
	for _, trade := range b.trades {
		pnl := trade.RealizedPnL.AsFloat()
		if pnl >= 0 {
			s.Winners++
			grossProfits += pnl
		} else {
			s.Losers++
			grossLosses += -pnl
		}
	}
	if total := s.Winners + s.Losers; total > 0 {
		s.WinRate = Percent(float64(s.Winners) / float64(total) * 100)
	}
	switch {
	case grossLosses > 0:
		s.ProfitFactor = grossProfits / grossLosses
	case grossProfits > 0:
		s.ProfitFactor = math.Inf(1)
	}
	if s.Winners > 0 {
		s.AvgWin = grossProfits / float64(s.Winners)
	}
	if s.Losers > 0 {
		s.AvgLoss = grossLosses / float64(s.Losers)
	}
	switch {
	case s.AvgLoss > 0:
		s.RiskReward = s.AvgWin / s.AvgLoss
	case s.AvgWin > 0:
		s.RiskReward = math.Inf(1)
	}

	// Concentration.
	if s.TotalValue > 0 {
		for _, h := range holdings {
			weight := h.MarketValue / s.TotalValue * 100
			s.HHI += weight * weight
		}
		var top5 float64
		for _, h := range holdings[:min(5, len(holdings))] {
			top5 += h.MarketValue
		}
		s.Top5Concentration = Percent(top5 / s.TotalValue * 100)
	}

	// Value-weighted beta. A symbol without beta data counts at market beta
	// (1.0) so a missing data point cannot shrink the weighted sum.
	if as.Market.HasBetas() && s.TotalValue > 0 {
		for _, h := range holdings {
			weight := h.MarketValue / s.TotalValue
			beta, ok := as.Market.Beta(h.Security)
			if !ok || math.IsNaN(beta) || math.IsInf(beta, 0) {
				beta = 1.0
			}
			s.Beta += beta * weight
		}
	}

	// Volatility and Sharpe need a real time series: historical prices and
	// at least 3 monthly snapshots, else both degrade to 0.
	if as.Market.HasHistory() && as.Ledger.Len() > 0 {
		monthly := as.MonthlyValues()
		if len(monthly) >= 3 {
			returns := dietzMonthlyReturns(monthly)
			if len(returns) >= 2 {
				s.Volatility = Percent(stddev(returns) * math.Sqrt(12))
				if s.Volatility > 0 {
					s.Sharpe = (float64(s.IRR) - riskFreeRate) / float64(s.Volatility)
				}
			}
		}
	}

	return s
}

// internalRateOfReturn computes the annualized money-weighted return of a
// dated cash-flow series with Newton-Raphson, as a percentage. Flows are
// expressed in years from the first flow. Fewer than 2 flows return 0.
func internalRateOfReturn(flows []cashFlow, guess float64) Percent {
	if len(flows) < 2 {
		return 0
	}

	sorted := make([]cashFlow, len(flows))
	copy(sorted, flows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].date.Before(sorted[j].date) })
	first := sorted[0].date

	type yearFlow struct {
		years  float64
		amount float64
	}
	yflows := make([]yearFlow, len(sorted))
	for i, cf := range sorted {
		yflows[i] = yearFlow{
			years:  float64(cf.date.DaysSince(first)) / 365.25,
			amount: cf.amount,
		}
	}

	rate := guess
	for i := 0; i < 100; i++ {
		var npv, dnpv float64
		for _, flow := range yflows {
			factor := math.Pow(1+rate, -flow.years)
			npv += flow.amount * factor
			dnpv -= flow.years * flow.amount * factor / (1 + rate)
		}
		if math.Abs(npv) < 1e-4 {
			break
		}
		if dnpv == 0 {
			// Flat derivative: stop early with the current estimate rather
			// than divide by zero.
			break
		}
		rate -= npv / dnpv

		// Clamp to prevent divergence.
		if rate < -0.99 {
			rate = -0.99
		}
		if rate > 10 {
			rate = 10
		}
	}
	return Percent(rate * 100)
}

// dietzMonthlyReturns derives month-over-month Modified Dietz returns (in
// percent) from the valuation series: (Vend - Vstart - CF) / (Vstart +
// 0.5*CF). Months with a non-positive denominator are skipped.
func dietzMonthlyReturns(monthly []MonthlySnapshot) []float64 {
	var returns []float64
	for i := 1; i < len(monthly); i++ {
		prev, curr := monthly[i-1], monthly[i]
		denom := prev.Value + 0.5*curr.NetCashFlow
		if denom > 0 {
			returns = append(returns, (curr.Value-prev.Value-curr.NetCashFlow)/denom*100)
		}
	}
	return returns
}

// stddev returns the sample standard deviation.
func stddev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values) - 1)
	return math.Sqrt(variance)
}
