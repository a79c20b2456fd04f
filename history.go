package stockfolio

import "sort"

// PositionStatus classifies the lifecycle of a traded security.
type PositionStatus string

const (
	StatusOpen    PositionStatus = "open"    // bought, never sold
	StatusPartial PositionStatus = "partial" // sold some, still holding
	StatusClosed  PositionStatus = "closed"  // fully exited
)

// ClosedPosition summarizes the complete trading history of one security:
// gross totals from the raw transactions, combined with the matcher's
// realized P&L so both views can never disagree.
type ClosedPosition struct {
	Security              string
	Status                PositionStatus
	SharesBought          float64
	SharesSold            float64
	RemainingShares       float64
	Cost                  float64 // total spent on buys, fees included
	CostOfSoldShares      float64 // FIFO cost basis of the shares sold; 0 for open
	Proceeds              float64 // received from sells, net of fees; 0 for open
	Fees                  float64 // buy + sell fees
	RealizedPnL           float64
	RealizedReturnPercent Percent
	AvgBuyPrice           float64
	AvgSellPrice          float64 // 0 for open (no sells yet)
	FirstBuy              Date
	LastSell              Date // zero for open
	HoldingPeriodDays     int  // first buy to last sell, or to today for open
	Trades                int
}

// symbolStats aggregates the raw per-security totals of the classifier pass.
type symbolStats struct {
	sharesBought float64
	sharesSold   float64
	buyCost      float64 // shares x price, no fees
	sellProceeds float64 // shares x price, no fees
	buyFees      float64
	sellFees     float64
	firstBuy     Date
	lastSell     Date
	trades       int
}

// ClosedPositions aggregates the ledger per security into closed, partial
// and open trade summaries. The realized P&L is borrowed from the FIFO
// matching pass; the cost of the sold shares is then derived from the
// identity cost = proceeds - sellFees - realizedPnL, so the two passes stay
// consistent by construction.
func (as *AccountingSystem) ClosedPositions() []ClosedPosition {
	stats := make(map[string]*symbolStats)
	var order []string

	for tx := range as.Ledger.Transactions() {
		s, ok := stats[tx.Security]
		if !ok {
			// A sell-only symbol (clamped short attempt) still anchors its
			// holding period on its first transaction.
			s = &symbolStats{firstBuy: tx.Date}
			stats[tx.Security] = s
			order = append(order, tx.Security)
		}
		s.trades++
		if tx.Side == Buy {
			s.sharesBought += tx.Shares.AsFloat()
			s.buyCost += tx.Price.Mul(tx.Shares).AsFloat()
			s.buyFees += tx.Fees.AsFloat()
			if s.firstBuy.IsZero() || tx.Date.Before(s.firstBuy) {
				s.firstBuy = tx.Date
			}
		} else {
			s.sharesSold += tx.Shares.AsFloat()
			s.sellProceeds += tx.Price.Mul(tx.Shares).AsFloat()
			s.sellFees += tx.Fees.AsFloat()
			if s.lastSell.IsZero() || tx.Date.After(s.lastSell) {
				s.lastSell = tx.Date
			}
		}
	}

	b := newBook(as.Ledger)
	today := Today()

	var positions []ClosedPosition
	for _, security := range order {
		s := stats[security]
		remaining := max(0, s.sharesBought-s.sharesSold)
		hasSells := s.sharesSold > 0.0001

		status := StatusOpen
		if hasSells {
			if remaining < 0.01 {
				status = StatusClosed
			} else {
				status = StatusPartial
			}
		}

		var realized float64
		if p, ok := b.positions[security]; ok {
			realized = p.realized.AsFloat()
		}

		var costOfSold, proceeds float64
		var lastSell Date
		end := today
		if hasSells {
			costOfSold = s.sellProceeds - s.sellFees - realized
			proceeds = s.sellProceeds - s.sellFees
			lastSell = s.lastSell
			end = s.lastSell
		}
		var realizedPct Percent
		if costOfSold > 0 {
			realizedPct = Percent(realized / costOfSold * 100)
		}

		var avgBuy, avgSell float64
		if s.sharesBought > 0 {
			avgBuy = s.buyCost / s.sharesBought
		}
		if s.sharesSold > 0 {
			avgSell = s.sellProceeds / s.sharesSold
		}

		positions = append(positions, ClosedPosition{
			Security:              security,
			Status:                status,
			SharesBought:          s.sharesBought,
			SharesSold:            s.sharesSold,
			RemainingShares:       remaining,
			Cost:                  s.buyCost + s.buyFees,
			CostOfSoldShares:      costOfSold,
			Proceeds:              proceeds,
			Fees:                  s.buyFees + s.sellFees,
			RealizedPnL:           realized,
			RealizedReturnPercent: realizedPct,
			AvgBuyPrice:           avgBuy,
			AvgSellPrice:          avgSell,
			FirstBuy:              s.firstBuy,
			LastSell:              lastSell,
			HoldingPeriodDays:     max(0, end.DaysSince(s.firstBuy)),
			Trades:                s.trades,
		})
	}

	statusOrder := map[PositionStatus]int{StatusClosed: 0, StatusPartial: 1, StatusOpen: 2}
	sort.SliceStable(positions, func(i, j int) bool {
		a, b := positions[i], positions[j]
		if a.Status != b.Status {
			return statusOrder[a.Status] < statusOrder[b.Status]
		}
		if a.Status == StatusOpen {
			return a.Cost > b.Cost
		}
		return a.RealizedPnL > b.RealizedPnL
	})
	return positions
}
