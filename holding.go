package stockfolio

import "sort"

// Holding is the presentable view of an open position. Quantities and
// amounts are reported as floats: exactness matters in the matching pass,
// not in the report layer.
type Holding struct {
	Security             string
	Shares               float64
	AvgCost              float64 // cost basis per share still held
	TotalCost            float64 // FIFO remaining-lot cost basis
	Price                float64 // live price, 0 when unknown
	MarketValue          float64
	UnrealizedPnL        float64
	UnrealizedPnLPercent Percent
	RealizedPnL          float64
	TotalReturn          float64 // unrealized + realized
	TotalReturnPercent   Percent // over lifetime capital bought
}

// Holdings projects the matcher state and live prices into one Holding per
// security with open shares above the dust threshold, sorted by market
// value descending (ties keep first-appearance order). It is recomputed
// from scratch on every call.
func (as *AccountingSystem) Holdings() []Holding {
	return as.holdings(newBook(as.Ledger))
}

func (as *AccountingSystem) holdings(b *book) []Holding {
	var holdings []Holding
	for _, security := range b.order {
		p := b.positions[security]
		if !p.shares.GreaterThan(positionDust) {
			continue
		}

		price, _ := as.Market.Price(security) // missing price values at 0, never an estimate
		shares := p.shares.AsFloat()
		marketValue := shares * price

		// Prefer the FIFO remaining-lot cost: it reflects the lots actually
		// still owned, while the running average drifts under partial sells.
		totalCost := p.openLots.costBasis().AsFloat()
		if totalCost <= 0 {
			totalCost = p.avgCostBasis().AsFloat()
		}

		unrealized := marketValue - totalCost
		var unrealizedPct Percent
		if totalCost > 0 {
			unrealizedPct = Percent(unrealized / totalCost * 100)
		}

		realized := p.realized.AsFloat()
		totalReturn := unrealized + realized
		capitalBought := p.capitalBought.AsFloat()
		var totalReturnPct Percent
		if capitalBought > 0 {
			totalReturnPct = Percent(totalReturn / capitalBought * 100)
		}

		holdings = append(holdings, Holding{
			Security:             security,
			Shares:               shares,
			AvgCost:              totalCost / shares,
			TotalCost:            totalCost,
			Price:                price,
			MarketValue:          marketValue,
			UnrealizedPnL:        unrealized,
			UnrealizedPnLPercent: unrealizedPct,
			RealizedPnL:          realized,
			TotalReturn:          totalReturn,
			TotalReturnPercent:   totalReturnPct,
		})
	}

	// Stable: equal values keep the ledger's first-appearance order.
	sort.SliceStable(holdings, func(i, j int) bool {
		return holdings[i].MarketValue > holdings[j].MarketValue
	})
	return holdings
}
