package stockfolio

// TradeResult is one discrete realized-gain event: the outcome of a single
// effective sell after FIFO matching, used for win/loss counting.
type TradeResult struct {
	Security    string
	Date        Date
	RealizedPnL Money
}

// position carries the matcher state of a single security during a replay.
type position struct {
	security      string
	shares        Quantity
	totalCost     Money // running average-cost basis
	openLots      lots
	realized      Money // cumulative FIFO realized gains, net of sell fees
	capitalBought Money // lifetime buy cost, the percent base for blended returns
}

// avgCostBasis returns the running average cost of the open shares. The FIFO
// lot cost is preferred everywhere; this figure is the fallback when no lots
// remain.
func (p *position) avgCostBasis() Money {
	if !p.shares.IsPositive() {
		return Money{}
	}
	return p.totalCost
}

// book is the result of a full FIFO replay of a ledger: the single
// authoritative matching pass every report reads from.
type book struct {
	positions map[string]*position
	order     []string // securities in first-appearance order
	trades    []TradeResult
	realized  Money // total realized gains across all securities
}

// newBook replays the whole ledger once, in chronological order.
//
// Buys push a lot whose per-share cost includes the buy fee. Sells are
// clamped to the shares actually held: selling short is a policy violation
// silently reduced to the available quantity, and a sell clamped to nothing
// produces no realized-gain event at all. Lots are consumed oldest first,
// and the sell's fee is charged once against the whole event.
func newBook(l *Ledger) *book {
	b := &book{positions: make(map[string]*position)}

	for tx := range l.Transactions() {
		p, ok := b.positions[tx.Security]
		if !ok {
			p = &position{security: tx.Security}
			b.positions[tx.Security] = p
			b.order = append(b.order, tx.Security)
		}

		if tx.Side == Buy {
			costPerShare := tx.Price.Add(tx.Fees.Div(tx.Shares))
			p.openLots = p.openLots.push(tx.Date, tx.Shares, costPerShare)
			p.shares = p.shares.Add(tx.Shares)
			p.totalCost = p.totalCost.Add(tx.Amount)
			p.capitalBought = p.capitalBought.Add(tx.Amount)
			continue
		}

		// Clamp to the held quantity: no short position is ever created.
		sellShares := tx.Shares.Min(p.shares)
		if !sellShares.GreaterThan(lotDust) {
			// Nothing to sell; the whole event is skipped.
			continue
		}

		// Reduce the average-cost running totals.
		avgCost := p.totalCost.Div(p.shares)
		p.shares = p.shares.Sub(sellShares)
		p.totalCost = avgCost.Mul(p.shares)
		if p.totalCost.IsNegative() {
			p.totalCost = Money{}
		}

		var realized Money
		p.openLots, realized = p.openLots.consume(sellShares, tx.Price)
		realized = realized.Sub(tx.Fees)

		p.realized = p.realized.Add(realized)
		b.realized = b.realized.Add(realized)
		b.trades = append(b.trades, TradeResult{Security: tx.Security, Date: tx.Date, RealizedPnL: realized})
	}
	return b
}

// AccountingSystem combines the transaction ledger with market data and is
// the engine's boundary: holdings, trade history, monthly valuations, and
// the stats bundle are all derived from it.
//
// It is a stateless calculator over an immutable snapshot of its inputs:
// every call replays the ledger from scratch, so identical inputs always
// produce identical outputs and concurrent calls are safe.
type AccountingSystem struct {
	Ledger *Ledger
	Market *MarketData
}

// NewAccountingSystem creates a new accounting system from a ledger and
// market data. A nil market is treated as empty: holdings then value at
// zero, the documented degradation for missing price data.
func NewAccountingSystem(ledger *Ledger, market *MarketData) *AccountingSystem {
	if ledger == nil {
		ledger = NewLedger()
	}
	if market == nil {
		market = NewMarketData()
	}
	return &AccountingSystem{Ledger: ledger, Market: market}
}
