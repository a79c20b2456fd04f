package stockfolio

import "testing"

func TestClosedPositions_Statuses(t *testing.T) {
	l := newTestLedger(t,
		buyOn("2025-01-10", "AAPL", 10, 10, 0),
		sellOn("2025-02-01", "AAPL", 10, 15, 0), // closed
		buyOn("2025-01-11", "GOOG", 10, 100, 0),
		sellOn("2025-02-02", "GOOG", 4, 110, 0), // partial
		buyOn("2025-01-12", "MSFT", 5, 200, 0), // open
	)
	as := NewAccountingSystem(l, nil)

	positions := as.ClosedPositions()
	if len(positions) != 3 {
		t.Fatalf("positions = %d, want 3", len(positions))
	}

	byStatus := map[PositionStatus]ClosedPosition{}
	for _, p := range positions {
		byStatus[p.Status] = p
	}
	if byStatus[StatusClosed].Security != "AAPL" {
		t.Errorf("closed = %s, want AAPL", byStatus[StatusClosed].Security)
	}
	if byStatus[StatusPartial].Security != "GOOG" {
		t.Errorf("partial = %s, want GOOG", byStatus[StatusPartial].Security)
	}
	if byStatus[StatusOpen].Security != "MSFT" {
		t.Errorf("open = %s, want MSFT", byStatus[StatusOpen].Security)
	}

	// Closed positions sort before partial, before open.
	if positions[0].Status != StatusClosed || positions[1].Status != StatusPartial || positions[2].Status != StatusOpen {
		t.Errorf("status order = [%s %s %s]", positions[0].Status, positions[1].Status, positions[2].Status)
	}
}

func TestClosedPositions_CostOfSoldSharesIdentity(t *testing.T) {
	l := newTestLedger(t,
		buyOn("2025-01-10", "AAPL", 10, 10, 3),
		buyOn("2025-01-20", "AAPL", 10, 20, 0),
		sellOn("2025-02-01", "AAPL", 12, 15, 2),
	)
	as := NewAccountingSystem(l, nil)

	positions := as.ClosedPositions()
	if len(positions) != 1 {
		t.Fatalf("positions = %d, want 1", len(positions))
	}
	p := positions[0]

	// The trade history and the FIFO matcher must agree by construction:
	// proceeds - cost of sold shares = realized P&L.
	if !near(p.Proceeds-p.CostOfSoldShares, p.RealizedPnL) {
		t.Errorf("proceeds %v - cost of sold %v != realized %v", p.Proceeds, p.CostOfSoldShares, p.RealizedPnL)
	}
	// Proceeds are net of the sell fee: 12*15 - 2.
	if !near(p.Proceeds, 178) {
		t.Errorf("proceeds = %v, want 178", p.Proceeds)
	}
	// Cost includes buy fees: 100 + 200 + 3.
	if !near(p.Cost, 303) {
		t.Errorf("cost = %v, want 303", p.Cost)
	}
	if !near(p.Fees, 5) {
		t.Errorf("fees = %v, want 5", p.Fees)
	}
	if p.Status != StatusPartial {
		t.Errorf("status = %s, want partial", p.Status)
	}
	if !near(p.RemainingShares, 8) {
		t.Errorf("remaining = %v, want 8", p.RemainingShares)
	}
}

func TestClosedPositions_HoldingPeriod(t *testing.T) {
	l := newTestLedger(t,
		buyOn("2025-01-10", "AAPL", 10, 10, 0),
		sellOn("2025-03-11", "AAPL", 10, 15, 0),
	)
	as := NewAccountingSystem(l, nil)

	p := as.ClosedPositions()[0]
	if p.HoldingPeriodDays != 60 {
		t.Errorf("holding period = %d days, want 60", p.HoldingPeriodDays)
	}
	if p.FirstBuy.String() != "2025-01-10" || p.LastSell.String() != "2025-03-11" {
		t.Errorf("period = %s..%s", p.FirstBuy, p.LastSell)
	}
}

func TestClosedPositions_AvgPrices(t *testing.T) {
	l := newTestLedger(t,
		buyOn("2025-01-10", "AAPL", 10, 10, 0),
		buyOn("2025-01-20", "AAPL", 10, 30, 0),
		sellOn("2025-02-01", "AAPL", 5, 22, 0),
	)
	as := NewAccountingSystem(l, nil)

	p := as.ClosedPositions()[0]
	if !near(p.AvgBuyPrice, 20) {
		t.Errorf("avg buy = %v, want 20", p.AvgBuyPrice)
	}
	if !near(p.AvgSellPrice, 22) {
		t.Errorf("avg sell = %v, want 22", p.AvgSellPrice)
	}
}
