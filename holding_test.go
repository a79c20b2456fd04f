package stockfolio

import "testing"

func TestHoldings_Report(t *testing.T) {
	l := newTestLedger(t,
		buyOn("2025-01-10", "AAPL", 10, 10, 0),
		buyOn("2025-01-20", "AAPL", 10, 20, 0),
		sellOn("2025-02-01", "AAPL", 12, 15, 2),
		buyOn("2025-01-15", "GOOG", 2, 100, 0),
	)
	m := NewMarketData()
	m.SetPrice("AAPL", 25)
	m.SetPrice("GOOG", 90)

	as := NewAccountingSystem(l, m)
	holdings := as.Holdings()

	if len(holdings) != 2 {
		t.Fatalf("holdings = %d, want 2", len(holdings))
	}
	// Sorted by market value: AAPL 8*25=200, GOOG 2*90=180.
	if holdings[0].Security != "AAPL" || holdings[1].Security != "GOOG" {
		t.Fatalf("order = [%s %s], want [AAPL GOOG]", holdings[0].Security, holdings[1].Security)
	}

	aapl := holdings[0]
	if !near(aapl.Shares, 8) {
		t.Errorf("AAPL shares = %v, want 8", aapl.Shares)
	}
	// Remaining FIFO lot: 8 shares of the $20 buy.
	if !near(aapl.TotalCost, 160) {
		t.Errorf("AAPL cost basis = %v, want 160", aapl.TotalCost)
	}
	if !near(aapl.AvgCost, 20) {
		t.Errorf("AAPL avg cost = %v, want 20", aapl.AvgCost)
	}
	if !near(aapl.UnrealizedPnL, 40) {
		t.Errorf("AAPL unrealized = %v, want 40", aapl.UnrealizedPnL)
	}
	if !aapl.UnrealizedPnLPercent.Equal(25) {
		t.Errorf("AAPL unrealized %% = %s, want 25%%", aapl.UnrealizedPnLPercent)
	}
	if !near(aapl.RealizedPnL, 38) {
		t.Errorf("AAPL realized = %v, want 38", aapl.RealizedPnL)
	}
	// Total return percent is over lifetime capital bought ($300).
	if !aapl.TotalReturnPercent.Equal(26) {
		t.Errorf("AAPL total return %% = %s, want 26%%", aapl.TotalReturnPercent)
	}
}

func TestHoldings_MissingPriceValuesAtZero(t *testing.T) {
	l := newTestLedger(t, buyOn("2025-01-10", "AAPL", 10, 10, 0))
	as := NewAccountingSystem(l, nil)

	holdings := as.Holdings()
	if len(holdings) != 1 {
		t.Fatalf("holdings = %d, want 1", len(holdings))
	}
	h := holdings[0]
	if h.Price != 0 || h.MarketValue != 0 {
		t.Errorf("price/value = %v/%v, want 0/0 for a missing price", h.Price, h.MarketValue)
	}
	if !near(h.UnrealizedPnL, -100) {
		t.Errorf("unrealized = %v, want -100", h.UnrealizedPnL)
	}
}

func TestHoldings_ClosedPositionIsDropped(t *testing.T) {
	l := newTestLedger(t,
		buyOn("2025-01-10", "AAPL", 10, 10, 0),
		sellOn("2025-02-01", "AAPL", 10, 12, 0),
		buyOn("2025-01-15", "GOOG", 1, 100, 0),
	)
	as := NewAccountingSystem(l, nil)

	holdings := as.Holdings()
	if len(holdings) != 1 || holdings[0].Security != "GOOG" {
		t.Errorf("holdings = %+v, want only GOOG", holdings)
	}
}

func TestHoldings_DustPositionIsDropped(t *testing.T) {
	l := newTestLedger(t,
		buyOn("2025-01-10", "AAPL", 10, 10, 0),
		sellOn("2025-02-01", "AAPL", 9.995, 12, 0),
	)
	as := NewAccountingSystem(l, nil)

	if holdings := as.Holdings(); len(holdings) != 0 {
		t.Errorf("holdings = %+v, want none below the dust threshold", holdings)
	}
}
