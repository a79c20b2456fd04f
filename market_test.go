package stockfolio

import "testing"

func TestMarketData_PriceAsOf(t *testing.T) {
	m := NewMarketData()
	m.AddHistory("AAPL", "2025-01", 100)
	m.AddHistory("AAPL", "2025-03", 120)

	testCases := []struct {
		month     string
		wantPrice float64
		wantOK    bool
	}{
		{"2024-12", 0, false},  // before any history
		{"2025-01", 100, true}, // exact month
		{"2025-02", 100, true}, // carry-forward from January
		{"2025-03", 120, true},
		{"2025-07", 120, true}, // carry-forward from March
	}
	for _, tc := range testCases {
		price, ok := m.PriceAsOf("AAPL", tc.month)
		if ok != tc.wantOK || price != tc.wantPrice {
			t.Errorf("PriceAsOf(AAPL, %s) = %v, %v, want %v, %v", tc.month, price, ok, tc.wantPrice, tc.wantOK)
		}
	}

	if _, ok := m.PriceAsOf("GOOG", "2025-01"); ok {
		t.Error("PriceAsOf returned a price for an unknown security")
	}
}

func TestMarketData_HasBetas(t *testing.T) {
	m := NewMarketData()
	if m.HasBetas() {
		t.Error("empty market data reports betas")
	}
	m.SetBeta("AAPL", 1.2)
	if !m.HasBetas() {
		t.Error("market data with a beta reports none")
	}
	beta, ok := m.Beta("AAPL")
	if !ok || beta != 1.2 {
		t.Errorf("Beta(AAPL) = %v, %v, want 1.2, true", beta, ok)
	}
}

func TestMarketData_SecuritiesOrder(t *testing.T) {
	m := NewMarketData()
	m.SetPrice("GOOG", 100)
	m.SetBeta("AAPL", 1.1)
	m.SetPrice("GOOG", 110) // update must not duplicate

	var secs []string
	for s := range m.Securities() {
		secs = append(secs, s)
	}
	if len(secs) != 2 || secs[0] != "GOOG" || secs[1] != "AAPL" {
		t.Errorf("securities = %v, want [GOOG AAPL]", secs)
	}
}
