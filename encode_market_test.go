package stockfolio

import (
	"strings"
	"testing"
)

func TestEncodeDecodeMarketData_RoundTrip(t *testing.T) {
	m := NewMarketData()
	m.SetPrice("AAPL", 150.5)
	m.SetBeta("AAPL", 1.2)
	m.AddHistory("AAPL", "2025-01", 140)
	m.AddHistory("AAPL", "2025-02", 145)
	m.SetPrice("GOOG", 100)

	var b strings.Builder
	if err := EncodeMarketData(&b, m); err != nil {
		t.Fatalf("EncodeMarketData: %v", err)
	}

	back, err := DecodeMarketData(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeMarketData: %v", err)
	}

	if p, ok := back.Price("AAPL"); !ok || p != 150.5 {
		t.Errorf("AAPL price = %v, %v, want 150.5, true", p, ok)
	}
	if beta, ok := back.Beta("AAPL"); !ok || beta != 1.2 {
		t.Errorf("AAPL beta = %v, %v, want 1.2, true", beta, ok)
	}
	if p, ok := back.PriceAsOf("AAPL", "2025-03"); !ok || p != 145 {
		t.Errorf("AAPL as-of price = %v, %v, want 145, true", p, ok)
	}
	if _, ok := back.Beta("GOOG"); ok {
		t.Error("GOOG grew a beta in the round trip")
	}
}

func TestDecodeMarketData_RequiresTicker(t *testing.T) {
	_, err := DecodeMarketData(strings.NewReader(`{"price":100}` + "\n"))
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error = %v, want a line-numbered ticker error", err)
	}
}
