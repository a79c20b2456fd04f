package stockfolio

import (
	"slices"
	"testing"
)

func TestMonthlyValues_SeriesIsGapFree(t *testing.T) {
	l := newTestLedger(t,
		buyOn("2024-01-15", "AAPL", 10, 10, 0),
		sellOn("2024-03-10", "AAPL", 5, 20, 0),
	)
	m := NewMarketData()
	m.AddHistory("AAPL", "2024-01", 12)
	m.AddHistory("AAPL", "2024-03", 18)
	as := NewAccountingSystem(l, m)

	series := as.MonthlyValues()

	// One snapshot per calendar month from the first transaction to today,
	// even for months without any transaction.
	first, _ := l.FirstDate()
	wantMonths := MonthKeys(first, Today())
	var gotMonths []string
	for _, s := range series {
		gotMonths = append(gotMonths, s.Month)
	}
	if !slices.Equal(gotMonths, wantMonths) {
		t.Fatalf("months = %v, want the gap-free series %v", gotMonths, wantMonths)
	}

	// January: 10 shares at the January close, buy flow of +100.
	if !near(series[0].Value, 120) || !near(series[0].NetCashFlow, 100) {
		t.Errorf("2024-01 = %+v, want value 120, flow 100", series[0])
	}
	// February has no close: the January price carries forward.
	if !near(series[1].Value, 120) || !near(series[1].NetCashFlow, 0) {
		t.Errorf("2024-02 = %+v, want value 120, flow 0", series[1])
	}
	// March: 5 shares remain at the March close, sell flow of -100.
	if !near(series[2].Value, 90) || !near(series[2].NetCashFlow, -100) {
		t.Errorf("2024-03 = %+v, want value 90, flow -100", series[2])
	}
	// The March close carries forward to the present.
	last := series[len(series)-1]
	if !near(last.Value, 90) {
		t.Errorf("last month value = %v, want 90", last.Value)
	}
}

func TestMonthlyValues_CostBasisFallback(t *testing.T) {
	l := newTestLedger(t, buyOn("2024-06-03", "AAPL", 10, 10, 5))
	as := NewAccountingSystem(l, nil)

	series := as.MonthlyValues()
	if len(series) == 0 {
		t.Fatal("empty series")
	}
	// With no market data at all, the value degrades to the cost basis
	// (fees included), never to zero.
	for _, s := range series {
		if !near(s.Value, 105) {
			t.Fatalf("%s value = %v, want the 105 cost basis", s.Month, s.Value)
		}
	}
}

func TestMonthlyValues_LivePriceForCurrentMonth(t *testing.T) {
	l := newTestLedger(t, buyOn("2024-06-03", "AAPL", 10, 10, 0))
	m := NewMarketData()
	m.AddHistory("AAPL", "2024-06", 11)
	m.SetPrice("AAPL", 42)
	as := NewAccountingSystem(l, m)

	series := as.MonthlyValues()
	last := series[len(series)-1]
	// The live quote only prices the current month.
	if !near(last.Value, 420) {
		t.Errorf("current month value = %v, want 420 from the live price", last.Value)
	}
	if !near(series[0].Value, 110) {
		t.Errorf("2024-06 value = %v, want 110 from the monthly close", series[0].Value)
	}
}

func TestMonthlyValues_EmptyLedger(t *testing.T) {
	as := NewAccountingSystem(nil, nil)
	if series := as.MonthlyValues(); series != nil {
		t.Errorf("series = %+v, want nil for an empty ledger", series)
	}
}
