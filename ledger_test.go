package stockfolio

import (
	"slices"
	"testing"
)

func TestLedger_AppendSortsByDate(t *testing.T) {
	l := NewLedger()
	err := l.Append(
		buyOn("2025-03-01", "GOOG", 5, 100, 0),
		buyOn("2025-01-10", "AAPL", 10, 150, 0),
		sellOn("2025-02-01", "AAPL", 5, 160, 0),
	)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}

	var dates []string
	for tx := range l.Transactions() {
		dates = append(dates, tx.Date.String())
	}
	want := []string{"2025-01-10", "2025-02-01", "2025-03-01"}
	if !slices.Equal(dates, want) {
		t.Errorf("transaction dates = %v, want %v", dates, want)
	}
}

func TestLedger_AppendKeepsSameDayOrder(t *testing.T) {
	// Two trades on the same day must replay in insertion order: a buy
	// followed by a sell of the same security is a valid day trade.
	l := newTestLedger(t,
		buyOn("2025-01-10", "AAPL", 10, 150, 0),
		sellOn("2025-01-10", "AAPL", 10, 160, 0),
	)

	var sides []Side
	for tx := range l.Transactions() {
		sides = append(sides, tx.Side)
	}
	if sides[0] != Buy || sides[1] != Sell {
		t.Errorf("same-day order = %v, want [buy sell]", sides)
	}
}

func TestLedger_AppendRejectsInvalid(t *testing.T) {
	l := NewLedger()
	bad := buyOn("2025-01-10", "AAPL", 10, 150, 0)
	bad.Shares = Q(-1)
	if err := l.Append(bad); err == nil {
		t.Error("Append accepted a negative share count")
	}
	if l.Len() != 0 {
		t.Errorf("ledger length = %d after rejected append, want 0", l.Len())
	}
}

func TestLedger_Securities(t *testing.T) {
	l := newTestLedger(t,
		buyOn("2025-01-10", "AAPL", 10, 150, 0),
		buyOn("2025-01-11", "GOOG", 5, 100, 0),
		sellOn("2025-01-12", "AAPL", 5, 160, 0),
	)

	var secs []string
	for s := range l.Securities() {
		secs = append(secs, s)
	}
	want := []string{"AAPL", "GOOG"}
	if !slices.Equal(secs, want) {
		t.Errorf("securities = %v, want %v", secs, want)
	}
}

func TestLedger_FirstDate(t *testing.T) {
	l := NewLedger()
	if _, ok := l.FirstDate(); ok {
		t.Error("FirstDate on an empty ledger reported a date")
	}

	l = newTestLedger(t, buyOn("2025-03-01", "GOOG", 5, 100, 0), buyOn("2025-01-10", "AAPL", 10, 150, 0))
	first, ok := l.FirstDate()
	if !ok || first.String() != "2025-01-10" {
		t.Errorf("FirstDate = %s, %v, want 2025-01-10, true", first, ok)
	}
}
