package stockfolio

import (
	"math"
	"testing"
)

// buyOn and sellOn build validated transactions from bare floats, keeping
// test tables short.
func buyOn(day, security string, shares, price, fees float64) Transaction {
	return NewBuy(MustParse(day), security, Q(shares), USD(price), USD(fees))
}

func sellOn(day, security string, shares, price, fees float64) Transaction {
	return NewSell(MustParse(day), security, Q(shares), USD(price), USD(fees))
}

// newTestLedger builds a ledger from transactions, failing the test on any
// validation error.
func newTestLedger(t *testing.T, txs ...Transaction) *Ledger {
	t.Helper()
	l := NewLedger()
	if err := l.Append(txs...); err != nil {
		t.Fatalf("cannot build test ledger: %v", err)
	}
	return l
}

// near reports whether two floats agree within a cent-scale tolerance.
func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }
