package stockfolio

import (
	"fmt"
	"iter"
	"sort"
)

// Ledger represents a list of transactions.
//
// In a Ledger transactions are always in chronological order; same-day
// transactions keep their insertion order, so FIFO consumption is stable.
type Ledger struct {
	name         string
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Name returns the ledger's name (its file stem on disk).
func (l *Ledger) Name() string { return l.name }

// SetName sets the ledger's name.
func (l *Ledger) SetName(name string) { l.name = name }

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Append validates and appends transactions to the ledger, keeping the
// chronological order. Validation failures reject the whole batch.
func (l *Ledger) Append(txs ...Transaction) error {
	for i := range txs {
		if err := txs[i].Validate(); err != nil {
			return fmt.Errorf("invalid transaction on %s: %w", txs[i].Date, err)
		}
	}
	l.transactions = append(l.transactions, txs...)
	// Stable: ties keep their relative insertion order.
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
	return nil
}

// Transactions returns an iterator over all transactions in chronological order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if !yield(tx) {
				return
			}
		}
	}
}

// Securities returns an iterator over all security tickers, in order of
// first appearance in the ledger.
func (l *Ledger) Securities() iter.Seq[string] {
	return func(yield func(string) bool) {
		seen := make(map[string]struct{})
		for _, tx := range l.transactions {
			if _, ok := seen[tx.Security]; ok {
				continue
			}
			seen[tx.Security] = struct{}{}
			if !yield(tx.Security) {
				return
			}
		}
	}
}

// SecurityTransactions returns an iterator over the transactions of a single
// security, in chronological order.
func (l *Ledger) SecurityTransactions(security string) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if tx.Security != security {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// FirstDate returns the date of the oldest transaction, and false for an
// empty ledger.
func (l *Ledger) FirstDate() (Date, bool) {
	if len(l.transactions) == 0 {
		return Date{}, false
	}
	return l.transactions[0].Date, true
}
