package stockfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// this file handles the ledger persistence format: JSONL, one transaction
// per line, human readable and trivially mergeable under version control.

// EncodeTransaction writes a single transaction as one JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("cannot encode transaction on %s: %w", tx.Date, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write transaction on %s: %w", tx.Date, err)
	}
	return nil
}

// EncodeLedger writes the whole ledger in canonical form: validated, sorted
// by date, one JSON object per line.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL ledger from r. Every line is validated; the
// resulting ledger is chronologically sorted.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal([]byte(text), &tx); err != nil {
			return nil, fmt.Errorf("cannot parse ledger line %d: %w", line, err)
		}
		if err := ledger.Append(tx); err != nil {
			return nil, fmt.Errorf("invalid ledger line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	return ledger, nil
}
