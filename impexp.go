package stockfolio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// this file contains functions to handle the CSV import/export format used
// for batch entry from brokers and spreadsheets. The ledger's native format
// stays JSONL; CSV is a convenience boundary only.

var csvHeader = []string{"date", "side", "security", "shares", "price", "fees"}

// ImportCSV reads transactions from 'r' in the import format:
//
//	date,side,security,shares,price,fees
//	2025-01-10,buy,AAPL,10,150.00,1.00
//
// The transaction cost is recomputed by the constructors, and each imported
// row receives a fresh ID. Malformed rows are rejected with their row
// number; nothing is returned on error.
func ImportCSV(r io.Reader) ([]Transaction, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	start := 0
	if isCSVHeader(records[0]) {
		start = 1
	}

	var txs []Transaction
	for i, record := range records[start:] {
		row := start + i + 1
		if len(record) != len(csvHeader) {
			return nil, fmt.Errorf("row %d: want %d columns, got %d", row, len(csvHeader), len(record))
		}
		day, err := ParseDate(record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		side, err := ParseSide(strings.ToLower(strings.TrimSpace(record[1])))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		security := strings.ToUpper(strings.TrimSpace(record[2]))

		shares, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid shares %q: %w", row, record[3], err)
		}
		price, err := decimal.NewFromString(record[4])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid price %q: %w", row, record[4], err)
		}
		fees, err := decimal.NewFromString(record[5])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid fees %q: %w", row, record[5], err)
		}

		var tx Transaction
		if side == Buy {
			tx = NewBuy(day, security, Q(shares), USD(price), USD(fees))
		} else {
			tx = NewSell(day, security, Q(shares), USD(price), USD(fees))
		}
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func isCSVHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(record[0]), csvHeader[0])
}

// ExportCSV writes the ledger in the import format, header included.
func ExportCSV(w io.Writer, l *Ledger) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for tx := range l.Transactions() {
		record := []string{
			tx.Date.String(),
			string(tx.Side),
			tx.Security,
			tx.Shares.String(),
			tx.Price.value.String(),
			tx.Fees.value.String(),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write transaction on %s: %w", tx.Date, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
