package stockfolio

import (
	"strings"
	"testing"
)

func TestImportCSV(t *testing.T) {
	input := `date,side,security,shares,price,fees
2025-01-10,buy,aapl,10,150.00,1.00
2025-02-01,SELL,AAPL,5,160,0
`
	txs, err := ImportCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("transactions = %d, want 2", len(txs))
	}

	buy := txs[0]
	if buy.Security != "AAPL" {
		t.Errorf("security = %q, want uppercased AAPL", buy.Security)
	}
	if buy.Side != Buy || !buy.Amount.Equal(USD(1501)) {
		t.Errorf("buy = %s %s, want buy of $1,501.00", buy.Side, buy.Amount)
	}
	if buy.ID == "" {
		t.Error("imported row has no id")
	}
	if sell := txs[1]; sell.Side != Sell || !sell.Amount.Equal(USD(800)) {
		t.Errorf("sell = %s %s, want sell of $800.00", sell.Side, sell.Amount)
	}
}

func TestImportCSV_HeaderIsOptional(t *testing.T) {
	txs, err := ImportCSV(strings.NewReader("2025-01-10,buy,AAPL,10,150,0\n"))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if len(txs) != 1 {
		t.Errorf("transactions = %d, want 1", len(txs))
	}
}

func TestImportCSV_ReportsRowNumber(t *testing.T) {
	input := `date,side,security,shares,price,fees
2025-01-10,buy,AAPL,10,150,0
2025-01-11,hold,AAPL,10,150,0
`
	_, err := ImportCSV(strings.NewReader(input))
	if err == nil {
		t.Fatal("ImportCSV accepted an unknown side")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error %q does not name the failing row", err)
	}
}

func TestExportImportCSV_RoundTrip(t *testing.T) {
	l := newTestLedger(t,
		buyOn("2025-01-10", "AAPL", 10, 150.25, 1),
		sellOn("2025-02-01", "AAPL", 2.5, 160, 0.5),
	)

	var b strings.Builder
	if err := ExportCSV(&b, l); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	if !strings.HasPrefix(b.String(), "date,side,security,shares,price,fees\n") {
		t.Errorf("export is missing the header:\n%s", b.String())
	}

	txs, err := ImportCSV(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("transactions = %d, want 2", len(txs))
	}

	want := make([]Transaction, 0, l.Len())
	for tx := range l.Transactions() {
		want = append(want, tx)
	}
	for i, tx := range txs {
		// IDs are regenerated on import; everything else must survive.
		if tx.Date != want[i].Date || tx.Side != want[i].Side || tx.Security != want[i].Security ||
			!tx.Shares.Equal(want[i].Shares) || !tx.Price.Equal(want[i].Price) ||
			!tx.Fees.Equal(want[i].Fees) || !tx.Amount.Equal(want[i].Amount) {
			t.Errorf("row %d changed:\n got %+v\nwant %+v", i, tx, want[i])
		}
	}
}
