package stockfolio

import (
	"strings"
	"testing"
)

func TestEncodeDecodeLedger_RoundTrip(t *testing.T) {
	l := newTestLedger(t,
		buyOn("2025-01-10", "AAPL", 10, 150.25, 1),
		sellOn("2025-02-01", "AAPL", 5, 160, 0.5),
		buyOn("2025-01-15", "GOOG", 2.5, 100, 0),
	)

	var b strings.Builder
	if err := EncodeLedger(&b, l); err != nil {
		t.Fatalf("EncodeLedger: %v", err)
	}
	if got := strings.Count(b.String(), "\n"); got != 3 {
		t.Errorf("encoded lines = %d, want 3", got)
	}

	back, err := DecodeLedger(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if back.Len() != l.Len() {
		t.Fatalf("decoded %d transactions, want %d", back.Len(), l.Len())
	}

	want := make([]Transaction, 0, l.Len())
	for tx := range l.Transactions() {
		want = append(want, tx)
	}
	i := 0
	for tx := range back.Transactions() {
		if !tx.Equal(want[i]) {
			t.Errorf("transaction %d changed:\n got %+v\nwant %+v", i, tx, want[i])
		}
		i++
	}
}

func TestDecodeLedger_SkipsBlankLines(t *testing.T) {
	input := `{"id":"a","date":"2025-01-10","side":"buy","security":"AAPL","shares":10,"price":150,"fees":0,"amount":1500,"currency":"USD"}

{"id":"b","date":"2025-01-11","side":"sell","security":"AAPL","shares":5,"price":160,"fees":0,"amount":800,"currency":"USD"}
`
	l, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("transactions = %d, want 2", l.Len())
	}
}

func TestDecodeLedger_ReportsLineNumber(t *testing.T) {
	input := `{"id":"a","date":"2025-01-10","side":"buy","security":"AAPL","shares":10,"price":150,"fees":0,"amount":1500}
{"side":"hold"}
`
	_, err := DecodeLedger(strings.NewReader(input))
	if err == nil {
		t.Fatal("DecodeLedger accepted a bad line")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the failing line", err)
	}
}
