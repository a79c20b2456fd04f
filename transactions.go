package stockfolio

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Side is a typed string identifying the direction of a transaction.
type Side string

const (
	Buy  Side = "buy"
	Sell Side = "sell"
)

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case Buy, Sell:
		return Side(s), nil
	default:
		return "", fmt.Errorf("unknown transaction side: %q", s)
	}
}

// Transaction records a single buy or sell of a security. It is immutable:
// the engine never mutates a transaction in place, and all derived state is
// recomputed from scratch when the ledger changes.
//
// Amount is the precomputed transaction cost, trusted from the caller:
// shares*price+fees for buys, shares*price-fees for sells. The constructors
// always keep it consistent with that formula.
type Transaction struct {
	ID       string
	Date     Date
	Side     Side
	Security string
	Shares   Quantity
	Price    Money // per share
	Fees     Money
	Amount   Money
}

// NewBuy creates a new buy transaction with a fresh ID and a consistent
// transaction cost.
func NewBuy(day Date, security string, shares Quantity, price, fees Money) Transaction {
	return Transaction{
		ID:       uuid.NewString(),
		Date:     day,
		Side:     Buy,
		Security: security,
		Shares:   shares,
		Price:    price,
		Fees:     fees,
		Amount:   price.Mul(shares).Add(fees),
	}
}

// NewSell creates a new sell transaction with a fresh ID. The amount is the
// net proceeds: shares*price minus fees.
func NewSell(day Date, security string, shares Quantity, price, fees Money) Transaction {
	return Transaction{
		ID:       uuid.NewString(),
		Date:     day,
		Side:     Sell,
		Security: security,
		Shares:   shares,
		Price:    price,
		Fees:     fees,
		Amount:   price.Mul(shares).Sub(fees),
	}
}

// Validate checks the ingestion contract. Contract violations (zero-share
// buys, negative fees) are rejected here, before the matching loop ever sees
// the transaction. A zero date defaults to today.
func (t *Transaction) Validate() error {
	if t.Date.IsZero() {
		t.Date = Today()
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Side != Buy && t.Side != Sell {
		return fmt.Errorf("unknown transaction side: %q", t.Side)
	}
	if t.Security == "" {
		return errors.New("security ticker is missing")
	}
	if !t.Shares.IsPositive() {
		return fmt.Errorf("transaction shares must be positive, got %s", t.Shares)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("transaction price must not be negative, got %s", t.Price)
	}
	if t.Fees.IsNegative() {
		return fmt.Errorf("transaction fees must not be negative, got %s", t.Fees)
	}
	return nil
}

// Equal reports whether two transactions are the same record.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Date == o.Date &&
		t.Side == o.Side &&
		t.Security == o.Security &&
		t.Shares.Equal(o.Shares) &&
		t.Price.Equal(o.Price) &&
		t.Fees.Equal(o.Fees) &&
		t.Amount.Equal(o.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Transaction, with
// a stable field order for readable ledger files.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("side", t.Side)
	w.Append("security", t.Security)
	w.Append("shares", t.Shares)
	w.Append("price", t.Price.value)
	w.Append("fees", t.Fees.value)
	w.Append("amount", t.Amount.value)
	w.Optional("currency", t.Price.cur)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// It handles the flat ledger format where monetary fields are bare numbers
// with a single optional currency field.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID       string          `json:"id"`
		Date     Date            `json:"date"`
		Side     string          `json:"side"`
		Security string          `json:"security"`
		Shares   Quantity        `json:"shares"`
		Price    decimal.Decimal `json:"price"`
		Fees     decimal.Decimal `json:"fees"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	side, err := ParseSide(temp.Side)
	if err != nil {
		return err
	}
	t.ID = temp.ID
	t.Date = temp.Date
	t.Side = side
	t.Security = temp.Security
	t.Shares = temp.Shares
	t.Price = M(temp.Price, temp.Currency)
	t.Fees = M(temp.Fees, temp.Currency)
	t.Amount = M(temp.Amount, temp.Currency)
	return nil
}
