package stockfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// this file handles the market data persistence format: one security per
// JSONL line, carrying the last live price, the beta, and the month-end
// close history. It lets reports run offline between fetches.

type jsecurity struct {
	Security string             `json:"security"`
	Price    *float64           `json:"price,omitempty"`
	Beta     *float64           `json:"beta,omitempty"`
	History  map[string]float64 `json:"history,omitempty"`
}

// EncodeMarketData writes the market data, one security per line.
func EncodeMarketData(w io.Writer, m *MarketData) error {
	for security := range m.Securities() {
		js := jsecurity{Security: security}
		if p, ok := m.Price(security); ok {
			js.Price = &p
		}
		if b, ok := m.Beta(security); ok {
			js.Beta = &b
		}
		if h := m.History(security); len(h) > 0 {
			js.History = h
		}
		data, err := json.Marshal(js)
		if err != nil {
			return fmt.Errorf("cannot encode market data for %q: %w", security, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write market data for %q: %w", security, err)
		}
	}
	return nil
}

// DecodeMarketData reads market data from its JSONL form.
func DecodeMarketData(r io.Reader) (*MarketData, error) {
	m := NewMarketData()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var js jsecurity
		if err := json.Unmarshal([]byte(text), &js); err != nil {
			return nil, fmt.Errorf("cannot parse market data line %d: %w", line, err)
		}
		if js.Security == "" {
			return nil, fmt.Errorf("market data line %d: security ticker is missing", line)
		}
		if js.Price != nil {
			m.SetPrice(js.Security, *js.Price)
		}
		if js.Beta != nil {
			m.SetBeta(js.Security, *js.Beta)
		}
		for monthKey, close := range js.History {
			m.AddHistory(js.Security, monthKey, close)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read market data: %w", err)
	}
	return m, nil
}
