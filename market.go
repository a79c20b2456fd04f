package stockfolio

import (
	"iter"
	"sort"
)

// MarketData is the repository of market inputs the engine consumes:
// live prices, month-end historical closes, and per-security betas. All
// values are already resolved; fetching them is the provider's concern
// (see yahoo.go), never the engine's.
type MarketData struct {
	prices  map[string]float64
	history map[string]map[string]float64 // security -> "YYYY-MM" -> close
	betas   map[string]float64
	order   []string // securities in insertion order, for stable encoding
}

// NewMarketData returns an empty market data repository.
func NewMarketData() *MarketData {
	return &MarketData{
		prices:  make(map[string]float64),
		history: make(map[string]map[string]float64),
		betas:   make(map[string]float64),
	}
}

func (m *MarketData) touch(security string) {
	if _, ok := m.prices[security]; ok {
		return
	}
	if _, ok := m.history[security]; ok {
		return
	}
	if _, ok := m.betas[security]; ok {
		return
	}
	m.order = append(m.order, security)
}

// SetPrice records the live price of a security.
func (m *MarketData) SetPrice(security string, price float64) {
	m.touch(security)
	m.prices[security] = price
}

// Price returns the live price of a security. A missing price is a normal
// condition (delisted or illiquid instruments): the caller degrades to zero
// or to a cost-basis value, it never guesses.
func (m *MarketData) Price(security string) (float64, bool) {
	p, ok := m.prices[security]
	return p, ok
}

// AddHistory records the month-end close of a security for a "YYYY-MM" month.
func (m *MarketData) AddHistory(security, monthKey string, close float64) {
	m.touch(security)
	h, ok := m.history[security]
	if !ok {
		h = make(map[string]float64)
		m.history[security] = h
	}
	h[monthKey] = close
}

// HasHistory reports whether any historical prices were supplied at all.
// Volatility and Sharpe are only built when this holds.
func (m *MarketData) HasHistory() bool {
	for _, h := range m.history {
		if len(h) > 0 {
			return true
		}
	}
	return false
}

// PriceAsOf returns the historical close of a security for the given month,
// carrying forward the most recent close at or before that month when the
// exact month is missing.
func (m *MarketData) PriceAsOf(security, monthKey string) (float64, bool) {
	h, ok := m.history[security]
	if !ok || len(h) == 0 {
		return 0, false
	}
	if p, ok := h[monthKey]; ok {
		return p, true
	}
	// Carry forward: the most recent month at or before monthKey.
	// "YYYY-MM" keys sort chronologically as strings.
	months := make([]string, 0, len(h))
	for k := range h {
		months = append(months, k)
	}
	sort.Strings(months)
	for i := len(months) - 1; i >= 0; i-- {
		if months[i] <= monthKey {
			return h[months[i]], true
		}
	}
	return 0, false
}

// SetBeta records the beta of a security.
func (m *MarketData) SetBeta(security string, beta float64) {
	m.touch(security)
	m.betas[security] = beta
}

// Beta returns the beta of a security.
func (m *MarketData) Beta(security string) (float64, bool) {
	b, ok := m.betas[security]
	return b, ok
}

// HasBetas reports whether any betas were supplied.
func (m *MarketData) HasBetas() bool { return len(m.betas) > 0 }

// Securities returns an iterator over all securities known to the market
// data, in insertion order.
func (m *MarketData) Securities() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range m.order {
			if !yield(s) {
				return
			}
		}
	}
}

// History returns the historical closes of a security, keyed by "YYYY-MM".
// The returned map is the internal one; callers must not mutate it.
func (m *MarketData) History(security string) map[string]float64 {
	return m.history[security]
}
