package stockfolio

import (
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// this file implements the Yahoo Finance price provider. It is strictly a
// boundary collaborator: it fills the MarketData repository, and the engine
// only ever consumes the already-resolved values.

/*
	{
	    "chart": {
	        "result": [
	            {
	                "meta": {
	                    "regularMarketPrice": 229.87,
	                    ...
	                },
	                "timestamp": [ ... ],
	                "indicators": { "quote": [ { "close": [ ... ] } ] }
	            }
	        ]
	    }
	}
*/

// jpathFloat extracts a single float from a parsed JSON document, keeping
// the first element when the path matches a list.
func jpathFloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: not a float: %v", path, jval)
	}
	return val, nil
}

// FetchQuote returns the latest regular market price for a security.
func FetchQuote(security string) (float64, error) {
	addr := fmt.Sprintf("https://query2.finance.yahoo.com/v8/finance/chart/%s?interval=1d&range=1d", url.PathEscape(security))
	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return 0, fmt.Errorf("error in wget %q: %w", security, err)
	}
	return jpathFloat(jobj, "$.chart.result[0].meta.regularMarketPrice")
}

// FetchHistory returns up to five years of month-end closes for a security,
// keyed by "YYYY-MM" month.
func FetchHistory(security string) (map[string]float64, error) {
	addr := fmt.Sprintf("https://query2.finance.yahoo.com/v8/finance/chart/%s?interval=1mo&range=5y", url.PathEscape(security))
	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", security, err)
	}

	jts, err := jsonpath.Get("$.chart.result[0].timestamp", jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing history for %q: %w", security, err)
	}
	jcloses, err := jsonpath.Get("$.chart.result[0].indicators.quote[0].close", jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing history for %q: %w", security, err)
	}

	timestamps, ok1 := jts.([]any)
	closes, ok2 := jcloses.([]any)
	if !ok1 || !ok2 || len(timestamps) != len(closes) {
		return nil, fmt.Errorf("mismatched history series for %q", security)
	}

	history := make(map[string]float64, len(timestamps))
	for i := range timestamps {
		ts, ok := timestamps[i].(float64)
		if !ok {
			continue
		}
		close, ok := closes[i].(float64)
		if !ok {
			// null close for the occasional untraded month
			continue
		}
		monthKey := time.Unix(int64(ts), 0).UTC().Format(MonthFormat)
		history[monthKey] = close
	}
	return history, nil
}

// FetchBeta returns the 5-year monthly beta of a security. A missing beta
// is not an error at the portfolio level: the metrics engine defaults it to
// market beta.
func FetchBeta(security string) (float64, error) {
	addr := fmt.Sprintf("https://query2.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=defaultKeyStatistics", url.PathEscape(security))
	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return 0, fmt.Errorf("error in wget %q: %w", security, err)
	}
	return jpathFloat(jobj, "$.quoteSummary.result[0].defaultKeyStatistics.beta.raw")
}

// UpdateMarketData refreshes the live price, history, and beta of every
// security in the ledger. Partial failures are logged and skipped: a
// missing quote degrades the reports, it does not block them.
func UpdateMarketData(m *MarketData, l *Ledger) {
	for security := range l.Securities() {
		if price, err := FetchQuote(security); err != nil {
			log.Printf("warning, no quote for %q: %v", security, err)
		} else {
			m.SetPrice(security, price)
		}
		if history, err := FetchHistory(security); err != nil {
			log.Printf("warning, no history for %q: %v", security, err)
		} else {
			for monthKey, close := range history {
				m.AddHistory(security, monthKey, close)
			}
		}
		if beta, err := FetchBeta(security); err != nil {
			log.Printf("warning, no beta for %q: %v", security, err)
		} else {
			m.SetBeta(security, beta)
		}
	}
}
