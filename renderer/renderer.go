// Package renderer turns the engine's report structures into markdown
// suitable for terminal rendering.
package renderer

import "fmt"

// money formats an amount in the reporting currency for tables.
func money(v float64) string {
	if v < 0 {
		return fmt.Sprintf("-$%.2f", -v)
	}
	return fmt.Sprintf("$%.2f", v)
}

// signedMoney formats an amount with an explicit sign; zero renders as "-".
func signedMoney(v float64) string {
	switch {
	case v > 0:
		return fmt.Sprintf("+$%.2f", v)
	case v < 0:
		return fmt.Sprintf("-$%.2f", -v)
	default:
		return "-"
	}
}

// quantity formats a share count, without trailing noise for round lots.
func quantity(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.4f", v)
}
