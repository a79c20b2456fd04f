package stockfolio

import (
	"fmt"
	"math"
)

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// IsInfinite reports whether the percentage is the infinite sentinel, used
// when more capital has been withdrawn than deployed.
func (p Percent) IsInfinite() bool {
	return math.IsInf(float64(p), 0)
}

func (p Percent) String() string {
	if p.IsInfinite() {
		return "∞"
	}
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	if p.IsInfinite() {
		return "∞"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
