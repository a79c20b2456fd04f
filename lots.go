package stockfolio

// lot represents a single purchase of a security still (partially) unsold,
// used for FIFO cost basis calculations.
type lot struct {
	Date         Date
	Shares       Quantity
	CostPerShare Money // buy price plus the per-share slice of the buy fee
}

type lots []lot

// lotDust is the residual share count below which a lot is considered fully
// consumed; it absorbs floating point residue from fractional sells.
var lotDust = Q(0.0001)

// positionDust is the share count below which a position is not reported as
// a holding.
var positionDust = Q(0.01)

// push appends a new lot to the queue.
func (l lots) push(day Date, shares Quantity, costPerShare Money) lots {
	return append(l, lot{Date: day, Shares: shares, CostPerShare: costPerShare})
}

// consume removes quantityToSell shares from the queue oldest-first and
// returns the remaining queue together with the realized gain of the sale
// against sellPrice. Fees are not the queue's concern: the caller subtracts
// the sell's fees once per sell event, not per consumed lot.
func (l lots) consume(quantityToSell Quantity, sellPrice Money) (lots, Money) {
	var realized Money
	remaining := quantityToSell

	for len(l) > 0 && remaining.GreaterThan(lotDust) {
		currentLot := &l[0]
		consumed := remaining.Min(currentLot.Shares)
		realized = realized.Add(sellPrice.Sub(currentLot.CostPerShare).Mul(consumed))
		currentLot.Shares = currentLot.Shares.Sub(consumed)
		remaining = remaining.Sub(consumed)
		if currentLot.Shares.LessThan(lotDust) {
			l = l[1:]
		}
	}
	return l, realized
}

// shares returns the total number of shares remaining across all lots.
func (l lots) shares() Quantity {
	var total Quantity
	for _, currentLot := range l {
		total = total.Add(currentLot.Shares)
	}
	return total
}

// costBasis returns the total cost of the shares still held in the queue.
// This is the FIFO cost basis: the cost of the lots actually still owned,
// which does not drift under partial sells the way an average cost does.
func (l lots) costBasis() Money {
	var total Money
	for _, currentLot := range l {
		total = total.Add(currentLot.CostPerShare.Mul(currentLot.Shares))
	}
	return total
}
