package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/prasannakumar-sl/crackers-shop/internal/config"
)

// Line is one input row for order aggregation.
type Line struct {
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	Quantity        int
}

// Totals is the single authoritative pricing breakdown for an order.
// Checkout display, the stored order total and the invoice totals block
// must all come from one ComputeOrderTotal call.
type Totals struct {
	Subtotal    decimal.Decimal
	LineAmounts []decimal.Decimal
	PackingFee  decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
}

// ComputeOrderTotal prices every line, sums the rounded line amounts
// into the subtotal and applies the fee rules. The packing fee is
// waived only when the subtotal strictly exceeds the threshold, unless
// PackingAlways forces it on regardless.
//
// Rounding: each line amount is rounded to 2 dp before summing, so the
// printed rows always foot to the printed subtotal.
func ComputeOrderTotal(lines []Line, fees config.FeeConfig) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, ErrEmptyOrder
	}

	subtotal := decimal.Zero
	amounts := make([]decimal.Decimal, 0, len(lines))
	for _, ln := range lines {
		lp, err := PriceLine(ln.UnitPrice, ln.DiscountPercent, ln.Quantity)
		if err != nil {
			return Totals{}, err
		}
		amt := RoundDisplay(lp.Amount)
		amounts = append(amounts, amt)
		subtotal = subtotal.Add(amt)
	}

	packing := decimal.Zero
	if fees.PackingAlways || !subtotal.GreaterThan(fees.PackingFeeThreshold) {
		packing = fees.PackingFeeBase
	}

	total := subtotal.Add(fees.ShippingFee).Add(packing)

	return Totals{
		Subtotal:    subtotal,
		LineAmounts: amounts,
		PackingFee:  packing,
		ShippingFee: fees.ShippingFee,
		Total:       RoundDisplay(total),
	}, nil
}
