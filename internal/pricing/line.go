package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// LinePrice is the result of pricing a single order line. Both values
// are full precision; callers round with RoundDisplay when storing or
// showing them.
type LinePrice struct {
	DiscountedUnit decimal.Decimal
	Amount         decimal.Decimal
}

// PriceLine computes the discounted unit price and line amount for one
// item: unitPrice × (1 − discountPercent/100) × quantity.
func PriceLine(unitPrice, discountPercent decimal.Decimal, quantity int) (LinePrice, error) {
	if quantity <= 0 {
		return LinePrice{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}
	if discountPercent.IsNegative() || discountPercent.GreaterThan(oneHundred) {
		return LinePrice{}, fmt.Errorf("%w: %s", ErrInvalidDiscount, discountPercent)
	}
	if unitPrice.IsNegative() {
		return LinePrice{}, fmt.Errorf("%w: negative unit price %s", ErrInvalidAmount, unitPrice)
	}

	discounted := unitPrice.Mul(oneHundred.Sub(discountPercent)).Div(oneHundred)
	amount := discounted.Mul(decimal.NewFromInt(int64(quantity)))

	return LinePrice{DiscountedUnit: discounted, Amount: amount}, nil
}
