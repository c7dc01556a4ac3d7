package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasannakumar-sl/crackers-shop/internal/config"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func testFees(t *testing.T) config.FeeConfig {
	t.Helper()
	return config.FeeConfig{
		ShippingFee:         dec(t, "100"),
		PackingFeeBase:      dec(t, "50"),
		PackingFeeThreshold: dec(t, "5000"),
	}
}

func TestNormalizeAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "float", in: 150.5, want: "150.5"},
		{name: "int", in: 200, want: "200"},
		{name: "plain string", in: "150.50", want: "150.5"},
		{name: "rupee glyph", in: "₹150.50", want: "150.5"},
		{name: "rupee glyph with space", in: "₹ 99", want: "99"},
		{name: "Rs dot prefix", in: "Rs. 1250", want: "1250"},
		{name: "Rs prefix", in: "Rs40", want: "40"},
		{name: "dollar prefix", in: "$12.30", want: "12.3"},
		{name: "surrounding whitespace", in: "  ₹5  ", want: "5"},
		{name: "zero", in: "0", want: "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := NormalizeAmount(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(t, tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestNormalizeAmount_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
	}{
		{name: "letters", in: "abc"},
		{name: "glyph only", in: "₹"},
		{name: "empty string", in: ""},
		{name: "negative number", in: -1.0},
		{name: "negative string", in: "₹-5"},
		{name: "unsupported type", in: []int{1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NormalizeAmount(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestPriceLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		price      string
		discount   string
		qty        int
		wantUnit   string
		wantAmount string
	}{
		{name: "no discount", price: "100", discount: "0", qty: 3, wantUnit: "100", wantAmount: "300"},
		{name: "half off", price: "100", discount: "50", qty: 2, wantUnit: "50", wantAmount: "100"},
		{name: "full discount", price: "250", discount: "100", qty: 4, wantUnit: "0", wantAmount: "0"},
		{name: "fractional price", price: "99.99", discount: "10", qty: 1, wantUnit: "89.991", wantAmount: "89.991"},
		{name: "free item", price: "0", discount: "0", qty: 5, wantUnit: "0", wantAmount: "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lp, err := PriceLine(dec(t, tt.price), dec(t, tt.discount), tt.qty)
			require.NoError(t, err)
			assert.True(t, lp.DiscountedUnit.Equal(dec(t, tt.wantUnit)), "unit %s", lp.DiscountedUnit)
			assert.True(t, lp.Amount.Equal(dec(t, tt.wantAmount)), "amount %s", lp.Amount)
		})
	}
}

func TestPriceLine_ZeroDiscountIsNoOp(t *testing.T) {
	t.Parallel()

	lp, err := PriceLine(dec(t, "33.33"), decimal.Zero, 3)
	require.NoError(t, err)
	assert.True(t, RoundDisplay(lp.Amount).Equal(dec(t, "99.99")))
}

func TestPriceLine_RoundsLateNotPerStep(t *testing.T) {
	t.Parallel()

	// 10.005 × 99% = 9.90495/unit; × 3 = 29.71485. Rounding the final
	// amount gives 29.71; rounding the unit first would give 29.70.
	lp, err := PriceLine(dec(t, "10.005"), dec(t, "1"), 3)
	require.NoError(t, err)
	assert.True(t, RoundDisplay(lp.Amount).Equal(dec(t, "29.71")), "got %s", RoundDisplay(lp.Amount))
}

func TestPriceLine_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		price    string
		discount string
		qty      int
		wantErr  error
	}{
		{name: "zero quantity", price: "10", discount: "0", qty: 0, wantErr: ErrInvalidQuantity},
		{name: "negative quantity", price: "10", discount: "0", qty: -2, wantErr: ErrInvalidQuantity},
		{name: "negative discount", price: "10", discount: "-1", qty: 1, wantErr: ErrInvalidDiscount},
		{name: "discount above 100", price: "10", discount: "100.01", qty: 1, wantErr: ErrInvalidDiscount},
		{name: "negative price", price: "-10", discount: "0", qty: 1, wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := PriceLine(dec(t, tt.price), dec(t, tt.discount), tt.qty)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestComputeOrderTotal_EndToEnd(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{UnitPrice: dec(t, "100"), DiscountPercent: dec(t, "50"), Quantity: 2},
		{UnitPrice: dec(t, "200"), DiscountPercent: decimal.Zero, Quantity: 1},
	}

	totals, err := ComputeOrderTotal(lines, testFees(t))
	require.NoError(t, err)

	assert.True(t, totals.Subtotal.Equal(dec(t, "300")), "subtotal %s", totals.Subtotal)
	assert.True(t, totals.PackingFee.Equal(dec(t, "50")), "packing %s", totals.PackingFee)
	assert.True(t, totals.ShippingFee.Equal(dec(t, "100")))
	assert.True(t, totals.Total.Equal(dec(t, "450")), "total %s", totals.Total)
	require.Len(t, totals.LineAmounts, 2)
	assert.True(t, totals.LineAmounts[0].Equal(dec(t, "100")))
	assert.True(t, totals.LineAmounts[1].Equal(dec(t, "200")))
}

func TestComputeOrderTotal_EmptyOrder(t *testing.T) {
	t.Parallel()

	_, err := ComputeOrderTotal(nil, testFees(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyOrder)
}

func TestComputeOrderTotal_OrderInvariantUnderReordering(t *testing.T) {
	t.Parallel()

	a := []Line{
		{UnitPrice: dec(t, "19.99"), DiscountPercent: dec(t, "5"), Quantity: 3},
		{UnitPrice: dec(t, "250"), DiscountPercent: decimal.Zero, Quantity: 1},
		{UnitPrice: dec(t, "7.77"), DiscountPercent: dec(t, "33"), Quantity: 7},
	}
	b := []Line{a[2], a[0], a[1]}

	ta, err := ComputeOrderTotal(a, testFees(t))
	require.NoError(t, err)
	tb, err := ComputeOrderTotal(b, testFees(t))
	require.NoError(t, err)

	assert.True(t, ta.Subtotal.Equal(tb.Subtotal))
	assert.True(t, ta.Total.Equal(tb.Total))
}

func TestComputeOrderTotal_PackingFeeBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		price       string
		wantPacking string
	}{
		// The waiver uses strict >, so exactly-at-threshold still pays.
		{name: "exactly at threshold", price: "5000", wantPacking: "50"},
		{name: "one paisa over", price: "5000.01", wantPacking: "0"},
		{name: "well under", price: "300", wantPacking: "50"},
		{name: "well over", price: "9000", wantPacking: "0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines := []Line{{UnitPrice: dec(t, tt.price), DiscountPercent: decimal.Zero, Quantity: 1}}
			totals, err := ComputeOrderTotal(lines, testFees(t))
			require.NoError(t, err)
			assert.True(t, totals.PackingFee.Equal(dec(t, tt.wantPacking)), "packing %s", totals.PackingFee)
		})
	}
}

func TestComputeOrderTotal_PackingAlways(t *testing.T) {
	t.Parallel()

	fees := testFees(t)
	fees.PackingAlways = true

	lines := []Line{{UnitPrice: dec(t, "9000"), DiscountPercent: decimal.Zero, Quantity: 1}}
	totals, err := ComputeOrderTotal(lines, fees)
	require.NoError(t, err)
	assert.True(t, totals.PackingFee.Equal(dec(t, "50")))
	assert.True(t, totals.Total.Equal(dec(t, "9150")))
}

func TestComputeOrderTotal_PropagatesLineErrors(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{UnitPrice: dec(t, "100"), DiscountPercent: decimal.Zero, Quantity: 1},
		{UnitPrice: dec(t, "100"), DiscountPercent: decimal.Zero, Quantity: 0},
	}
	_, err := ComputeOrderTotal(lines, testFees(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}
