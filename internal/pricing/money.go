package pricing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// currencyPrefixes lists the glyphs the surrounding system has been
// observed to prepend to stored prices. Longer prefixes first so "Rs."
// wins over "Rs".
var currencyPrefixes = []string{"₹", "Rs.", "Rs", "INR", "$"}

// NormalizeAmount parses the heterogeneous price representations the
// catalog stores (plain numbers, currency-prefixed strings) into a
// canonical decimal. The result is always non-negative.
func NormalizeAmount(v any) (decimal.Decimal, error) {
	var d decimal.Decimal

	switch x := v.(type) {
	case decimal.Decimal:
		d = x
	case float64:
		d = decimal.NewFromFloat(x)
	case float32:
		d = decimal.NewFromFloat32(x)
	case int:
		d = decimal.NewFromInt(int64(x))
	case int64:
		d = decimal.NewFromInt(x)
	case uint:
		d = decimal.NewFromInt(int64(x))
	case json.Number:
		parsed, err := decimal.NewFromString(x.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, x.String())
		}
		d = parsed
	case string:
		parsed, err := parseAmountString(x)
		if err != nil {
			return decimal.Zero, err
		}
		d = parsed
	default:
		return decimal.Zero, fmt.Errorf("%w: unsupported type %T", ErrInvalidAmount, v)
	}

	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative value %s", ErrInvalidAmount, d)
	}
	return d, nil
}

func parseAmountString(s string) (decimal.Decimal, error) {
	t := strings.TrimSpace(s)
	for _, p := range currencyPrefixes {
		if strings.HasPrefix(t, p) {
			t = strings.TrimSpace(strings.TrimPrefix(t, p))
			break
		}
	}
	if t == "" {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// RoundDisplay applies the storage/display rounding policy: two decimal
// places, half up. Intermediate computation stays at full precision;
// this is applied once, at the end.
func RoundDisplay(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
