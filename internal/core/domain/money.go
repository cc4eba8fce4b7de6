package domain

import "github.com/shopspring/decimal"

// Quantize rounds a monetary amount to 2 fractional digits using
// round-half-to-even, the rounding rule every price and balance in the
// system goes through.
func Quantize(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(2)
}

// FormatAmount renders a quantized amount the way the display shows it,
// always with two fractional digits.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
