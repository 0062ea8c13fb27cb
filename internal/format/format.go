// Package format turns aggregation results into display strings: two-decimal
// USD currency, one-decimal percentages and colored gain/loss tones.
package format

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// amount prints cents as X.XX without thousands grouping, signed -X.XX.
// Currency puts the dollar sign in front, so losses read $-X.XX.
var amount = money.NewFormatter(2, ".", "", "", "1")

// maxCents is the largest amount, in cents, that fits the formatter.
var maxCents = decimal.NewFromInt(math.MaxInt64)

// Tone colors a gain or loss.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
)

// Currency formats d as $X.XX, rounding half away from zero. Amounts beyond
// the int64 cent range are printed straight from the decimal.
func Currency(d decimal.Decimal) string {
	cents := d.Round(2).Shift(2)
	if cents.Abs().GreaterThan(maxCents) {
		return "$" + d.StringFixed(2)
	}
	return "$" + amount.Format(cents.IntPart())
}

// Percent formats d as X.X%.
func Percent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

// PercentPrecise formats d as X.XX%, used for per-holding gains.
func PercentPrecise(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// Delta returns the tone for a gain: zero counts as positive.
func Delta(d decimal.Decimal) Tone {
	if d.IsNegative() {
		return ToneNegative
	}
	return TonePositive
}
