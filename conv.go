package floatdec

import (
	"fmt"
	"strconv"

	"github.com/govalues/decimal"
)

// Float64 returns the float64 value nearest to the decimal, rounding
// half to even when the digits carry more precision than a float64 can
// hold.
// For a decimal produced by [Decompose], Float64 returns the decomposed
// value exactly, bit for bit, including the sign of a zero.
//
// If the value is too large in magnitude for a float64, Float64 returns
// an infinity and false.
// A value too small for a float64 flushes to zero, which is the nearest
// representable result, so ok stays true.
func (d Decimal) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(d.Scientific(false), 64)
	return f, err == nil
}

// Decimal converts the decomposition to a [decimal.Decimal].
// The conversion is exact as long as the value fits 19 significant
// digits and at most 19 digits after the decimal point; beyond that the
// fractional part is rounded.
// The decimal package does not support negative zeros, so the sign of a
// zero is dropped.
//
// Decimal returns an error if the integer part of the result has more
// than 19 digits, as happens for the decompositions of 1e30 and
// math.MaxFloat64, or if the exponent is less than -330 or greater
// than 330.
// Values below the smallest scale do not fail: the decomposition of
// 5e-324 converts to zero.
func (d Decimal) Decimal() (decimal.Decimal, error) {
	e, err := decimal.Parse(d.Scientific(false))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return e, nil
}
