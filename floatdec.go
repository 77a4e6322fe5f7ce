package floatdec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Decimal type represents the exact base-10 decomposition of a finite
// binary floating-point number:
//
//	(-1)^sign * digits * 10^exponent
//
// The zero value of the type is the numeric value of positive 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A decimal is a struct with three parameters:
//
//   - Sign: a boolean indicating whether the value is negative.
//   - Digits: the significant decimal digits of the value.
//   - Exponent: the power of ten applied to the digits.
//
// The decomposition is always kept in canonical form: the digit string of
// a nonzero value neither starts nor ends with '0', and zero is reduced
// to the single digit "0" with exponent 0.
// For example, 0.0125 is represented by the digits "125" and the
// exponent -4, never by "125000" and -7.
// Canonical form makes the representation of every value unique, so
// decimals can be compared with the == operator.
//
// Unlike float64, a decimal carries the sign of zero in its sign flag
// only: -0 and 0 have the same digits and the same exponent.
type Decimal struct {
	neg    bool  // indicates whether the value is negative
	exp    int32 // the power of ten applied to the digit string
	digits sig   // the significant digits, empty for the canonical zero
}

var (
	errNotFinite     = errors.New("not a finite number")
	errInvalidDigits = errors.New("invalid digits")
	errPrecRange     = errors.New("precision out of range")
	errExponentRange = errors.New("exponent out of range")
)

// newUnsafe creates a new decimal without checking the canonical form.
// Use it only if you are absolutely sure that the arguments are valid.
func newUnsafe(neg bool, digits sig, exp int) Decimal {
	return Decimal{neg: neg, digits: digits, exp: int32(exp)}
}

// zero returns the canonical zero with the given sign.
func zero(neg bool) Decimal {
	return Decimal{neg: neg}
}

// coef returns the significand of d, mapping the empty digit string of
// the canonical zero back to "0".
func (d Decimal) coef() sig {
	if d.digits == "" {
		return "0"
	}
	return d.digits
}

// newSafe reduces the digit string to canonical form, adjusting the
// exponent so that the value is unchanged, and checks that every derived
// exponent of the result stays within the int32 range.
func newSafe(neg bool, digits sig, exp int) (Decimal, error) {
	first := digits.firstNonZero()
	if first < 0 {
		return zero(neg), nil
	}
	last := digits.lastNonZero()
	// folded in int64, since the sum can wrap a 32-bit int
	e := int64(exp) + int64(len(digits)-1-last)
	digits = digits[first : last+1]
	if e < math.MinInt32 || e > math.MaxInt32-int64(len(digits)) {
		return Decimal{}, errExponentRange
	}
	return newUnsafe(neg, digits, int(e)), nil
}

// New returns a decimal equal to (-1)^sign * digits * 10^exp,
// where sign is 1 if neg is true and 0 otherwise.
// The digit string must consist of characters '0' to '9' only:
//
//	digits ::= digit { digit }
//	digit  ::= '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9'
//
// The result is reduced to canonical form: leading and trailing zeros
// are removed from the digits, with the exponent adjusted so that the
// value is unchanged.
// For example, New(false, "0012300", -5) returns the same decimal as
// New(false, "123", -3).
//
// New returns an error if the digit string is empty or contains an
// invalid character, or if the exponent of the canonical form is less
// than [math.MinInt32] or greater than [math.MaxInt32] minus the
// precision.
func New(neg bool, digits string, exp int) (Decimal, error) {
	if digits == "" {
		return Decimal{}, fmt.Errorf("no digits: %w", errInvalidDigits)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Decimal{}, fmt.Errorf("invalid character %q: %w", digits[i], errInvalidDigits)
		}
	}
	return newSafe(neg, sig(digits), exp)
}

// Decompose returns the exact decimal decomposition of a finite float64.
// The digits of the result are the shortest digit string that converts
// back to exactly f, so the decomposition is both exact and minimal:
// Decompose(0.1) returns the digits "1" and the exponent -1, not the
// digits of the long binary expansion of 0.1.
// The sign of a negative zero is preserved.
//
// Decompose returns an error if f is NaN or infinite.
func Decompose(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, fmt.Errorf("decomposing %v: %w", f, errNotFinite)
	}

	// Shortest round-tripping digits, always in the form d[.ddd]e±dd
	var text [32]byte
	b := strconv.AppendFloat(text[:0], f, 'e', -1, 64)

	pos := 0
	neg := false
	if b[0] == '-' {
		neg = true
		pos = 1
	}

	// Significand
	var digits [24]byte
	dig := digits[:0]
	intLen := -1
	i := pos
	for ; i < len(b); i++ {
		c := b[i]
		if c == '.' {
			intLen = len(dig)
			continue
		}
		if c == 'e' {
			break
		}
		dig = append(dig, c)
	}
	if intLen < 0 {
		intLen = len(dig)
	}

	// Exponent
	exp := 0
	if i < len(b) {
		i++
		eneg := false
		switch b[i] {
		case '-':
			eneg = true
			i++
		case '+':
			i++
		}
		for ; i < len(b); i++ {
			exp = exp*10 + int(b[i]-'0')
		}
		if eneg {
			exp = -exp
		}
	}
	exp -= len(dig) - intLen

	d, err := newSafe(neg, sig(dig), exp)
	if err != nil {
		panic(fmt.Sprintf("Decompose(%v) failed: %v", f, err)) // unexpected by design
	}
	return d, nil
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the decimal in plain notation, without
// the decimal placeholder.
// See also methods [Decimal.Plain], [Decimal.Scientific],
// [Decimal.Engineering].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return d.Plain(false)
}

// Plain returns a string representation of the decimal in plain notation,
// with no exponent suffix: the digits are laid out in full, padded with
// placeholder zeros around the decimal point where needed.
// For example, the decimal with digits "563" and exponent 2 is rendered
// as "56300", and the one with digits "971" and exponent -5 as "0.00971".
//
// If placeholder is true and the value has no fractional digits, the
// decimal placeholder ".0" is appended, so that the result always reads
// as a floating-point number.
func (d Decimal) Plain(placeholder bool) string {
	dig := string(d.coef())
	prec := len(dig)
	e := int(d.exp)

	n := prec + 3
	if e >= 0 {
		n += e
	} else if diff := prec + e; diff <= 0 {
		n += 1 - diff
	}
	if d.neg {
		n++
	}

	buf := make([]byte, 0, n)
	if d.neg {
		buf = append(buf, '-')
	}
	if e < 0 {
		diff := prec + e
		i := 0
		if diff > 0 {
			buf = append(buf, dig[:diff]...)
			i = diff
		} else {
			buf = append(buf, '0')
		}
		buf = append(buf, '.')
		for ; diff < 0; diff++ {
			buf = append(buf, '0')
		}
		buf = append(buf, dig[i:]...)
	} else {
		buf = append(buf, dig...)
		for i := 0; i < e; i++ {
			buf = append(buf, '0')
		}
		if placeholder {
			buf = append(buf, '.', '0')
		}
	}
	return string(buf)
}

// Scientific returns a string representation of the decimal in scientific
// notation, with a single digit in front of the decimal point and an
// exponent suffix "E<n>".
// The suffix is omitted when the exponent of the normalized form is zero,
// so small values read naturally: Scientific of 1.2 is "1.2", while
// Scientific of 56300 is "5.63E4".
//
// If placeholder is true and the significand has no fractional digits,
// the decimal placeholder ".0" is appended before the suffix.
func (d Decimal) Scientific(placeholder bool) string {
	return d.sciString(1, placeholder)
}

// Engineering returns a string representation of the decimal in
// engineering notation: scientific notation with the exponent constrained
// to a multiple of three and one to three digits in front of the decimal
// point.
// For example, Engineering of 100000000000 is "100.0E9" and Engineering
// of 0.00002 is "20.0E-6", with the placeholder enabled.
//
// If placeholder is true and the significand has no fractional digits,
// the decimal placeholder ".0" is appended before the suffix.
func (d Decimal) Engineering(placeholder bool) string {
	return d.sciString(1+floorMod(d.SciExp(), 3), placeholder)
}

// sciString renders d with the given number of whole digits in front of
// the decimal point, followed by an exponent suffix when the resulting
// exponent is not zero.
func (d Decimal) sciString(whole int, placeholder bool) string {
	dig := string(d.coef())
	prec := len(dig)

	buf := make([]byte, 0, prec+16)
	if d.neg {
		buf = append(buf, '-')
	}
	if prec <= whole {
		buf = append(buf, dig...)
		for i := prec; i < whole; i++ {
			buf = append(buf, '0')
		}
		if placeholder {
			buf = append(buf, '.', '0')
		}
	} else {
		buf = append(buf, dig[:whole]...)
		buf = append(buf, '.')
		buf = append(buf, dig[whole:]...)
	}
	if e := int(d.exp) + prec - whole; e != 0 {
		buf = append(buf, 'E')
		buf = strconv.AppendInt(buf, int64(e), 10)
	}
	return string(buf)
}

// floorMod returns x modulo y with the sign of y, so for a positive y
// the result is always in the range [0, y).
func floorMod(x, y int) int {
	m := x % y
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: 56300
//	%q:     "56300"
//	%f:     56300
//	%e:     5.63E4
//	%n:     56.3E3
//
// The %e verb renders the decimal in scientific notation and the %n verb
// in engineering notation, both omitting the exponent suffix when the
// exponent is zero.
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for the %f and %e verbs.
// For the %f verb, precision is the exact number of digits after the
// decimal point, with the value rounded half to even to fit.
// For the %e verb, precision is the exact number of digits after the
// decimal point of the significand, so %.2e formats with three
// significant digits.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	// Rounding
	fpad := -1
	if p, ok := state.Precision(); ok {
		switch verb {
		case 'f', 'F':
			d = d.Round(-p)
			fpad = p
		case 'e', 'E':
			d = d.maxPrec(p + 1)
			fpad = p
		}
	}

	// Digit segments
	dig := string(d.coef())
	dprec := len(dig)
	e := int(d.exp)
	var (
		whole, frac      string
		wzeroes, fzeroes int
		suffix           string
	)
	switch verb {
	case 'e', 'E', 'n', 'N':
		w := 1
		if verb == 'n' || verb == 'N' {
			w = 1 + floorMod(d.SciExp(), 3)
		}
		if dprec <= w {
			whole, wzeroes = dig, w-dprec
		} else {
			whole, frac = dig[:w], dig[w:]
		}
		if sexp := e + dprec - w; sexp != 0 {
			suffix = "E" + strconv.Itoa(sexp)
		}
	default:
		if e < 0 {
			if diff := dprec + e; diff > 0 {
				whole, frac = dig[:diff], dig[diff:]
			} else {
				frac, fzeroes = dig, -diff
			}
		} else {
			whole, wzeroes = dig, e
		}
	}
	if whole == "" {
		whole = "0"
	}

	// Trailing zeros
	tzeroes := 0
	if fpad > fzeroes+len(frac) {
		tzeroes = fpad - fzeroes - len(frac)
	}

	// Decimal point
	dpoint := 0
	if fzeroes+len(frac)+tzeroes > 0 {
		dpoint = 1
	}

	// Arithmetic sign
	rsign := 0
	if d.neg || state.Flag('+') || state.Flag(' ') {
		rsign = 1
	}

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + rsign + len(whole) + wzeroes + dpoint + fzeroes + len(frac) + tzeroes + len(suffix) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	if lquote > 0 {
		buf = append(buf, '"')
	}
	if rsign > 0 {
		switch {
		case d.neg:
			buf = append(buf, '-')
		case state.Flag(' '):
			buf = append(buf, ' ')
		default:
			buf = append(buf, '+')
		}
	}
	for i := 0; i < lzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, whole...)
	for i := 0; i < wzeroes; i++ {
		buf = append(buf, '0')
	}
	if dpoint > 0 {
		buf = append(buf, '.')
	}
	for i := 0; i < fzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, frac...)
	for i := 0; i < tzeroes; i++ {
		buf = append(buf, '0')
	}
	buf = append(buf, suffix...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'e', 'E', 'n', 'N':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(floatdec.Decimal="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Prec returns the number of significant digits in the decimal.
// The canonical zero has one digit.
func (d Decimal) Prec() int {
	return d.coef().prec()
}

// Digits returns the significant decimal digits of the decimal.
// The returned string is never empty and, for a nonzero value, neither
// starts nor ends with '0'.
func (d Decimal) Digits() string {
	return string(d.coef())
}

// Exponent returns the power of ten applied to the digits of the decimal.
func (d Decimal) Exponent() int {
	return int(d.exp)
}

// SciExp returns the exponent the decimal has in normalized scientific
// notation, with a single digit in front of the decimal point.
// For example, the scientific exponent of 56300 is 4 and the scientific
// exponent of 0.00971 is -3.
func (d Decimal) SciExp() int {
	return d.Prec() + int(d.exp) - 1
}

// IsNeg returns true if the sign of the decimal is negative.
// Unlike a comparison with zero, IsNeg is true for a negative zero.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if the decimal is equal to zero, regardless of
// its sign.
func (d Decimal) IsZero() bool {
	return d.digits == ""
}

// Round returns a decimal rounded so that no significant digit lies
// below the decimal place 10^exp, using "half to even" rule, also known
// as "banker's rounding".
// For example, Round(-2) rounds to the nearest multiple of 0.01 and
// Round(3) rounds to the nearest multiple of 1000.
// If the decimal has no digits below the requested place, it is
// returned unchanged, so Round never extends the digits.
//
// When rounding discards every significant digit, the result is either
// zero or a single unit in the requested place, and the sign of the
// decimal is preserved in both cases.
func (d Decimal) Round(exp int) Decimal {
	if exp <= int(d.exp) {
		return d
	}
	max := d.Prec() + int(d.exp)
	switch {
	case exp < max:
		return d.maxPrec(max - exp)
	case exp == max && d.coef().roundsUp(0):
		return newUnsafe(d.neg, "1", exp)
	}
	return zero(d.neg)
}

// MaxPrec returns a decimal rounded to at most prec significant digits,
// using "half to even" rule, also known as "banker's rounding".
// If the precision of the decimal does not exceed prec, it is returned
// unchanged.
// The result is in canonical form, so its precision can be lower than
// prec when rounding produces trailing zeros: MaxPrec(2) of 199 is 200,
// represented by the single digit "2" and the exponent 2.
//
// MaxPrec returns an error if prec is less than 1.
func (d Decimal) MaxPrec(prec int) (Decimal, error) {
	if prec < 1 {
		return Decimal{}, fmt.Errorf("rounding to %v significant digit(s): %w", prec, errPrecRange)
	}
	return d.maxPrec(prec), nil
}

// maxPrec rounds d to at most prec significant digits.
// maxPrec assumes that prec is positive.
func (d Decimal) maxPrec(prec int) Decimal {
	cur := d.Prec()
	if cur <= prec {
		return d
	}

	digits := d.digits[:prec]
	carry := false
	if d.digits.roundsUp(prec) {
		digits, carry = digits.inc()
	}
	exp := int(d.exp) + cur - prec

	// Rounding up can leave trailing zeros, or overflow into a single
	// leading one. Both fold back into canonical form here.
	switch last := digits.lastNonZero(); {
	case carry:
		digits, exp = "1", exp+prec
	case last < prec-1:
		digits, exp = digits[:last+1], exp+prec-1-last
	}
	return newUnsafe(d.neg, digits, exp)
}
