package floatdec

import "fmt"

// MustNew is like [New] but panics if the decimal cannot be constructed.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(neg bool, digits string, exp int) Decimal {
	d, err := New(neg, digits, exp)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %q, %v) failed: %v", neg, digits, exp, err))
	}
	return d
}

// MustDecompose is like [Decompose] but panics if f cannot be decomposed.
// It simplifies safe initialization of global variables holding decimals.
func MustDecompose(f float64) Decimal {
	d, err := Decompose(f)
	if err != nil {
		panic(fmt.Sprintf("MustDecompose(%v) failed: %v", f, err))
	}
	return d
}

// MustMaxPrec is like [Decimal.MaxPrec] but panics if computing error.
func (d Decimal) MustMaxPrec(prec int) Decimal {
	e, err := d.MaxPrec(prec)
	if err != nil {
		panic(fmt.Sprintf("MustMaxPrec(%v) failed: %v", prec, err))
	}
	return e
}
