package floatdec

// sig (SIGnificand) is a string of ASCII digits '0' to '9' holding the
// significant decimal digits of a value, most significant digit first.
type sig string

// digit returns the numeric value of the digit at index i.
func (x sig) digit(i int) int {
	return int(x[i] - '0')
}

// prec returns length of x in decimal digits.
func (x sig) prec() int {
	return len(x)
}

// firstNonZero returns the index of the first digit that is not '0'.
// firstNonZero returns -1 if x contains only zeros or is empty.
func (x sig) firstNonZero() int {
	for i := 0; i < len(x); i++ {
		if x[i] != '0' {
			return i
		}
	}
	return -1
}

// lastNonZero returns the index of the last digit that is not '0'.
// lastNonZero returns -1 if x contains only zeros or is empty.
func (x sig) lastNonZero() int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != '0' {
			return i
		}
	}
	return -1
}

// inc calculates x + 1 and checks carry out of the most significant
// digit, in which case the returned digits are all zeros.
func (x sig) inc() (z sig, carry bool) {
	buf := []byte(x)
	for i := len(buf) - 1; i >= 0; i-- {
		if buf[i] < '9' {
			buf[i]++
			return sig(buf), false
		}
		buf[i] = '0'
	}
	return sig(buf), true
}

// roundsUp reports whether discarding the digits of x starting at index i
// rounds the retained digits up, using "half to even" rule: the discarded
// digits start with a digit greater than 5, or with a 5 followed by more
// digits, or with a lone 5 after an odd digit.
//
// roundsUp assumes that x has no trailing zeros, so any digit after
// index i implies a discarded remainder above one half.
func (x sig) roundsUp(i int) bool {
	d := x.digit(i)
	if d != 5 {
		return d > 5
	}
	return i < len(x)-1 || (i > 0 && x.digit(i-1)%2 != 0)
}
